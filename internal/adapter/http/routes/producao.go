package routes

import (
	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducao = "/producao"
	PathScanner  = "/scanner"
)

func addProducaoRoutes(rg *gin.RouterGroup, producaoHandler *handlers.ProducaoHandler) {
	producao := rg.Group(PathProducao)
	{
		producao.GET("/pendentes", producaoHandler.ListPendentes)
		producao.GET("/todas", producaoHandler.ListOrdens)
		producao.GET("/minha-producao", producaoHandler.MinhaProducao)
		producao.POST("/gerar", producaoHandler.GerarOP)
		producao.DELETE("/:id", producaoHandler.DeleteOP)
		// O :id aqui é o do pedido cuja produção está sendo baixada.
		producao.POST("/:id/baixar-estoque", producaoHandler.BaixarEstoque)
	}

	rg.POST(PathScanner, producaoHandler.Scanner)
}
