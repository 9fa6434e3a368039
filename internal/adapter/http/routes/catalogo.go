package routes

import (
	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProdutos = "/produtos"
	PathFicha    = "/ficha"
)

func addCatalogoRoutes(rg *gin.RouterGroup, produtoHandler *handlers.ProdutoHandler, fichaHandler *handlers.FichaHandler) {
	produtos := rg.Group(PathProdutos)
	{
		produtos.POST("", produtoHandler.CreateProduto)
		produtos.GET("", produtoHandler.ListProdutos)
		produtos.DELETE("/:id", produtoHandler.DeleteProduto)
	}

	ficha := rg.Group(PathFicha)
	{
		ficha.GET("/:produtoId", fichaHandler.ListarFicha)
		ficha.GET("/:produtoId/analise", fichaHandler.Analisar)
		ficha.POST("", fichaHandler.AdicionarLinha)
		// O DELETE recebe o id da linha, não do produto.
		ficha.DELETE("/:id", fichaHandler.RemoverLinha)
	}
}
