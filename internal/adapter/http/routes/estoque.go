package routes

import (
	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstoque = "/estoque"
	PathCompras = "/compras"
)

func addEstoqueRoutes(rg *gin.RouterGroup, estoqueHandler *handlers.EstoqueHandler, compraHandler *handlers.CompraHandler) {
	estoque := rg.Group(PathEstoque)
	{
		estoque.POST("", estoqueHandler.CreateMateria)
		estoque.GET("", estoqueHandler.ListMaterias)
		estoque.PUT("/:id", estoqueHandler.UpdateMateria)
		estoque.PATCH("/:id/saldo", estoqueHandler.AjustarSaldo)
		estoque.DELETE("/:id", estoqueHandler.DeleteMateria)
	}

	compras := rg.Group(PathCompras)
	{
		compras.POST("", compraHandler.RegistrarCompra)
		compras.GET("", compraHandler.ListCompras)
	}
}
