package routes

import (
	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPedidos = "/pedidos"

func addPedidoRoutes(rg *gin.RouterGroup, pedidoHandler *handlers.PedidoHandler, statusHandler *handlers.PedidoStatusHandler, importacaoHandler *handlers.ImportacaoHandler, pagamentoHandler *handlers.PagamentoHandler) {
	pedidos := rg.Group(PathPedidos)
	{
		pedidos.POST("", pedidoHandler.CreatePedido)
		pedidos.GET("", pedidoHandler.ListPedidos)
		pedidos.GET("/:id", pedidoHandler.GetPedido)
		pedidos.PUT("/:id", pedidoHandler.UpdatePedido)
		pedidos.DELETE("/:id", pedidoHandler.DeletePedido)
		pedidos.PATCH("/:id/nf", pedidoHandler.RegistrarNotaFiscal)

		// Movimentos do Kanban
		pedidos.POST("/:id/avancar", statusHandler.Avancar)
		pedidos.POST("/:id/voltar", statusHandler.Voltar)
		pedidos.POST("/:id/cancelar", statusHandler.Cancelar)
		pedidos.PATCH("/:id/status", statusHandler.AtualizarStatus)

		// Importação em lote (linhas já agrupadas ou a planilha crua)
		pedidos.POST("/importar", importacaoHandler.Importar)
		pedidos.POST("/importar/planilha", importacaoHandler.ImportarPlanilha)

		pedidos.POST("/:id/pagamentos", pagamentoHandler.CreatePagamento)
		pedidos.GET("/:id/pagamentos", pagamentoHandler.GetPagamentoByPedido)
	}
}
