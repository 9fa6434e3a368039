package routes

import (
	"github.com/Luke2905/sistema-avivar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFinanceiro = "/financeiro"
	PathPrevisoes  = "/ia/previsoes"
)

func addFinanceiroRoutes(rg *gin.RouterGroup, financeiroHandler *handlers.FinanceiroHandler, predicaoHandler *handlers.PredicaoHandler) {
	financeiro := rg.Group(PathFinanceiro)
	{
		financeiro.GET("/resumo", financeiroHandler.Resumo)
		// A listagem de despesas devolve o extrato unificado
		// (despesas manuais + compras de insumo).
		financeiro.GET("/despesas", financeiroHandler.Extrato)
		financeiro.POST("/despesas", financeiroHandler.CreateDespesa)
		financeiro.PUT("/despesas/:id", financeiroHandler.UpdateDespesa)
		financeiro.PATCH("/despesas/:id/status", financeiroHandler.UpdateDespesaStatus)
		financeiro.DELETE("/despesas/:id", financeiroHandler.DeleteDespesa)
	}

	rg.GET(PathPrevisoes, predicaoHandler.ListPrevisoes)
}
