package request

import (
	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type MateriaRequest struct {
	SKU           string          `json:"sku_materia" binding:"required"`
	Nome          string          `json:"nome_materia" binding:"required"`
	UnidadeMedida string          `json:"unidade_medida" binding:"required"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	SaldoEstoque  decimal.Decimal `json:"saldo_estoque"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	Fornecedor    string          `json:"fornecedor"`
}

func (r MateriaRequest) ToEntity() entities.Materia {
	return entities.Materia{
		SKU:           r.SKU,
		Nome:          r.Nome,
		UnidadeMedida: r.UnidadeMedida,
		CustoUnitario: r.CustoUnitario,
		SaldoEstoque:  r.SaldoEstoque,
		EstoqueMinimo: r.EstoqueMinimo,
		Fornecedor:    r.Fornecedor,
	}
}

// SaldoRequest é o corpo do ajuste de inventário (contagem física).
type SaldoRequest struct {
	NovoSaldo decimal.Decimal `json:"novo_saldo"`
}
