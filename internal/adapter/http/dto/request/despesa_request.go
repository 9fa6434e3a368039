package request

import (
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DespesaRequest struct {
	Descricao      string          `json:"descricao" binding:"required"`
	Valor          decimal.Decimal `json:"valor" binding:"required"`
	Categoria      string          `json:"categoria"`
	DataVencimento string          `json:"data_vencimento"`
	Pago           bool            `json:"pago"`
}

// DespesaStatusRequest alterna só a flag de quitação. Ponteiro para aceitar
// explicitamente pago=false.
type DespesaStatusRequest struct {
	Pago *bool `json:"pago" binding:"required"`
}

func (r DespesaRequest) ToEntity() entities.Despesa {
	var vencimento time.Time
	if r.DataVencimento != "" {
		vencimento, _ = time.Parse("2006-01-02", r.DataVencimento)
	}
	return entities.Despesa{
		Descricao:      r.Descricao,
		Valor:          r.Valor,
		Categoria:      r.Categoria,
		DataVencimento: vencimento,
		Pago:           r.Pago,
	}
}
