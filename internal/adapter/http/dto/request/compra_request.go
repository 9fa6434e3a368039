package request

import (
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CompraRequest struct {
	IDMateria   int64           `json:"id_materia" binding:"required"`
	QtdComprada decimal.Decimal `json:"qtd_comprada" binding:"required"`
	CustoTotal  decimal.Decimal `json:"custo_total" binding:"required"`
	Fornecedor  string          `json:"fornecedor"`
	Observacoes string          `json:"observacoes"`
	DataCompra  string          `json:"data_compra"`
}

func (r CompraRequest) ToEntity() entities.Compra {
	var data time.Time
	if r.DataCompra != "" {
		// O formulário envia a data do input type=date.
		data, _ = time.Parse("2006-01-02", r.DataCompra)
	}
	return entities.Compra{
		IDMateria:   r.IDMateria,
		QtdComprada: r.QtdComprada,
		CustoTotal:  r.CustoTotal,
		Fornecedor:  r.Fornecedor,
		Observacoes: r.Observacoes,
		DataCompra:  data,
	}
}
