package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra registra uma entrada de insumo no estoque.
type Compra struct {
	ID            int64           `json:"id_compra"`
	IDMateria     int64           `json:"id_materia"`
	NomeMateria   string          `json:"nome_materia"`
	SKUMateria    string          `json:"sku_materia"`
	UnidadeMedida string          `json:"unidade_medida"`
	QtdComprada   decimal.Decimal `json:"qtd_comprada"`
	CustoTotal    decimal.Decimal `json:"custo_total"`
	Fornecedor    string          `json:"fornecedor,omitempty"`
	Observacoes   string          `json:"observacoes,omitempty"`
	DataCompra    time.Time       `json:"data_compra"`
	CreatedAt     time.Time       `json:"created_at"`
}
