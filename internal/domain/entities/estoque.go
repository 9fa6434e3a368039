package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Materia é um insumo (matéria-prima) consumido pela produção.
//
// Saldo sobe com compras e desce com a baixa de estoque ao finalizar a
// produção de um pedido.
type Materia struct {
	ID            int64           `json:"id_materia"`
	SKU           string          `json:"sku_materia"`
	Nome          string          `json:"nome_materia"`
	UnidadeMedida string          `json:"unidade_medida"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	SaldoEstoque  decimal.Decimal `json:"saldo_estoque"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	Fornecedor    string          `json:"fornecedor,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AlertaBaixo indica saldo abaixo do estoque mínimo.
func (m Materia) AlertaBaixo() bool {
	return m.SaldoEstoque.LessThan(m.EstoqueMinimo)
}

// DebitoInsumo é a quantidade a descontar de um insumo na baixa de estoque.
type DebitoInsumo struct {
	IDMateria  int64
	NomeInsumo string
	Quantidade decimal.Decimal
}
