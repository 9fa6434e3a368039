package response

import (
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type MateriaResponse struct {
	ID            int64           `json:"id_materia"`
	SKU           string          `json:"sku_materia"`
	Nome          string          `json:"nome_materia"`
	UnidadeMedida string          `json:"unidade_medida"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	SaldoEstoque  decimal.Decimal `json:"saldo_estoque"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	Fornecedor    string          `json:"fornecedor,omitempty"`
	AlertaBaixo   bool            `json:"alerta_baixo"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromMateria(m entities.Materia) MateriaResponse {
	return MateriaResponse{
		ID:            m.ID,
		SKU:           m.SKU,
		Nome:          m.Nome,
		UnidadeMedida: m.UnidadeMedida,
		CustoUnitario: m.CustoUnitario,
		SaldoEstoque:  m.SaldoEstoque,
		EstoqueMinimo: m.EstoqueMinimo,
		Fornecedor:    m.Fornecedor,
		AlertaBaixo:   m.AlertaBaixo(),
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromMaterias(materias []entities.Materia) []MateriaResponse {
	out := make([]MateriaResponse, 0, len(materias))
	for _, m := range materias {
		out = append(out, FromMateria(m))
	}
	return out
}

// SaldoResponse confirma um ajuste de inventário.
type SaldoResponse struct {
	IDMateria int64           `json:"id_materia"`
	NovoSaldo decimal.Decimal `json:"novo_saldo"`
}
