package response

import "github.com/Luke2905/sistema-avivar/internal/usecase"

type ImportacaoResponse struct {
	PedidosCriados  int      `json:"pedidos_criados"`
	ItensVinculados int      `json:"itens_vinculados"`
	Falhas          []string `json:"falhas,omitempty"`
	Detalhes        string   `json:"detalhes"`
}

func FromResultadoImportacao(r usecase.ResultadoImportacao) ImportacaoResponse {
	return ImportacaoResponse{
		PedidosCriados:  r.PedidosCriados,
		ItensVinculados: r.ItensVinculados,
		Falhas:          r.Falhas,
		Detalhes:        r.Detalhes,
	}
}

// BaixaResponse é a resposta da baixa manual de estoque de produção.
type BaixaResponse struct {
	InsumosBaixados int `json:"insumos_baixados"`
}
