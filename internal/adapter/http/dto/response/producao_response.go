package response

import (
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
)

type OPResponse struct {
	ID           int64     `json:"id_ordem"`
	IDPedido     int64     `json:"id_pedido"`
	CodigoBarras string    `json:"codigo_barras"`
	Status       string    `json:"status_op"`
	Responsavel  string    `json:"responsavel,omitempty"`
	DataInicio   time.Time `json:"data_inicio,omitempty"`
	DataFim      time.Time `json:"data_fim,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromOP(op entities.ProducaoOrdem) OPResponse {
	return OPResponse{
		ID:           op.ID,
		IDPedido:     op.IDPedido,
		CodigoBarras: op.Codigo,
		Status:       string(op.Status),
		Responsavel:  op.Responsavel,
		DataInicio:   op.DataInicio,
		DataFim:      op.DataFim,
		CreatedAt:    op.CreatedAt,
	}
}

func FromOPs(ordens []entities.ProducaoOrdem) []OPResponse {
	out := make([]OPResponse, 0, len(ordens))
	for _, op := range ordens {
		out = append(out, FromOP(op))
	}
	return out
}

// PendenteResponse lista um pedido pronto para gerar OP.
type PendenteResponse struct {
	Pedido PedidoResponse `json:"pedido"`
	Resumo string         `json:"resumo_itens"`
}

func FromPendentes(pendentes []usecase.PedidoPendente) []PendenteResponse {
	out := make([]PendenteResponse, 0, len(pendentes))
	for _, p := range pendentes {
		out = append(out, PendenteResponse{Pedido: FromPedido(p.Pedido), Resumo: p.Resumo})
	}
	return out
}

// ScannerResponse devolve ao operador o efeito da bipada: a ação realizada,
// a mensagem exibida e, no início, os itens a produzir.
type ScannerResponse struct {
	Acao     string               `json:"acao,omitempty"`
	Mensagem string               `json:"mensagem"`
	Ordem    OPResponse           `json:"ordem"`
	Itens    []PedidoItemResponse `json:"itens,omitempty"`
}

func FromLeitura(l usecase.LeituraScanner) ScannerResponse {
	resp := ScannerResponse{
		Acao:     l.Acao,
		Mensagem: l.Mensagem,
		Ordem:    FromOP(l.Ordem),
	}
	if l.Acao == "INICIO" {
		resp.Itens = FromPedido(l.Pedido).Itens
	}
	return resp
}
