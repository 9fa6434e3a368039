package response

import (
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PedidoItemResponse struct {
	ID            int64           `json:"id_item"`
	IDProduto     int64           `json:"id_produto"`
	SKUProduto    string          `json:"sku_produto"`
	NomeProduto   string          `json:"nome_produto"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID                  int64                `json:"id_pedido"`
	NumPedido           string               `json:"num_pedido_plataforma"`
	NomeCliente         string               `json:"nome_cliente"`
	Plataforma          string               `json:"plataforma_origem"`
	ValorTotal          decimal.Decimal      `json:"valor_total"`
	Status              string               `json:"status_pedido"`
	DataPedido          time.Time            `json:"data_pedido"`
	NumNotaFiscal       string               `json:"num_nota_fiscal,omitempty"`
	ResponsavelProducao string               `json:"responsavel_producao,omitempty"`
	ResumoItens         string               `json:"resumo_itens"`
	Itens               []PedidoItemResponse `json:"itens"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func FromPedido(p entities.Pedido) PedidoResponse {
	itens := make([]PedidoItemResponse, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, PedidoItemResponse{
			ID:            item.ID,
			IDProduto:     item.IDProduto,
			SKUProduto:    item.SKUProduto,
			NomeProduto:   item.NomeProduto,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
			Subtotal:      item.Subtotal(),
		})
	}
	return PedidoResponse{
		ID:                  p.ID,
		NumPedido:           p.NumPedidoPlataforma,
		NomeCliente:         p.NomeCliente,
		Plataforma:          p.PlataformaOrigem,
		ValorTotal:          p.ValorTotal,
		Status:              string(p.Status),
		DataPedido:          p.DataPedido,
		NumNotaFiscal:       p.NumNotaFiscal,
		ResponsavelProducao: p.ResponsavelProducao,
		ResumoItens:         p.ResumoItens(),
		Itens:               itens,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromPedidos(pedidos []entities.Pedido) []PedidoResponse {
	out := make([]PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, FromPedido(p))
	}
	return out
}

// MovimentoResponse é a resposta das operações avançar/voltar do Kanban.
type MovimentoResponse struct {
	Pedido          PedidoResponse `json:"pedido"`
	Movido          bool           `json:"movido"`
	NovoStatus      string         `json:"novo_status"`
	InsumosBaixados int            `json:"insumos_baixados,omitempty"`
}
