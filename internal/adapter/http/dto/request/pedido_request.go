package request

import (
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PedidoItemRequest struct {
	IDProduto     int64           `json:"id_produto" binding:"required"`
	Quantidade    int             `json:"quantidade" binding:"required"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

// PedidoCreateRequest é o payload do formulário de novo pedido (balcão) e da
// edição. SKU e nome dos itens são denormalizados pelo caso de uso; o
// formulário só envia ids.
type PedidoCreateRequest struct {
	NomeCliente string              `json:"nome_cliente" binding:"required"`
	NumPedido   string              `json:"num_pedido_plataforma"`
	Plataforma  string              `json:"plataforma_origem"`
	DataPedido  string              `json:"data_pedido"`
	Itens       []PedidoItemRequest `json:"itens" binding:"required,dive"`
}

func (r PedidoCreateRequest) ToEntity() entities.Pedido {
	itens := make([]entities.PedidoItem, 0, len(r.Itens))
	for _, item := range r.Itens {
		itens = append(itens, entities.PedidoItem{
			IDProduto:     item.IDProduto,
			Quantidade:    item.Quantidade,
			ValorUnitario: item.ValorUnitario,
		})
	}

	var data time.Time
	if r.DataPedido != "" {
		data, _ = time.Parse(time.RFC3339, r.DataPedido)
	}

	return entities.Pedido{
		NomeCliente:         r.NomeCliente,
		NumPedidoPlataforma: r.NumPedido,
		PlataformaOrigem:    r.Plataforma,
		DataPedido:          data,
		Itens:               itens,
	}
}

// StatusUpdateRequest é o corpo do PATCH de status direto (drag and drop do
// Kanban).
type StatusUpdateRequest struct {
	NovoStatus string `json:"novo_status" binding:"required"`
}

type NotaFiscalRequest struct {
	NumeroNota string `json:"numero_nota"`
}
