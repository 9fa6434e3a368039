package request

import (
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ItemImportadoRequest struct {
	SKU string `json:"sku" binding:"required"`
	Qtd int    `json:"qtd"`
}

type PedidoImportadoRequest struct {
	NumPedido   string                 `json:"num_pedido"`
	NomeCliente string                 `json:"nome_cliente"`
	Plataforma  string                 `json:"plataforma"`
	Data        string                 `json:"data"`
	ValorTotal  decimal.Decimal        `json:"valor_total"`
	Itens       []ItemImportadoRequest `json:"itens"`
}

// ImportacaoRequest é o lote de pedidos já agrupados enviado pela tela de
// importação. O endpoint de planilha crua não usa este DTO.
type ImportacaoRequest struct {
	Pedidos []PedidoImportadoRequest `json:"pedidos" binding:"required"`
}

func (r ImportacaoRequest) ToEntities() []entities.PedidoImportado {
	pedidos := make([]entities.PedidoImportado, 0, len(r.Pedidos))
	for _, p := range r.Pedidos {
		itens := make([]entities.ItemImportado, 0, len(p.Itens))
		for _, item := range p.Itens {
			qtd := item.Qtd
			if qtd <= 0 {
				qtd = 1
			}
			itens = append(itens, entities.ItemImportado{SKU: item.SKU, Qtd: qtd})
		}

		var data time.Time
		if p.Data != "" {
			data, _ = time.Parse(time.RFC3339, p.Data)
		}

		pedidos = append(pedidos, entities.PedidoImportado{
			NumPedido:   p.NumPedido,
			NomeCliente: p.NomeCliente,
			Plataforma:  p.Plataforma,
			Data:        data,
			ValorTotal:  p.ValorTotal,
			Itens:       itens,
		})
	}
	return pedidos
}
