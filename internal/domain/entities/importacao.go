package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoImportado é o agregado transiente montado a partir de uma planilha,
// agrupado pelo número do pedido. Ele é descartado depois do envio; quem
// resolve SKU -> produto é o caso de uso de importação.
type PedidoImportado struct {
	NumPedido   string          `json:"num_pedido"`
	NomeCliente string          `json:"nome_cliente"`
	Plataforma  string          `json:"plataforma"`
	Data        time.Time       `json:"data"`
	ValorTotal  decimal.Decimal `json:"valor_total"`
	Itens       []ItemImportado `json:"itens"`
}

// ItemImportado é o par SKU/quantidade lido de uma linha da planilha.
type ItemImportado struct {
	SKU string `json:"sku"`
	Qtd int    `json:"qtd"`
}
