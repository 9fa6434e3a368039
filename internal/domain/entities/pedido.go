package entities

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusPedido representa a fase Kanban de um pedido.
//
// Domain notes:
//   - FasesOrdem define a sequência linear percorrida por avançar/voltar.
//   - CANCELADO ocupa o último slot da sequência mas nunca é alcançado pelo
//     avanço linear; só a operação explícita de cancelamento chega nele.

type StatusPedido string

const (
	StatusEntrada        StatusPedido = "ENTRADA"
	StatusAguardandoArte StatusPedido = "AGUARDANDO_ARTE"
	StatusCriacao        StatusPedido = "CRIACAO"
	StatusImprimindo     StatusPedido = "IMPRIMINDO"
	StatusProducao       StatusPedido = "PRODUCAO"
	StatusEnviado        StatusPedido = "ENVIADO"
	StatusCancelado      StatusPedido = "CANCELADO"
)

// FasesOrdem é a sequência completa de fases, na ordem de produção.
var FasesOrdem = []StatusPedido{
	StatusEntrada,
	StatusAguardandoArte,
	StatusCriacao,
	StatusImprimindo,
	StatusProducao,
	StatusEnviado,
	StatusCancelado,
}

// IndiceFase devolve a posição do status em FasesOrdem, ou -1.
func IndiceFase(s StatusPedido) int {
	for i, fase := range FasesOrdem {
		if fase == s {
			return i
		}
	}
	return -1
}

// StatusValido informa se s é uma das fases conhecidas.
func StatusValido(s StatusPedido) bool {
	return IndiceFase(s) >= 0
}

// PedidoItem é uma linha de venda dentro de um pedido.
type PedidoItem struct {
	ID            int64           `json:"id_item"`
	IDProduto     int64           `json:"id_produto"`
	SKUProduto    string          `json:"sku_produto"`
	NomeProduto   string          `json:"nome_produto"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

// Subtotal = quantidade x valor unitário.
func (i PedidoItem) Subtotal() decimal.Decimal {
	return i.ValorUnitario.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}

// Pedido é o agregado de venda (Aggregate Root).
//
// Invariante: ValorTotal deve ser o somatório dos subtotais dos itens no
// momento da gravação; CalcularTotal é chamado antes de persistir.
type Pedido struct {
	ID                  int64           `json:"id_pedido"`
	NumPedidoPlataforma string          `json:"num_pedido_plataforma"`
	NomeCliente         string          `json:"nome_cliente"`
	PlataformaOrigem    string          `json:"plataforma_origem"`
	ValorTotal          decimal.Decimal `json:"valor_total"`
	Status              StatusPedido    `json:"status_pedido"`
	DataPedido          time.Time       `json:"data_pedido"`
	NumNotaFiscal       string          `json:"num_nota_fiscal,omitempty"`
	ResponsavelProducao string          `json:"responsavel_producao,omitempty"`
	Itens               []PedidoItem    `json:"itens"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CalcularTotal recomputa ValorTotal a partir dos itens.
func (p *Pedido) CalcularTotal() {
	total := decimal.Zero
	for _, item := range p.Itens {
		total = total.Add(item.Subtotal())
	}
	p.ValorTotal = total
}

// ResumoItens monta o texto "2x Caneca, 1x Camiseta" usado nas listagens.
func (p Pedido) ResumoItens() string {
	var b strings.Builder
	for i, item := range p.Itens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(item.Quantidade))
		b.WriteString("x ")
		b.WriteString(item.NomeProduto)
	}
	return b.String()
}
