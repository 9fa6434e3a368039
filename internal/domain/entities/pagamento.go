package entities

import (
	"encoding/json"
	"time"
)

// StatusPagamento represents the payment processing outcome.

type StatusPagamento string

const (
	PagamentoPendente StatusPagamento = "pendente"
	PagamentoAprovado StatusPagamento = "aprovado"
	PagamentoNegado   StatusPagamento = "negado"
)

// Pagamento is a Mercado Pago charge tied to a pedido (balcão/direct sales).
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (id_pedido-index): id_pedido
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for querying/debugging.
type Pagamento struct {
	ID       string          `json:"id"`
	IDPedido int64           `json:"id_pedido"`
	Date     time.Time       `json:"date"`
	Status   StatusPagamento `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
