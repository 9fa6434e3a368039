package request

import "encoding/json"

// PagamentoCreateRequest é o payload da rota de cobrança do pedido.
//
// `mp_payload` é repassado como chegou (JSON cru) para acomodar variações de
// schema do Mercado Pago.

type PagamentoCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
