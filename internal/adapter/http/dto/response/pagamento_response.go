package response

import (
	"time"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

type PagamentoResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	IDPedido    int64     `json:"id_pedido"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPagamento(p entities.Pagamento) PagamentoResponse {
	return PagamentoResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		IDPedido:     p.IDPedido,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
