package interfaces

import (
	"context"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

// IPagamentoRepository abstracts DynamoDB persistence for Pagamento.

type IPagamentoRepository interface {
	Create(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error)
	GetByID(ctx context.Context, id string) (entities.Pagamento, error)
	ListByPedido(ctx context.Context, pedidoID int64) ([]entities.Pagamento, error)
}
