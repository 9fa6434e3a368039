package interfaces

import (
	"context"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

// IPedidoRepository abstracts DynamoDB persistence for Pedido.
//
// Convention: GetByID returns a zero-value Pedido (ID == 0) when nothing is
// found; callers decide whether that is an error.

type IPedidoRepository interface {
	Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	GetByID(ctx context.Context, id int64) (entities.Pedido, error)
	List(ctx context.Context) ([]entities.Pedido, error)
	ListByStatus(ctx context.Context, status entities.StatusPedido) ([]entities.Pedido, error)
	Update(ctx context.Context, p entities.Pedido) (entities.Pedido, error)
	UpdateStatus(ctx context.Context, id int64, status entities.StatusPedido) error
	UpdateNotaFiscal(ctx context.Context, id int64, numeroNota string) error
	Delete(ctx context.Context, id int64) error
}
