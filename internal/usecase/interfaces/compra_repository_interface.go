package interfaces

import (
	"context"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

// ICompraRepository abstracts DynamoDB persistence for Compra.

type ICompraRepository interface {
	Create(ctx context.Context, c entities.Compra) (entities.Compra, error)
	List(ctx context.Context) ([]entities.Compra, error)
}
