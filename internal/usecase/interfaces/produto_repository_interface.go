package interfaces

import (
	"context"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

// IProdutoRepository abstracts DynamoDB persistence for Produto.

type IProdutoRepository interface {
	Create(ctx context.Context, p entities.Produto) (entities.Produto, error)
	GetByID(ctx context.Context, id int64) (entities.Produto, error)
	GetBySKU(ctx context.Context, sku string) (entities.Produto, error)
	List(ctx context.Context) ([]entities.Produto, error)
	Delete(ctx context.Context, id int64) error
}
