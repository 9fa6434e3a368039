package interfaces

import (
	"context"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

// IDespesaRepository abstracts DynamoDB persistence for Despesa.

type IDespesaRepository interface {
	Create(ctx context.Context, d entities.Despesa) (entities.Despesa, error)
	GetByID(ctx context.Context, id int64) (entities.Despesa, error)
	List(ctx context.Context) ([]entities.Despesa, error)
	Update(ctx context.Context, d entities.Despesa) (entities.Despesa, error)
	Delete(ctx context.Context, id int64) error
}
