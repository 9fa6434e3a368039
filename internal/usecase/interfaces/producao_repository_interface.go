package interfaces

import (
	"context"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

// IProducaoRepository abstracts DynamoDB persistence for ProducaoOrdem (OPs).

type IProducaoRepository interface {
	Create(ctx context.Context, op entities.ProducaoOrdem) (entities.ProducaoOrdem, error)
	GetByID(ctx context.Context, id int64) (entities.ProducaoOrdem, error)
	GetByPedido(ctx context.Context, pedidoID int64) (entities.ProducaoOrdem, error)
	List(ctx context.Context) ([]entities.ProducaoOrdem, error)
	ListByStatus(ctx context.Context, status entities.StatusOP) ([]entities.ProducaoOrdem, error)
	Update(ctx context.Context, op entities.ProducaoOrdem) (entities.ProducaoOrdem, error)
	Delete(ctx context.Context, id int64) error
}
