package interfaces

import (
	"context"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

// IFichaRepository abstracts DynamoDB persistence for FichaItem (linhas da
// ficha técnica). Linhas são imutáveis: ajuste de consumo é remover e
// readicionar.

type IFichaRepository interface {
	Add(ctx context.Context, f entities.FichaItem) (entities.FichaItem, error)
	GetByID(ctx context.Context, id int64) (entities.FichaItem, error)
	ListByProduto(ctx context.Context, produtoID int64) ([]entities.FichaItem, error)
	Remove(ctx context.Context, id int64) error
}
