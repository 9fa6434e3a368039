package interfaces

import (
	"context"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
)

// IUsuarioRepository abstracts DynamoDB persistence for Usuario.

type IUsuarioRepository interface {
	Create(ctx context.Context, u entities.Usuario) (entities.Usuario, error)
	GetByID(ctx context.Context, id int64) (entities.Usuario, error)
	GetByEmail(ctx context.Context, email string) (entities.Usuario, error)
	List(ctx context.Context) ([]entities.Usuario, error)
	Update(ctx context.Context, u entities.Usuario) (entities.Usuario, error)
	Delete(ctx context.Context, id int64) error
}
