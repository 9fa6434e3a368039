package request

import "github.com/Luke2905/sistema-avivar/internal/domain/entities"

// UsuarioRequest cobre cadastro e edição. Senha é obrigatória só no cadastro;
// na edição, vazia mantém a atual.
type UsuarioRequest struct {
	Nome   string `json:"nome_usuario" binding:"required"`
	Email  string `json:"email_usuario" binding:"required,email"`
	Perfil string `json:"perfil_usuario" binding:"required"`
	Ativo  bool   `json:"ativo"`
	Senha  string `json:"senha"`
}

func (r UsuarioRequest) ToEntity() entities.Usuario {
	return entities.Usuario{
		Nome:   r.Nome,
		Email:  r.Email,
		Perfil: entities.PerfilUsuario(r.Perfil),
		Ativo:  r.Ativo,
	}
}
