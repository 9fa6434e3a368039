package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Luke2905/sistema-avivar/internal/domain/entities"
	"github.com/Luke2905/sistema-avivar/internal/usecase/interfaces"
)

var (
	ErrUsuarioNotFound  = errors.New("usuario nao encontrado")
	ErrUsuarioInvalido  = errors.New("dados de usuario invalidos")
	ErrEmailDuplicado   = errors.New("email ja cadastrado")
	ErrSenhaObrigatoria = errors.New("senha obrigatoria no cadastro")
)

type IUsuarioUseCase interface {
	Criar(ctx context.Context, usuario entities.Usuario, senha string) (entities.Usuario, error)
	Listar(ctx context.Context) ([]entities.Usuario, error)
	Atualizar(ctx context.Context, usuario entities.Usuario, senha string) (entities.Usuario, error)
	Excluir(ctx context.Context, id int64) error
}

type UsuarioUseCase struct {
	usuarioRepo interfaces.IUsuarioRepository
}

var _ IUsuarioUseCase = (*UsuarioUseCase)(nil)

func NewUsuarioUseCase(usuarioRepo interfaces.IUsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo}
}

func (u *UsuarioUseCase) Criar(ctx context.Context, usuario entities.Usuario, senha string) (entities.Usuario, error) {
	usuario.Email = strings.ToLower(strings.TrimSpace(usuario.Email))
	if err := validarUsuario(usuario); err != nil {
		return entities.Usuario{}, err
	}
	if senha == "" {
		return entities.Usuario{}, ErrSenhaObrigatoria
	}

	existente, err := u.usuarioRepo.GetByEmail(ctx, usuario.Email)
	if err != nil {
		return entities.Usuario{}, err
	}
	if existente.ID != 0 {
		return entities.Usuario{}, ErrEmailDuplicado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return entities.Usuario{}, err
	}
	usuario.SenhaHash = string(hash)
	usuario.Ativo = true
	return u.usuarioRepo.Create(ctx, usuario)
}

func (u *UsuarioUseCase) Listar(ctx context.Context) ([]entities.Usuario, error) {
	return u.usuarioRepo.List(ctx)
}

// Atualizar troca os dados cadastrais; senha vazia mantém a atual.
func (u *UsuarioUseCase) Atualizar(ctx context.Context, usuario entities.Usuario, senha string) (entities.Usuario, error) {
	usuario.Email = strings.ToLower(strings.TrimSpace(usuario.Email))
	if err := validarUsuario(usuario); err != nil {
		return entities.Usuario{}, err
	}

	atual, err := u.usuarioRepo.GetByID(ctx, usuario.ID)
	if err != nil {
		return entities.Usuario{}, err
	}
	if atual.ID == 0 {
		return entities.Usuario{}, ErrUsuarioNotFound
	}
	if usuario.Email != atual.Email {
		existente, err := u.usuarioRepo.GetByEmail(ctx, usuario.Email)
		if err != nil {
			return entities.Usuario{}, err
		}
		if existente.ID != 0 {
			return entities.Usuario{}, ErrEmailDuplicado
		}
	}

	usuario.SenhaHash = atual.SenhaHash
	if senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
		if err != nil {
			return entities.Usuario{}, err
		}
		usuario.SenhaHash = string(hash)
	}
	usuario.CreatedAt = atual.CreatedAt
	return u.usuarioRepo.Update(ctx, usuario)
}

func (u *UsuarioUseCase) Excluir(ctx context.Context, id int64) error {
	atual, err := u.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if atual.ID == 0 {
		return ErrUsuarioNotFound
	}
	return u.usuarioRepo.Delete(ctx, id)
}

func validarUsuario(usuario entities.Usuario) error {
	if usuario.Nome == "" || usuario.Email == "" {
		return ErrUsuarioInvalido
	}
	if !entities.PerfilValido(usuario.Perfil) {
		return ErrUsuarioInvalido
	}
	return nil
}
