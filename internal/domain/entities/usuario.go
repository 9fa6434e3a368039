package entities

import "time"

type PerfilUsuario string

const (
	PerfilAdmin      PerfilUsuario = "ADMIN"
	PerfilProducao   PerfilUsuario = "PRODUCAO"
	PerfilArtes      PerfilUsuario = "ARTES"
	PerfilFinanceiro PerfilUsuario = "FINANCEIRO"
)

// Usuario é um operador do sistema. SenhaHash nunca sai na API.
type Usuario struct {
	ID        int64         `json:"id_usuario"`
	Nome      string        `json:"nome_usuario"`
	Email     string        `json:"email_usuario"`
	Perfil    PerfilUsuario `json:"perfil_usuario"`
	Ativo     bool          `json:"ativo"`
	SenhaHash string        `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// PerfilValido confere se o perfil é um dos cadastráveis.
func PerfilValido(p PerfilUsuario) bool {
	switch p {
	case PerfilAdmin, PerfilProducao, PerfilArtes, PerfilFinanceiro:
		return true
	}
	return false
}
