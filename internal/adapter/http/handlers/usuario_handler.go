package handlers

import (
	"errors"
	"net/http"

	request "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/request"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUsuarioPayload = pkg.NewDomainErrorSimple("INVALID_USUARIO_INPUT", "Dados do usuário inválidos", http.StatusBadRequest)

type UsuarioHandler struct {
	usecase usecase.IUsuarioUseCase
}

func NewUsuarioHandler(uc usecase.IUsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{usecase: uc}
}

func (h *UsuarioHandler) CreateUsuario(c *gin.Context) {
	var payload request.UsuarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUsuarioPayload.HTTPStatus, errInvalidUsuarioPayload.ToHTTPError())
		return
	}

	usuario, err := h.usecase.Criar(c.Request.Context(), payload.ToEntity(), payload.Senha)
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, usuario)
}

func (h *UsuarioHandler) ListUsuarios(c *gin.Context) {
	usuarios, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuarioHandler) UpdateUsuario(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload request.UsuarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUsuarioPayload.HTTPStatus, errInvalidUsuarioPayload.ToHTTPError())
		return
	}

	usuario := payload.ToEntity()
	usuario.ID = id
	atualizado, err := h.usecase.Atualizar(c.Request.Context(), usuario, payload.Senha)
	if err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, atualizado)
}

func (h *UsuarioHandler) DeleteUsuario(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Excluir(c.Request.Context(), id); err != nil {
		appErr := mapUsuarioError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUsuarioError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUsuarioInvalido),
		errors.Is(err, usecase.ErrSenhaObrigatoria):
		return pkg.NewDomainErrorSimple("INVALID_USUARIO_INPUT", "Dados do usuário inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailDuplicado):
		return pkg.NewDomainErrorSimple("EMAIL_DUPLICADO", "Já existe usuário com este e-mail", http.StatusConflict)
	case errors.Is(err, usecase.ErrUsuarioNotFound):
		return pkg.NewDomainErrorSimple("USUARIO_NOT_FOUND", "Usuário não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
