package handlers

import (
	"errors"
	"net/http"

	request "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/request"
	response "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/response"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMateriaPayload = pkg.NewDomainErrorSimple("INVALID_MATERIA_INPUT", "Dados da matéria-prima inválidos", http.StatusBadRequest)

// EstoqueHandler expõe o cadastro de matérias-primas e o ajuste de inventário.
type EstoqueHandler struct {
	usecase usecase.IEstoqueUseCase
}

func NewEstoqueHandler(uc usecase.IEstoqueUseCase) *EstoqueHandler {
	return &EstoqueHandler{usecase: uc}
}

func (h *EstoqueHandler) CreateMateria(c *gin.Context) {
	var payload request.MateriaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMateriaPayload.HTTPStatus, errInvalidMateriaPayload.ToHTTPError())
		return
	}

	materia, err := h.usecase.Criar(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromMateria(materia))
}

func (h *EstoqueHandler) ListMaterias(c *gin.Context) {
	materias, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterias(materias))
}

func (h *EstoqueHandler) UpdateMateria(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload request.MateriaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMateriaPayload.HTTPStatus, errInvalidMateriaPayload.ToHTTPError())
		return
	}

	materia := payload.ToEntity()
	materia.ID = id
	atualizada, err := h.usecase.Atualizar(c.Request.Context(), materia)
	if err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMateria(atualizada))
}

// AjustarSaldo grava o saldo contado no inventário físico, substituindo o atual.
func (h *EstoqueHandler) AjustarSaldo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload request.SaldoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMateriaPayload.HTTPStatus, errInvalidMateriaPayload.ToHTTPError())
		return
	}

	if err := h.usecase.AjustarSaldo(c.Request.Context(), id, payload.NovoSaldo); err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SaldoResponse{IDMateria: id, NovoSaldo: payload.NovoSaldo})
}

func (h *EstoqueHandler) DeleteMateria(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Excluir(c.Request.Context(), id); err != nil {
		appErr := mapEstoqueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapEstoqueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSKUObrigatorio),
		errors.Is(err, usecase.ErrNomeObrigatorio),
		errors.Is(err, usecase.ErrSaldoInvalido),
		errors.Is(err, usecase.ErrUnidadeInvalida):
		return pkg.NewDomainErrorSimple("INVALID_MATERIA_INPUT", "Dados da matéria-prima inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMateriaNotFound):
		return pkg.NewDomainErrorSimple("MATERIA_NOT_FOUND", "Matéria-prima não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
