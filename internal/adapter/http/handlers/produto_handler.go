package handlers

import (
	"errors"
	"net/http"

	request "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/request"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProdutoPayload = pkg.NewDomainErrorSimple("INVALID_PRODUTO_INPUT", "Dados do produto inválidos", http.StatusBadRequest)

type ProdutoHandler struct {
	usecase usecase.IProdutoUseCase
}

func NewProdutoHandler(uc usecase.IProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{usecase: uc}
}

func (h *ProdutoHandler) CreateProduto(c *gin.Context) {
	var payload request.ProdutoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProdutoPayload.HTTPStatus, errInvalidProdutoPayload.ToHTTPError())
		return
	}

	produto, err := h.usecase.Criar(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProdutoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, produto)
}

func (h *ProdutoHandler) ListProdutos(c *gin.Context) {
	produtos, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapProdutoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, produtos)
}

func (h *ProdutoHandler) DeleteProduto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Excluir(c.Request.Context(), id); err != nil {
		appErr := mapProdutoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapProdutoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSKUObrigatorio),
		errors.Is(err, usecase.ErrNomeObrigatorio),
		errors.Is(err, usecase.ErrPrecoInvalido):
		return pkg.NewDomainErrorSimple("INVALID_PRODUTO_INPUT", "Dados do produto inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSKUDuplicado):
		return pkg.NewDomainErrorSimple("SKU_DUPLICADO", "Já existe produto com este SKU", http.StatusConflict)
	case errors.Is(err, usecase.ErrProdutoNotFound):
		return pkg.NewDomainErrorSimple("PRODUTO_NOT_FOUND", "Produto não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
