package handlers

import (
	"errors"
	"net/http"

	request "github.com/Luke2905/sistema-avivar/internal/adapter/http/dto/request"
	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCompraPayload = pkg.NewDomainErrorSimple("INVALID_COMPRA_INPUT", "Dados da compra inválidos", http.StatusBadRequest)

type CompraHandler struct {
	usecase usecase.ICompraUseCase
}

func NewCompraHandler(uc usecase.ICompraUseCase) *CompraHandler {
	return &CompraHandler{usecase: uc}
}

func (h *CompraHandler) RegistrarCompra(c *gin.Context) {
	var payload request.CompraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCompraPayload.HTTPStatus, errInvalidCompraPayload.ToHTTPError())
		return
	}

	compra, err := h.usecase.Registrar(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCompraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, compra)
}

func (h *CompraHandler) ListCompras(c *gin.Context) {
	compras, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapCompraError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, compras)
}

func mapCompraError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQtdCompraInvalida),
		errors.Is(err, usecase.ErrCustoCompraInvalido):
		return pkg.NewDomainErrorSimple("INVALID_COMPRA_INPUT", "Dados da compra inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMateriaNotFound):
		return pkg.NewDomainErrorSimple("MATERIA_NOT_FOUND", "Matéria-prima não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
