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

var errInvalidPedidoPayload = pkg.NewDomainErrorSimple("INVALID_PEDIDO_INPUT", "Dados do pedido inválidos", http.StatusBadRequest)

// PedidoHandler handles HTTP requests for pedidos (CRUD e nota fiscal).
type PedidoHandler struct {
	usecase usecase.IPedidoUseCase
}

func NewPedidoHandler(uc usecase.IPedidoUseCase) *PedidoHandler {
	return &PedidoHandler{usecase: uc}
}

func (h *PedidoHandler) CreatePedido(c *gin.Context) {
	var payload request.PedidoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	pedido, err := h.usecase.Criar(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPedido(pedido))
}

func (h *PedidoHandler) ListPedidos(c *gin.Context) {
	pedidos, err := h.usecase.Listar(c.Request.Context())
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPedidos(pedidos))
}

func (h *PedidoHandler) GetPedido(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	pedido, err := h.usecase.Buscar(c.Request.Context(), id)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPedido(pedido))
}

func (h *PedidoHandler) UpdatePedido(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload request.PedidoCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	pedido := payload.ToEntity()
	pedido.ID = id
	atualizado, err := h.usecase.Atualizar(c.Request.Context(), pedido)
	if err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPedido(atualizado))
}

func (h *PedidoHandler) DeletePedido(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Excluir(c.Request.Context(), id); err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RegistrarNotaFiscal grava (ou limpa, quando vazio) o número da NF-e.
func (h *PedidoHandler) RegistrarNotaFiscal(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var payload request.NotaFiscalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPedidoPayload.HTTPStatus, errInvalidPedidoPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RegistrarNotaFiscal(c.Request.Context(), id, payload.NumeroNota); err != nil {
		appErr := mapPedidoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"numero_nota": payload.NumeroNota})
}

func mapPedidoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClienteObrigatorio),
		errors.Is(err, usecase.ErrPedidoSemItensForm),
		errors.Is(err, usecase.ErrItemInvalido):
		return pkg.NewDomainErrorSimple("INVALID_PEDIDO_INPUT", "Dados do pedido inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProdutoNotFound):
		return pkg.NewDomainErrorSimple("PRODUTO_NOT_FOUND", "Produto não cadastrado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
