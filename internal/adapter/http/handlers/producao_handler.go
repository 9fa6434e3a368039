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

var (
	errInvalidOPPayload      = pkg.NewDomainErrorSimple("INVALID_OP_INPUT", "Dados da ordem de produção inválidos", http.StatusBadRequest)
	errInvalidScannerPayload = pkg.NewDomainErrorSimple("INVALID_SCANNER_INPUT", "Código do scanner é obrigatório", http.StatusBadRequest)
)

// ProducaoHandler expõe a fila de geração de OPs, o scanner de chão de
// fábrica e a baixa manual de estoque.
type ProducaoHandler struct {
	usecase usecase.IProducaoUseCase
	baixa   usecase.IBaixaEstoqueUseCase
}

func NewProducaoHandler(uc usecase.IProducaoUseCase, baixa usecase.IBaixaEstoqueUseCase) *ProducaoHandler {
	return &ProducaoHandler{usecase: uc, baixa: baixa}
}

func (h *ProducaoHandler) ListPendentes(c *gin.Context) {
	pendentes, err := h.usecase.Pendentes(c.Request.Context())
	if err != nil {
		appErr := mapProducaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendentes(pendentes))
}

func (h *ProducaoHandler) ListOrdens(c *gin.Context) {
	ordens, err := h.usecase.Todas(c.Request.Context())
	if err != nil {
		appErr := mapProducaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOPs(ordens))
}

func (h *ProducaoHandler) MinhaProducao(c *gin.Context) {
	ordens, err := h.usecase.MinhaProducao(c.Request.Context())
	if err != nil {
		appErr := mapProducaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOPs(ordens))
}

func (h *ProducaoHandler) GerarOP(c *gin.Context) {
	var payload request.GerarOPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOPPayload.HTTPStatus, errInvalidOPPayload.ToHTTPError())
		return
	}

	op, err := h.usecase.Gerar(c.Request.Context(), payload.IDPedido)
	if err != nil {
		appErr := mapProducaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOP(op))
}

func (h *ProducaoHandler) DeleteOP(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Excluir(c.Request.Context(), id); err != nil {
		appErr := mapProducaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// Scanner processa uma bipada de etiqueta e devolve a ação executada.
func (h *ProducaoHandler) Scanner(c *gin.Context) {
	var payload request.ScannerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScannerPayload.HTTPStatus, errInvalidScannerPayload.ToHTTPError())
		return
	}

	leitura, err := h.usecase.ProcessarCodigo(c.Request.Context(), payload.Codigo, payload.Operador)
	if err != nil {
		appErr := mapProducaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeitura(leitura))
}

// BaixarEstoque debita os insumos de um pedido fora do fluxo do Kanban,
// para reprocessar uma baixa que falhou.
func (h *ProducaoHandler) BaixarEstoque(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	baixados, err := h.baixa.BaixarEstoque(c.Request.Context(), id)
	if err != nil {
		appErr := mapBaixaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.BaixaResponse{InsumosBaixados: baixados})
}

func mapProducaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCodigoOPInvalido):
		return pkg.NewDomainErrorSimple("INVALID_SCANNER_INPUT", "Código de OP inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOPNotFound):
		return pkg.NewDomainErrorSimple("OP_NOT_FOUND", "Ordem de produção não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoForaDaFase):
		return pkg.NewDomainErrorSimple("PEDIDO_FORA_DA_FASE", "Pedido não está na fase de impressão", http.StatusConflict)
	case errors.Is(err, usecase.ErrOPDuplicada):
		return pkg.NewDomainErrorSimple("OP_DUPLICADA", "Pedido já possui ordem de produção", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}

func mapBaixaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPedidoNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPedidoSemItens):
		return pkg.NewDomainErrorSimple("PEDIDO_SEM_ITENS", "Pedido não possui itens para baixar", http.StatusConflict)
	case errors.Is(err, usecase.ErrFichaVazia):
		return pkg.NewDomainError("FICHA_VAZIA", "Produto do pedido não possui ficha técnica", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSaldoInsuficiente):
		return pkg.NewDomainError("SALDO_INSUFICIENTE", saldoInsuficienteMensagem(err), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
