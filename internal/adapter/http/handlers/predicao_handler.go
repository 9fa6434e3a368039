package handlers

import (
	"net/http"

	"github.com/Luke2905/sistema-avivar/internal/usecase"
	"github.com/Luke2905/sistema-avivar/pkg"

	"github.com/gin-gonic/gin"
)

type PredicaoHandler struct {
	usecase usecase.IPredicaoUseCase
}

func NewPredicaoHandler(uc usecase.IPredicaoUseCase) *PredicaoHandler {
	return &PredicaoHandler{usecase: uc}
}

func (h *PredicaoHandler) ListPrevisoes(c *gin.Context) {
	previsoes, err := h.usecase.Previsoes(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, previsoes)
}
