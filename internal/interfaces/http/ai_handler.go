package http

import (
	"github.com/gofiber/fiber/v2"

	_ "github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/usecase"
)

// AIHandler expone el panel de insights generados por LLM (protegido).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// AnalyzeHealth godoc
// @Summary      Análisis de salud del inventario
// @Description  Envía un resumen del catálogo al proveedor de IA configurado y
//               devuelve el análisis en Markdown.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ai/insights [get]
func (h *AIHandler) AnalyzeHealth(c *fiber.Ctx) error {
	out, err := h.uc.AnalyzeInventoryHealth(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RestockPlan godoc
// @Summary      Plan de reposición sugerido
// @Description  Pide sugerencias de reposición para los artículos en Low Stock
//               u Out of Stock. Con catálogo sano devuelve un plan vacío.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RestockPlanDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ai/restock-plan [get]
func (h *AIHandler) RestockPlan(c *fiber.Ctx) error {
	out, err := h.uc.SuggestRestockPlan(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
