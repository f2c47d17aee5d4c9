package ports

import (
	"context"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

// InsightService define el puerto de salida hacia los servicios de
// inteligencia artificial. Cualquier adaptador (Gemini, Anthropic, mock) debe
// implementar esta interfaz; la capa de aplicación solo conoce este contrato,
// no la implementación concreta (DIP).
type InsightService interface {
	// AnalyzeInventoryHealth recibe el catálogo y devuelve un análisis en
	// Markdown: riesgos de quiebre de stock, exceso de inventario y
	// observaciones por categoría. El contexto debe llevar timeout.
	AnalyzeInventoryHealth(ctx context.Context, items []*entity.StockItem) (string, error)

	// SuggestRestockPlan recibe los artículos críticos (Low/Out of Stock) y
	// devuelve una sugerencia de reposición por artículo.
	SuggestRestockPlan(ctx context.Context, items []*entity.StockItem) ([]dto.RestockSuggestionDTO, error)

	// Provider nombre del proveedor ("gemini", "anthropic") para trazabilidad.
	Provider() string
}
