package usecase

import (
	"context"
	"time"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/ports"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// catalogSampleLimit tope de artículos enviados al LLM por llamada.
const catalogSampleLimit = 200

// AIUseCase orquesta el panel de insights del inventario.
// Aplica un timeout de 10 segundos en cada llamada al LLM para evitar
// que las latencias externas bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm      ports.InsightService
	itemRepo repository.StockItemRepository
}

// NewAIUseCase construye el caso de uso inyectando el puerto InsightService.
func NewAIUseCase(llm ports.InsightService, itemRepo repository.StockItemRepository) *AIUseCase {
	return &AIUseCase{llm: llm, itemRepo: itemRepo}
}

// AnalyzeInventoryHealth envía el catálogo al LLM y devuelve el análisis en
// Markdown. Envuelve el contexto con un timeout de 10 s para respetar los SLAs.
func (uc *AIUseCase) AnalyzeInventoryHealth(ctx context.Context) (*dto.InsightDTO, error) {
	items, err := uc.itemRepo.List(catalogSampleLimit, 0)
	if err != nil {
		return nil, err
	}

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	analysis, err := uc.llm.AnalyzeInventoryHealth(ctx, items)
	if err != nil {
		return nil, err
	}
	return &dto.InsightDTO{
		Analysis:    analysis,
		Provider:    uc.llm.Provider(),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// SuggestRestockPlan pide al LLM un plan de reposición para los artículos en
// Low Stock u Out of Stock. Sin artículos críticos devuelve un plan vacío sin
// llamar al proveedor.
func (uc *AIUseCase) SuggestRestockPlan(ctx context.Context) (*dto.RestockPlanDTO, error) {
	items, err := uc.itemRepo.List(catalogSampleLimit, 0)
	if err != nil {
		return nil, err
	}

	var critical []*entity.StockItem
	for _, it := range items {
		if it.Status == entity.StatusLowStock || it.Status == entity.StatusOutOfStock {
			critical = append(critical, it)
		}
	}
	if len(critical) == 0 {
		return &dto.RestockPlanDTO{Suggestions: []dto.RestockSuggestionDTO{}, Provider: uc.llm.Provider()}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	suggestions, err := uc.llm.SuggestRestockPlan(ctx, critical)
	if err != nil {
		return nil, err
	}
	return &dto.RestockPlanDTO{Suggestions: suggestions, Provider: uc.llm.Provider()}, nil
}
