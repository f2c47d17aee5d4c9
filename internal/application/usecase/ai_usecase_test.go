package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonflow/neonflow-api/internal/application/usecase"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

func TestAnalyzeInventoryHealth_EnviaCatalogoCompleto(t *testing.T) {
	llm := &fakeLLM{}
	catalog := &fakeCatalogRepo{items: []*entity.StockItem{
		{ID: "a", Name: "Café", Quantity: 100, Status: entity.StatusInStock},
		{ID: "b", Name: "Té", Quantity: 5, Status: entity.StatusLowStock},
	}}
	uc := usecase.NewAIUseCase(llm, catalog)

	out, err := uc.AnalyzeInventoryHealth(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fake", out.Provider)
	assert.Contains(t, out.Analysis, "Análisis")
	assert.NotEmpty(t, out.GeneratedAt)
	assert.Len(t, llm.healthItems, 2)
}

func TestSuggestRestockPlan_SoloArticulosCriticos(t *testing.T) {
	llm := &fakeLLM{}
	catalog := &fakeCatalogRepo{items: []*entity.StockItem{
		{ID: "a", Name: "Café", Quantity: 100, Status: entity.StatusInStock},
		{ID: "b", Name: "Té", Quantity: 5, Status: entity.StatusLowStock},
		{ID: "c", Name: "Azúcar", Quantity: 0, Status: entity.StatusOutOfStock},
		{ID: "d", Name: "Yerba vieja", Quantity: 50, Status: entity.StatusDiscontinued},
	}}
	uc := usecase.NewAIUseCase(llm, catalog)

	out, err := uc.SuggestRestockPlan(context.Background())

	require.NoError(t, err)
	require.Len(t, llm.restockItems, 2)
	assert.Equal(t, "Té", llm.restockItems[0].Name)
	assert.Equal(t, "Azúcar", llm.restockItems[1].Name)
	assert.Len(t, out.Suggestions, 2)
}

// Catálogo sano: no se llama al proveedor y el plan vuelve vacío.
func TestSuggestRestockPlan_SinCriticosNoLlamaAlLLM(t *testing.T) {
	llm := &fakeLLM{err: assert.AnError} // si llamara, fallaría
	catalog := &fakeCatalogRepo{items: []*entity.StockItem{
		{ID: "a", Name: "Café", Quantity: 100, Status: entity.StatusInStock},
	}}
	uc := usecase.NewAIUseCase(llm, catalog)

	out, err := uc.SuggestRestockPlan(context.Background())

	require.NoError(t, err)
	assert.Empty(t, out.Suggestions)
	assert.Nil(t, llm.restockItems)
}

func TestAnalyzeInventoryHealth_PropagaErrorDelProveedor(t *testing.T) {
	llm := &fakeLLM{err: assert.AnError}
	uc := usecase.NewAIUseCase(llm, &fakeCatalogRepo{})

	_, err := uc.AnalyzeInventoryHealth(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
