package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/inventory"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

func TestBulkImport_CompletaCamposFaltantes(t *testing.T) {
	store := newFakeStore()
	uc := inventory.NewBulkImportUseCase(&fakeTxRunner{store})

	rows := []dto.ImportRowDTO{
		{Name: "  Harina 1kg ", Category: "panadería artesanal", Quantity: 30, Price: decimal.NewFromInt(3)},
		{Name: "Azúcar", Quantity: 0},
	}

	result, err := uc.ImportRows(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	harina := result.Items[0]
	assert.Equal(t, "Harina 1kg", harina.Name)
	assert.Equal(t, "Panadería Artesanal", harina.Category)
	assert.NotEmpty(t, harina.ID)
	assert.Contains(t, harina.SKU, "GEN-")
	assert.Equal(t, entity.StatusInStock, harina.Status)

	azucar := result.Items[1]
	assert.Equal(t, "General", azucar.Category)
	assert.Equal(t, entity.StatusOutOfStock, azucar.Status)

	assert.Len(t, store.items, 2)
}

func TestBulkImport_FilasSinNombreSeDescartan(t *testing.T) {
	store := newFakeStore()
	uc := inventory.NewBulkImportUseCase(&fakeTxRunner{store})

	rows := []dto.ImportRowDTO{
		{Name: "Sal fina", Quantity: 10},
		{Name: "   ", Quantity: 5},
		{Name: "", Quantity: 7},
	}

	result, err := uc.ImportRows(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, store.items, 1)
}

// Duplicados por nombre NO se deduplican: cada fila produce su propio artículo.
func TestBulkImport_NombresRepetidosNoSeDeduplican(t *testing.T) {
	store := newFakeStore()
	uc := inventory.NewBulkImportUseCase(&fakeTxRunner{store})

	rows := []dto.ImportRowDTO{
		{Name: "Aceite", Quantity: 5},
		{Name: "Aceite", Quantity: 8},
	}

	result, err := uc.ImportRows(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Len(t, store.items, 2)
}

// Upsert por ID: una fila con ID existente reemplaza al artículo.
func TestBulkImport_UpsertPorID(t *testing.T) {
	store := newFakeStore(cafeItem(5))
	uc := inventory.NewBulkImportUseCase(&fakeTxRunner{store})

	rows := []dto.ImportRowDTO{
		{ID: "itm-cafe", Name: "Café 500g", SKU: "CAF-500", Quantity: 200, Price: decimal.NewFromInt(14)},
	}

	_, err := uc.ImportRows(context.Background(), rows)

	require.NoError(t, err)
	require.Len(t, store.items, 1)
	assert.Equal(t, int64(200), store.items["itm-cafe"].Quantity)
	assert.Equal(t, entity.StatusInStock, store.items["itm-cafe"].Status)
}

// Discontinued declarado se respeta aunque haya cantidad positiva.
func TestBulkImport_RespetaDiscontinuado(t *testing.T) {
	store := newFakeStore()
	uc := inventory.NewBulkImportUseCase(&fakeTxRunner{store})

	rows := []dto.ImportRowDTO{
		{Name: "Yerba vieja", Quantity: 50, Status: entity.StatusDiscontinued},
	}

	result, err := uc.ImportRows(context.Background(), rows)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusDiscontinued, result.Items[0].Status)
}

func TestBulkImport_LoteInvalido(t *testing.T) {
	store := newFakeStore()
	uc := inventory.NewBulkImportUseCase(&fakeTxRunner{store})

	_, err := uc.ImportRows(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.ImportRows(context.Background(), []dto.ImportRowDTO{{Name: ""}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.ImportRows(context.Background(), []dto.ImportRowDTO{{Name: "Mal", Quantity: -1}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, store.items)
}
