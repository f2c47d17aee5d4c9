package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/inventory"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

// registra un movimiento inicial y devuelve los casos de uso compartiendo store.
func setupEdit(t *testing.T, initialQty int64, req dto.RegisterMovementRequest) (*fakeStore, *inventory.EditMovementUseCase, *entity.MovementRecord) {
	t.Helper()
	store := newFakeStore(cafeItem(initialQty))
	runner := &fakeTxRunner{store}
	reg := inventory.NewRegisterMovementUseCase(runner)
	rec, err := reg.RegisterMovement(context.Background(), "usr-1", req)
	require.NoError(t, err)
	edit := inventory.NewEditMovementUseCase(runner, &fakeMovementRepo{store})
	return store, edit, rec
}

// Escenario del kardex: A era IN +50 con cantidad actual 120; editarlo a +20
// produce delta −30 y la cantidad viva queda en 90.
func TestEditMovement_ReducirEntrada(t *testing.T) {
	store, edit, rec := setupEdit(t, 70, inRequest(entity.DirectionIn, 50, 1))
	require.Equal(t, int64(120), store.items["itm-cafe"].Quantity)

	revised, err := edit.EditMovement(context.Background(), rec.ID, "usr-1", inRequest(entity.DirectionIn, 20, 1))

	require.NoError(t, err)
	assert.Equal(t, int64(90), store.items["itm-cafe"].Quantity)
	assert.Equal(t, int64(20), revised.TotalBaseUnits)
	assert.Equal(t, rec.ID, revised.ID)
	// El registro persistido es la versión revisada.
	saved := store.movements[rec.ID]
	assert.Equal(t, int64(20), saved.TotalBaseUnits)
}

func TestEditMovement_CambioDeDireccion(t *testing.T) {
	store, edit, rec := setupEdit(t, 100, inRequest(entity.DirectionIn, 30, 1))
	require.Equal(t, int64(130), store.items["itm-cafe"].Quantity)

	// IN +30 -> OUT 30: delta = −60.
	_, err := edit.EditMovement(context.Background(), rec.ID, "usr-1", inRequest(entity.DirectionOut, 30, 1))

	require.NoError(t, err)
	assert.Equal(t, int64(70), store.items["itm-cafe"].Quantity)
}

// Si la edición dejaría el stock en negativo, se rechaza entera: ni el
// catálogo ni el registro cambian. El clamping silencioso corrompería la
// reconstrucción del kardex.
func TestEditMovement_RechazaSiQuedaNegativo(t *testing.T) {
	store, edit, rec := setupEdit(t, 10, inRequest(entity.DirectionIn, 5, 1))
	require.Equal(t, int64(15), store.items["itm-cafe"].Quantity)

	// Editar IN +5 a OUT 20 daría delta −25 sobre 15.
	_, err := edit.EditMovement(context.Background(), rec.ID, "usr-1", inRequest(entity.DirectionOut, 20, 1))

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(15), store.items["itm-cafe"].Quantity)
	saved := store.movements[rec.ID]
	assert.Equal(t, entity.DirectionIn, saved.Direction)
	assert.Equal(t, int64(5), saved.TotalBaseUnits)
}

// Propiedad editar-y-revertir: aplicar la edición y luego la inversa devuelve
// la cantidad original.
func TestEditMovement_EditarYRevertir(t *testing.T) {
	store, edit, rec := setupEdit(t, 70, inRequest(entity.DirectionIn, 50, 1))

	_, err := edit.EditMovement(context.Background(), rec.ID, "usr-1", inRequest(entity.DirectionIn, 20, 1))
	require.NoError(t, err)
	_, err = edit.EditMovement(context.Background(), rec.ID, "usr-1", inRequest(entity.DirectionIn, 50, 1))
	require.NoError(t, err)

	assert.Equal(t, int64(120), store.items["itm-cafe"].Quantity)
}

// Quitar un artículo de las líneas revierte su efecto; añadir uno nuevo lo aplica.
func TestEditMovement_CambioDeArticulos(t *testing.T) {
	store := newFakeStore(cafeItem(100), entity.StockItem{
		ID: "itm-te", Name: "Té verde", SKU: "TE-01", Quantity: 40,
		Status: entity.StatusInStock,
	})
	runner := &fakeTxRunner{store}
	reg := inventory.NewRegisterMovementUseCase(runner)
	rec, err := reg.RegisterMovement(context.Background(), "usr-1", inRequest(entity.DirectionIn, 10, 1))
	require.NoError(t, err)
	require.Equal(t, int64(110), store.items["itm-cafe"].Quantity)

	edit := inventory.NewEditMovementUseCase(runner, &fakeMovementRepo{store})
	revisedReq := dto.RegisterMovementRequest{
		Date:      "2024-01-10",
		Direction: entity.DirectionIn,
		Lines: []dto.MovementLineDTO{
			{ItemID: "itm-te", SelectedUnit: dto.UnitDTO{Name: "Unit", Ratio: 1}, OrderQuantity: 7},
		},
	}
	_, err = edit.EditMovement(context.Background(), rec.ID, "usr-1", revisedReq)

	require.NoError(t, err)
	assert.Equal(t, int64(100), store.items["itm-cafe"].Quantity) // revertido
	assert.Equal(t, int64(47), store.items["itm-te"].Quantity)    // aplicado
}

func TestEditMovement_NoExiste(t *testing.T) {
	store := newFakeStore(cafeItem(10))
	edit := inventory.NewEditMovementUseCase(&fakeTxRunner{store}, &fakeMovementRepo{store})

	_, err := edit.EditMovement(context.Background(), "mov-fantasma", "usr-1", inRequest(entity.DirectionIn, 1, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar un movimiento revierte su efecto antes de eliminar el registro.
func TestDeleteMovement_RevierteStock(t *testing.T) {
	store, edit, rec := setupEdit(t, 70, inRequest(entity.DirectionIn, 50, 1))
	require.Equal(t, int64(120), store.items["itm-cafe"].Quantity)

	require.NoError(t, edit.DeleteMovement(context.Background(), rec.ID))

	assert.Equal(t, int64(70), store.items["itm-cafe"].Quantity)
	assert.Empty(t, store.movements)
}

// Borrar una entrada ya consumida no puede dejar stock negativo.
func TestDeleteMovement_RechazaSiQuedaNegativo(t *testing.T) {
	store, edit, rec := setupEdit(t, 0, inRequest(entity.DirectionIn, 50, 1))
	require.Equal(t, int64(50), store.items["itm-cafe"].Quantity)

	// Se consumen 30 de las 50 que entraron.
	runner := &fakeTxRunner{store}
	reg := inventory.NewRegisterMovementUseCase(runner)
	_, err := reg.RegisterMovement(context.Background(), "usr-1", inRequest(entity.DirectionOut, 30, 1))
	require.NoError(t, err)

	err = edit.DeleteMovement(context.Background(), rec.ID)

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(20), store.items["itm-cafe"].Quantity)
	assert.Len(t, store.movements, 2)
}
