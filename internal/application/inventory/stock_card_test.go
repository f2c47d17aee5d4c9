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

// Kardex de extremo a extremo sobre los fakes: registra movimientos reales y
// verifica que la reconstrucción camina el historial desde la cantidad viva.
func TestStockCard_HistorialCompleto(t *testing.T) {
	store := newFakeStore(cafeItem(100))
	runner := &fakeTxRunner{store}
	reg := inventory.NewRegisterMovementUseCase(runner)

	in := inRequest(entity.DirectionIn, 50, 1)
	in.Date = "2024-01-01"
	_, err := reg.RegisterMovement(context.Background(), "usr-1", in)
	require.NoError(t, err)

	out := inRequest(entity.DirectionOut, 30, 1)
	out.Date = "2024-01-05"
	_, err = reg.RegisterMovement(context.Background(), "usr-1", out)
	require.NoError(t, err)

	uc := inventory.NewStockCardUseCase(&fakeItemRepo{store}, &fakeMovementRepo{store}, nil)
	view, err := uc.GetStockCard(context.Background(), "itm-cafe", dto.StockCardRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(100), view.Card.OpeningBalance)
	assert.Equal(t, int64(50), view.Card.TotalIn)
	assert.Equal(t, int64(30), view.Card.TotalOut)
	assert.Equal(t, int64(120), view.Card.ClosingBalance)
	require.Len(t, view.Card.Rows, 2)
	// Filas de más reciente a más antigua, cada una con su saldo posterior.
	assert.Equal(t, int64(120), view.Card.Rows[0].BalanceAfter)
	assert.Equal(t, int64(150), view.Card.Rows[1].BalanceAfter)
}

func TestStockCard_VentanaFiltraFilas(t *testing.T) {
	store := newFakeStore(cafeItem(100))
	runner := &fakeTxRunner{store}
	reg := inventory.NewRegisterMovementUseCase(runner)

	in := inRequest(entity.DirectionIn, 50, 1)
	in.Date = "2024-01-01"
	_, err := reg.RegisterMovement(context.Background(), "usr-1", in)
	require.NoError(t, err)

	out := inRequest(entity.DirectionOut, 30, 1)
	out.Date = "2024-01-05"
	_, err = reg.RegisterMovement(context.Background(), "usr-1", out)
	require.NoError(t, err)

	uc := inventory.NewStockCardUseCase(&fakeItemRepo{store}, &fakeMovementRepo{store}, nil)
	view, err := uc.GetStockCard(context.Background(), "itm-cafe", dto.StockCardRequest{EndDate: "2024-01-02"})

	require.NoError(t, err)
	require.Len(t, view.Card.Rows, 1)
	assert.Equal(t, int64(150), view.Card.ClosingBalance)
}

func TestStockCard_ArticuloInexistente(t *testing.T) {
	store := newFakeStore()
	uc := inventory.NewStockCardUseCase(&fakeItemRepo{store}, &fakeMovementRepo{store}, nil)

	_, err := uc.GetStockCard(context.Background(), "itm-nada", dto.StockCardRequest{})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestStockCard_FechasInvalidas(t *testing.T) {
	store := newFakeStore(cafeItem(10))
	uc := inventory.NewStockCardUseCase(&fakeItemRepo{store}, &fakeMovementRepo{store}, nil)

	_, err := uc.GetStockCard(context.Background(), "itm-cafe", dto.StockCardRequest{StartDate: "01/02/2024"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.GetStockCard(context.Background(), "itm-cafe", dto.StockCardRequest{StartDate: "2024-02-01", EndDate: "2024-01-01"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
