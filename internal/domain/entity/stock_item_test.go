package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neonflow/neonflow-api/internal/domain/entity"
)

func TestStatusForQuantity_Umbrales(t *testing.T) {
	assert.Equal(t, entity.StatusOutOfStock, entity.StatusForQuantity(0))
	assert.Equal(t, entity.StatusLowStock, entity.StatusForQuantity(1))
	assert.Equal(t, entity.StatusLowStock, entity.StatusForQuantity(19))
	assert.Equal(t, entity.StatusInStock, entity.StatusForQuantity(20))
	assert.Equal(t, entity.StatusInStock, entity.StatusForQuantity(5000))
}

func TestApplyQuantity_RederivaEstado(t *testing.T) {
	now := time.Now()
	item := entity.StockItem{Quantity: 100, Status: entity.StatusInStock}

	item.ApplyQuantity(0, now)
	assert.Equal(t, entity.StatusOutOfStock, item.Status)
	assert.Equal(t, now, item.LastUpdated)

	item.ApplyQuantity(15, now)
	assert.Equal(t, entity.StatusLowStock, item.Status)
}

// Discontinued es un estado manual: los movimientos no lo pisan.
func TestApplyQuantity_ConservaDescontinuado(t *testing.T) {
	item := entity.StockItem{Quantity: 10, Status: entity.StatusDiscontinued}
	item.ApplyQuantity(50, time.Now())
	assert.Equal(t, entity.StatusDiscontinued, item.Status)
}

func TestMovementRecord_TotalesYDeltas(t *testing.T) {
	m := entity.MovementRecord{
		Direction: entity.DirectionOut,
		Lines: []entity.LineEntry{
			{ItemID: "a", SelectedUnit: entity.UnitDefinition{Name: "Box", Ratio: 24}, OrderQuantity: 2},
			{ItemID: "b", SelectedUnit: entity.UnitDefinition{Name: "Unit", Ratio: 1}, OrderQuantity: 5},
		},
	}

	assert.Equal(t, int64(53), m.ComputeTotalBaseUnits())
	assert.Equal(t, int64(-48), m.SignedDeltaFor("a"))
	assert.Equal(t, int64(-5), m.SignedDeltaFor("b"))
	assert.Zero(t, m.SignedDeltaFor("c"))
	assert.Equal(t, []string{"a", "b"}, m.ItemIDs())
}
