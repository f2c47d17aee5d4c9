package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un artículo del catálogo.
// InStock/LowStock/OutOfStock se derivan de Quantity; Discontinued es manual.
const (
	StatusInStock      = "In Stock"
	StatusLowStock     = "Low Stock"
	StatusOutOfStock   = "Out of Stock"
	StatusDiscontinued = "Discontinued"
)

// LowStockThreshold cantidad por debajo de la cual un artículo pasa a Low Stock.
const LowStockThreshold = 20

// StockItem representa un artículo del catálogo de inventario.
// Quantity se expresa en unidades base y solo muta vía movimientos de stock;
// Status debe recalcularse con StatusForQuantity cada vez que Quantity cambia.
type StockItem struct {
	ID          string
	Name        string
	SKU         string
	Category    string
	Quantity    int64 // unidades base, nunca negativo
	Price       decimal.Decimal
	Status      string
	LastUpdated time.Time
}

// StatusForQuantity deriva el estado a partir de la cantidad:
// 0 -> Out of Stock, <20 -> Low Stock, resto -> In Stock.
func StatusForQuantity(quantity int64) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity < LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ApplyQuantity fija la nueva cantidad, rederiva Status y actualiza LastUpdated.
// Los artículos descontinuados conservan su estado manual.
func (i *StockItem) ApplyQuantity(quantity int64, now time.Time) {
	i.Quantity = quantity
	if i.Status != StatusDiscontinued {
		i.Status = StatusForQuantity(quantity)
	}
	i.LastUpdated = now
}
