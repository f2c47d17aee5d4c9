package entity

import "time"

// RejectMasterItem es un artículo del catálogo maestro del módulo de mermas.
// Vive en un espacio de nombres separado del inventario: no comparte IDs ni
// afecta cantidades de StockItem.
type RejectMasterItem struct {
	ID          string
	Name        string
	SKU         string
	DefaultUnit string
	Category    string
}

// RejectLine línea de un registro de merma (snapshot del artículo maestro).
type RejectLine struct {
	ItemID        string
	Name          string
	SKU           string
	SelectedUnit  UnitDefinition
	OrderQuantity int64
}

// BaseUnits devuelve la cantidad de la línea en unidades base.
func (l RejectLine) BaseUnits() int64 {
	return l.OrderQuantity * l.SelectedUnit.Ratio
}

// RejectRecord registro de merma/rechazo de un punto de venta.
type RejectRecord struct {
	ID         string
	Date       time.Time
	OutletName string
	Lines      []RejectLine
	TotalItems int64 // suma de BaseUnits de las líneas
}
