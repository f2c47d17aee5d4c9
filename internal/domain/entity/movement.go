package entity

import "time"

// Direcciones de un movimiento de stock.
const (
	DirectionIn  = "IN"  // entrada
	DirectionOut = "OUT" // salida
)

// UnitDefinition es un múltiplo con nombre de la unidad base de conteo
// (ej. "Box" con ratio 24 = 24 unidades base).
type UnitDefinition struct {
	Name  string
	Ratio int64 // > 0
}

// LineEntry es la foto inmutable de lo que se movió: copia nombre y SKU del
// artículo en el momento del movimiento, de modo que el histórico siga siendo
// fiel aunque el catálogo cambie después.
type LineEntry struct {
	ItemID        string
	Name          string
	SKU           string
	SelectedUnit  UnitDefinition
	OrderQuantity int64 // >= 1, en la unidad seleccionada
}

// BaseUnits devuelve la cantidad de la línea convertida a unidades base.
func (l LineEntry) BaseUnits() int64 {
	return l.OrderQuantity * l.SelectedUnit.Ratio
}

// MovementRecord es un movimiento de stock registrado (entrada o salida).
// Inmutable salvo por la operación explícita de edición, que reconcilia stock.
type MovementRecord struct {
	ID              string
	Date            time.Time
	Direction       string // IN | OUT
	Lines           []LineEntry
	TotalBaseUnits  int64 // suma de BaseUnits de todas las líneas
	ReferenceNumber string
	Notes           string
	Attachments     []string
	CreatedBy       string
}

// ComputeTotalBaseUnits recalcula TotalBaseUnits desde las líneas.
func (m *MovementRecord) ComputeTotalBaseUnits() int64 {
	var total int64
	for _, l := range m.Lines {
		total += l.BaseUnits()
	}
	return total
}

// SignedDeltaFor devuelve el delta firmado en unidades base que este movimiento
// aporta al artículo: suma de todas sus líneas, positivo para IN y negativo
// para OUT. Cero si el artículo no aparece en el movimiento.
func (m *MovementRecord) SignedDeltaFor(itemID string) int64 {
	var base int64
	for _, l := range m.Lines {
		if l.ItemID == itemID {
			base += l.BaseUnits()
		}
	}
	if m.Direction == DirectionOut {
		return -base
	}
	return base
}

// ItemIDs devuelve los IDs de artículo presentes en el movimiento, sin duplicados,
// en orden de aparición.
func (m *MovementRecord) ItemIDs() []string {
	seen := make(map[string]struct{}, len(m.Lines))
	var ids []string
	for _, l := range m.Lines {
		if _, ok := seen[l.ItemID]; ok {
			continue
		}
		seen[l.ItemID] = struct{}{}
		ids = append(ids, l.ItemID)
	}
	return ids
}
