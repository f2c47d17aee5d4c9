package dto

// UnitDTO unidad seleccionada en una línea.
type UnitDTO struct {
	Name  string `json:"name"`
	Ratio int64  `json:"ratio"`
}

// MovementLineDTO línea de un movimiento (snapshot del artículo).
type MovementLineDTO struct {
	ItemID        string  `json:"item_id"`
	Name          string  `json:"name,omitempty"`
	SKU           string  `json:"sku,omitempty"`
	SelectedUnit  UnitDTO `json:"selected_unit"`
	OrderQuantity int64   `json:"order_quantity"`
}

// RegisterMovementRequest body para POST /api/movements.
type RegisterMovementRequest struct {
	Date            string            `json:"date"` // YYYY-MM-DD; vacío = hoy
	Direction       string            `json:"direction"`
	Lines           []MovementLineDTO `json:"lines"`
	ReferenceNumber string            `json:"reference_number,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	Attachments     []string          `json:"attachments,omitempty"`
}

// MovementDTO representación HTTP de un movimiento registrado.
type MovementDTO struct {
	ID              string            `json:"id"`
	Date            string            `json:"date"`
	Direction       string            `json:"direction"`
	Lines           []MovementLineDTO `json:"lines"`
	TotalBaseUnits  int64             `json:"total_base_units"`
	ReferenceNumber string            `json:"reference_number"`
	Notes           string            `json:"notes"`
	Attachments     []string          `json:"attachments"`
}
