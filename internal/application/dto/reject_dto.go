package dto

// RejectMasterItemDTO artículo del catálogo maestro de mermas.
type RejectMasterItemDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	SKU         string `json:"sku,omitempty"`
	DefaultUnit string `json:"default_unit,omitempty"`
	Category    string `json:"category,omitempty"`
}

// RejectLineDTO línea de un registro de merma.
type RejectLineDTO struct {
	ItemID        string  `json:"item_id"`
	Name          string  `json:"name,omitempty"`
	SKU           string  `json:"sku,omitempty"`
	SelectedUnit  UnitDTO `json:"selected_unit"`
	OrderQuantity int64   `json:"order_quantity"`
}

// CreateRejectRecordRequest body para POST /api/reject/records.
type CreateRejectRecordRequest struct {
	Date       string          `json:"date"` // YYYY-MM-DD; vacío = hoy
	OutletName string          `json:"outlet_name"`
	Lines      []RejectLineDTO `json:"lines"`
}

// RejectRecordDTO representación HTTP de un registro de merma.
type RejectRecordDTO struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	OutletName string          `json:"outlet_name"`
	Lines      []RejectLineDTO `json:"lines"`
	TotalItems int64           `json:"total_items"`
}
