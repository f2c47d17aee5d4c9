package dto

import "github.com/shopspring/decimal"

// StockItemDTO representación HTTP de un artículo del catálogo.
type StockItemDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	LastUpdated string          `json:"last_updated"` // YYYY-MM-DD
}

// ImportRowDTO fila ya parseada del importador masivo de catálogo.
// Los campos faltantes se completan con ID/SKU generados; filas sin nombre se
// descartan. No hay deduplicación por nombre.
type ImportRowDTO struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku,omitempty"`
	Category string          `json:"category,omitempty"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Status   string          `json:"status,omitempty"`
}

// ImportResultDTO resumen del upsert masivo.
type ImportResultDTO struct {
	Imported int            `json:"imported"`
	Skipped  int            `json:"skipped"`
	Items    []StockItemDTO `json:"items"`
}

// StockCardRequest query params del kardex de un artículo.
// Las fechas van en formato YYYY-MM-DD; vacías = sin límite.
type StockCardRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// StockCardRowDTO fila del kardex: movimiento anotado con el saldo posterior.
type StockCardRowDTO struct {
	MovementID   string `json:"movement_id"`
	Date         string `json:"date"`
	Direction    string `json:"direction"`
	Reference    string `json:"reference"`
	Notes        string `json:"notes"`
	SignedDelta  int64  `json:"signed_delta"`
	BalanceAfter int64  `json:"balance_after"`
}

// StockCardDTO respuesta del kardex.
type StockCardDTO struct {
	Item           StockItemDTO      `json:"item"`
	OpeningBalance int64             `json:"opening_balance"`
	TotalIn        int64             `json:"total_in"`
	TotalOut       int64             `json:"total_out"`
	ClosingBalance int64             `json:"closing_balance"`
	Rows           []StockCardRowDTO `json:"rows"`
}
