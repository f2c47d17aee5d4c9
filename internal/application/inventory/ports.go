package inventory

import (
	"context"

	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad a granularidad de
// movimiento: todas las actualizaciones de cantidad de un movimiento se
// confirman o se revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		itemRepo repository.StockItemRepository,
	) error) error
}

// StockCardPDFGenerator puerto de salida para exportar el kardex como PDF.
type StockCardPDFGenerator interface {
	GenerateStockCardPDF(ctx context.Context, card StockCardView) ([]byte, error)
}
