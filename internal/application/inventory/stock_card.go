package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/ledger"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// StockCardView kardex listo para presentación (respuesta HTTP o PDF).
type StockCardView struct {
	Item      entity.StockItem
	Card      ledger.StockCard
	StartDate *time.Time
	EndDate   *time.Time
}

// StockCardUseCase arma el kardex de un artículo: lee la cantidad viva y el
// historial completo de movimientos y delega la aritmética al reconciliador
// de dominio (función pura, los saldos siempre reflejan el historial entero).
type StockCardUseCase struct {
	itemRepo repository.StockItemRepository
	movRepo  repository.MovementRepository
	pdf      StockCardPDFGenerator
}

// NewStockCardUseCase construye el caso de uso. pdf puede ser nil si la
// exportación no está habilitada.
func NewStockCardUseCase(itemRepo repository.StockItemRepository, movRepo repository.MovementRepository, pdf StockCardPDFGenerator) *StockCardUseCase {
	return &StockCardUseCase{itemRepo: itemRepo, movRepo: movRepo, pdf: pdf}
}

// GetStockCard reconstruye el kardex del artículo con la ventana opcional del
// request. Las fechas van como YYYY-MM-DD; inválidas -> ErrValidation.
func (uc *StockCardUseCase) GetStockCard(ctx context.Context, itemID string, in dto.StockCardRequest) (*StockCardView, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}

	rng, err := parseRange(in)
	if err != nil {
		return nil, err
	}

	history, err := uc.movRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	movements := make([]entity.MovementRecord, 0, len(history))
	for _, m := range history {
		movements = append(movements, *m)
	}

	card := ledger.ReconstructLedger(item.Quantity, movements, itemID, rng)
	return &StockCardView{Item: *item, Card: card, StartDate: rng.Start, EndDate: rng.End}, nil
}

// ExportStockCardPDF genera el kardex y lo exporta como PDF.
func (uc *StockCardUseCase) ExportStockCardPDF(ctx context.Context, itemID string, in dto.StockCardRequest) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("exportación PDF no configurada")
	}
	view, err := uc.GetStockCard(ctx, itemID, in)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockCardPDF(ctx, *view)
}

func parseRange(in dto.StockCardRequest) (ledger.DateRange, error) {
	var rng ledger.DateRange
	if in.StartDate != "" {
		t, err := time.Parse(dateLayout, in.StartDate)
		if err != nil {
			return rng, fmt.Errorf("%w: start_date %q no es YYYY-MM-DD", domain.ErrValidation, in.StartDate)
		}
		rng.Start = &t
	}
	if in.EndDate != "" {
		t, err := time.Parse(dateLayout, in.EndDate)
		if err != nil {
			return rng, fmt.Errorf("%w: end_date %q no es YYYY-MM-DD", domain.ErrValidation, in.EndDate)
		}
		rng.End = &t
	}
	if rng.Start != nil && rng.End != nil && rng.End.Before(*rng.Start) {
		return rng, fmt.Errorf("%w: end_date anterior a start_date", domain.ErrValidation)
	}
	return rng, nil
}
