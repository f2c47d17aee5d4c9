package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/ledger"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// dateLayout formato de fecha de los movimientos (día calendario).
const dateLayout = "2006-01-02"

// RegisterMovementUseCase registra movimientos de stock de forma transaccional:
// persiste el registro y aplica el delta de cada línea al catálogo con bloqueo
// de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// RegisterMovement valida el request, inicia una transacción y aplica el
// movimiento completo. Cualquier línea inválida (artículo inexistente, stock
// insuficiente) revierte la unidad entera; nunca se aplica parcialmente.
// No hay clamping a cero: una salida que dejaría cantidad negativa se rechaza.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*entity.MovementRecord, error) {
	record, err := buildMovement(userID, in)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, itemRepo repository.StockItemRepository) error {
		if err := movRepo.Create(record); err != nil {
			return err
		}
		return applyDeltas(itemRepo, record, nil, record.Date)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// buildMovement valida la forma del request antes de tocar persistencia
// (ErrValidation se decide sin abrir transacción) y congela las líneas.
func buildMovement(userID string, in dto.RegisterMovementRequest) (*entity.MovementRecord, error) {
	if in.Direction != entity.DirectionIn && in.Direction != entity.DirectionOut {
		return nil, fmt.Errorf("%w: direction debe ser IN u OUT", domain.ErrValidation)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: el movimiento no tiene líneas", domain.ErrValidation)
	}

	date := time.Now().Truncate(24 * time.Hour)
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha %q no es YYYY-MM-DD", domain.ErrValidation, in.Date)
		}
		date = parsed
	}

	record := &entity.MovementRecord{
		ID:              uuid.New().String(),
		Date:            date,
		Direction:       in.Direction,
		ReferenceNumber: in.ReferenceNumber,
		Notes:           in.Notes,
		Attachments:     in.Attachments,
		CreatedBy:       userID,
	}
	for _, l := range in.Lines {
		if l.ItemID == "" {
			return nil, fmt.Errorf("%w: línea sin item_id", domain.ErrValidation)
		}
		if l.OrderQuantity < 1 {
			return nil, fmt.Errorf("%w: cantidad de %s debe ser >= 1", domain.ErrValidation, l.ItemID)
		}
		if l.SelectedUnit.Ratio < 1 {
			return nil, fmt.Errorf("%w: ratio de unidad de %s debe ser >= 1", domain.ErrValidation, l.ItemID)
		}
		record.Lines = append(record.Lines, entity.LineEntry{
			ItemID:        l.ItemID,
			Name:          l.Name,
			SKU:           l.SKU,
			SelectedUnit:  entity.UnitDefinition{Name: l.SelectedUnit.Name, Ratio: l.SelectedUnit.Ratio},
			OrderQuantity: l.OrderQuantity,
		})
	}
	record.TotalBaseUnits = record.ComputeTotalBaseUnits()
	return record, nil
}

// applyDeltas aplica a cada artículo afectado el delta neto entre el estado
// original (nil para un movimiento nuevo) y el revisado, con bloqueo de fila.
// El snapshot de las líneas completa el nombre si el request no lo traía.
func applyDeltas(itemRepo repository.StockItemRepository, revised, original *entity.MovementRecord, now time.Time) error {
	for _, id := range ledger.AffectedItemIDs(original, revised) {
		delta := ledger.RevisionDelta(original, revised, id)
		if delta == 0 && original != nil {
			continue // la edición no cambió el neto de este artículo
		}

		item, err := itemRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, lineName(revised, original, id))
		}

		newQty := item.Quantity + delta
		if newQty < 0 {
			return fmt.Errorf("%w para %s: disponible %d, solicitado %d",
				domain.ErrInsufficientStock, item.Name, item.Quantity, -delta)
		}
		item.ApplyQuantity(newQty, now)
		if err := itemRepo.Update(item); err != nil {
			return err
		}

		// Congelar nombre y SKU vivos en las líneas del registro revisado.
		if revised != nil {
			for i := range revised.Lines {
				if revised.Lines[i].ItemID == id {
					if revised.Lines[i].Name == "" {
						revised.Lines[i].Name = item.Name
					}
					if revised.Lines[i].SKU == "" {
						revised.Lines[i].SKU = item.SKU
					}
				}
			}
		}
	}
	return nil
}

// lineName busca el nombre congelado del artículo en las líneas disponibles
// para armar mensajes de error legibles; cae al ID si no hay snapshot.
func lineName(revised, original *entity.MovementRecord, itemID string) string {
	for _, m := range []*entity.MovementRecord{revised, original} {
		if m == nil {
			continue
		}
		for _, l := range m.Lines {
			if l.ItemID == itemID && l.Name != "" {
				return l.Name
			}
		}
	}
	return itemID
}
