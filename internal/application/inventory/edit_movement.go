package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// EditMovementUseCase edita o elimina un movimiento registrado reconciliando
// el stock: revierte el efecto original y aplica el nuevo en una sola
// transacción. Si algún artículo quedaría en negativo, la edición completa se
// rechaza con ErrInsufficientStock; nunca se hace clamping silencioso, porque
// eso rompería el invariante de reconstrucción del kardex.
type EditMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewEditMovementUseCase construye el caso de uso.
func NewEditMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *EditMovementUseCase {
	return &EditMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// EditMovement reemplaza el movimiento id por la versión del request.
// La dirección, las líneas y las cantidades pueden cambiar todas a la vez;
// el delta neto por artículo es signedDelta(revisado) − signedDelta(original).
func (uc *EditMovementUseCase) EditMovement(ctx context.Context, id, userID string, in dto.RegisterMovementRequest) (*entity.MovementRecord, error) {
	original, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}

	revised, err := buildMovement(userID, in)
	if err != nil {
		return nil, err
	}
	revised.ID = original.ID
	if in.Date == "" {
		revised.Date = original.Date // editar sin fecha conserva la original
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, itemRepo repository.StockItemRepository) error {
		if err := applyDeltas(itemRepo, revised, original, time.Now()); err != nil {
			return err
		}
		return movRepo.Update(revised)
	})
	if err != nil {
		return nil, err
	}
	return revised, nil
}

// DeleteMovement elimina un movimiento revirtiendo primero su efecto sobre el
// stock (el inverso exacto de cada línea), todo en una transacción. Borrar el
// registro sin revertir dejaría el historial inconsistente con la cantidad viva.
func (uc *EditMovementUseCase) DeleteMovement(ctx context.Context, id string) error {
	original, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if original == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, itemRepo repository.StockItemRepository) error {
		// revisado nil = el movimiento deja de existir; delta = −signedDelta(original)
		if err := applyDeltas(itemRepo, nil, original, time.Now()); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}

// ListMovements historial completo paginado, más nuevo primero.
func (uc *EditMovementUseCase) ListMovements(ctx context.Context, page dto.PageRequest) ([]*entity.MovementRecord, error) {
	page.DefaultPage()
	return uc.movRepo.List(page.Limit, page.Offset)
}

// GetMovement devuelve un movimiento por ID.
func (uc *EditMovementUseCase) GetMovement(ctx context.Context, id string) (*entity.MovementRecord, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	return m, nil
}
