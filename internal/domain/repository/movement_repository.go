package repository

import "github.com/neonflow/neonflow-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos de stock.
// Los registros se guardan normalizados (movements + movement_lines), nunca
// como JSON libre.
type MovementRepository interface {
	Create(m *entity.MovementRecord) error
	GetByID(id string) (*entity.MovementRecord, error)
	// Update reemplaza el registro y todas sus líneas (edición explícita).
	Update(m *entity.MovementRecord) error
	Delete(id string) error
	// List devuelve movimientos completos ordenados por fecha descendente.
	List(limit, offset int) ([]*entity.MovementRecord, error)
	// ListByItem devuelve el historial completo de movimientos que incluyen el
	// artículo (entrada del reconciliador de kardex).
	ListByItem(itemID string) ([]*entity.MovementRecord, error)
}
