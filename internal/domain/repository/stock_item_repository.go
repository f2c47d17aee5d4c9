package repository

import "github.com/neonflow/neonflow-api/internal/domain/entity"

// StockItemRepository define el puerto de persistencia para el catálogo (DIP).
type StockItemRepository interface {
	GetByID(id string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar solo
	// dentro de la transacción de un movimiento.
	GetForUpdate(id string) (*entity.StockItem, error)
	Upsert(item *entity.StockItem) error
	Update(item *entity.StockItem) error
	List(limit, offset int) ([]*entity.StockItem, error)
	Delete(id string) error
}
