package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, name, sku, category, quantity, price, status, last_updated`

// GetByID obtiene un artículo por ID. Devuelve nil, nil si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item")
}

// GetForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *StockItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get stock item for update")
}

// Upsert inserta o reemplaza un artículo por ID (importador masivo).
func (r *StockItemRepo) Upsert(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, name, sku, category, quantity, price, status, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, sku = EXCLUDED.sku, category = EXCLUDED.category,
			quantity = EXCLUDED.quantity, price = EXCLUDED.price, status = EXCLUDED.status,
			last_updated = EXCLUDED.last_updated`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.Category, item.Quantity, item.Price, item.Status, item.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // colisión de SKU
		}
		return fmt.Errorf("upsert stock item: %w", err)
	}
	return nil
}

// Update actualiza un artículo existente.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items SET
			name = $2, sku = $3, category = $4, quantity = $5, price = $6,
			status = $7, last_updated = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.SKU, item.Category, item.Quantity, item.Price, item.Status, item.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.ID)
	}
	return nil
}

// List devuelve el catálogo paginado, ordenado por nombre.
func (r *StockItemRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Quantity, &it.Price, &it.Status, &it.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina un artículo por ID.
func (r *StockItemRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return nil
}

func (r *StockItemRepo) scanOne(row pgx.Row, op string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := row.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Quantity, &it.Price, &it.Status, &it.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}
