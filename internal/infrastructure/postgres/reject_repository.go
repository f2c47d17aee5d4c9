package postgres

import (
	"context"
	"fmt"

	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

var _ repository.RejectMasterRepository = (*RejectMasterRepo)(nil)
var _ repository.RejectRecordRepository = (*RejectRecordRepo)(nil)

// RejectMasterRepo catálogo maestro del módulo de mermas sobre PostgreSQL.
type RejectMasterRepo struct {
	q Querier
}

// NewRejectMasterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRejectMasterRepository(q Querier) *RejectMasterRepo {
	return &RejectMasterRepo{q: q}
}

// Upsert inserta o reemplaza un artículo maestro por ID.
func (r *RejectMasterRepo) Upsert(item *entity.RejectMasterItem) error {
	query := `
		INSERT INTO reject_master (id, name, sku, default_unit, category)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, sku = EXCLUDED.sku,
			default_unit = EXCLUDED.default_unit, category = EXCLUDED.category`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Name, item.SKU, item.DefaultUnit, item.Category)
	if err != nil {
		return fmt.Errorf("upsert reject master item: %w", err)
	}
	return nil
}

// List devuelve el catálogo maestro ordenado por nombre.
func (r *RejectMasterRepo) List() ([]*entity.RejectMasterItem, error) {
	query := `SELECT id, name, sku, default_unit, category FROM reject_master ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list reject master: %w", err)
	}
	defer rows.Close()
	var list []*entity.RejectMasterItem
	for rows.Next() {
		var it entity.RejectMasterItem
		if err := rows.Scan(&it.ID, &it.Name, &it.SKU, &it.DefaultUnit, &it.Category); err != nil {
			return nil, fmt.Errorf("scan reject master item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// RejectRecordRepo registros de merma sobre PostgreSQL (cabecera + líneas).
type RejectRecordRepo struct {
	q Querier
}

// NewRejectRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRejectRecordRepository(q Querier) *RejectRecordRepo {
	return &RejectRecordRepo{q: q}
}

// Create persiste el registro y sus líneas.
func (r *RejectRecordRepo) Create(record *entity.RejectRecord) error {
	query := `
		INSERT INTO reject_records (id, date, outlet_name, total_items)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, record.ID, record.Date, record.OutletName, record.TotalItems)
	if err != nil {
		return fmt.Errorf("create reject record: %w", err)
	}
	lineQuery := `
		INSERT INTO reject_lines (record_id, line_no, item_id, name, sku, unit_name, unit_ratio, order_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, l := range record.Lines {
		_, err := r.q.Exec(context.Background(), lineQuery,
			record.ID, i, l.ItemID, l.Name, l.SKU, l.SelectedUnit.Name, l.SelectedUnit.Ratio, l.OrderQuantity,
		)
		if err != nil {
			return fmt.Errorf("insert reject line: %w", err)
		}
	}
	return nil
}

// List devuelve registros completos, más recientes primero.
func (r *RejectRecordRepo) List(limit, offset int) ([]*entity.RejectRecord, error) {
	query := `
		SELECT id, date, outlet_name, total_items
		FROM reject_records
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reject records: %w", err)
	}
	defer rows.Close()

	var list []*entity.RejectRecord
	var ids []string
	for rows.Next() {
		var rec entity.RejectRecord
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.OutletName, &rec.TotalItems); err != nil {
			return nil, fmt.Errorf("scan reject record: %w", err)
		}
		list = append(list, &rec)
		ids = append(ids, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	lineQuery := `
		SELECT record_id, item_id, name, sku, unit_name, unit_ratio, order_quantity
		FROM reject_lines
		WHERE record_id = ANY($1)
		ORDER BY record_id, line_no`
	lineRows, err := r.q.Query(context.Background(), lineQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("load reject lines: %w", err)
	}
	defer lineRows.Close()

	byRecord := make(map[string][]entity.RejectLine, len(ids))
	for lineRows.Next() {
		var recordID string
		var l entity.RejectLine
		if err := lineRows.Scan(&recordID, &l.ItemID, &l.Name, &l.SKU,
			&l.SelectedUnit.Name, &l.SelectedUnit.Ratio, &l.OrderQuantity); err != nil {
			return nil, fmt.Errorf("scan reject line: %w", err)
		}
		byRecord[recordID] = append(byRecord[recordID], l)
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range list {
		rec.Lines = byRecord[rec.ID]
	}
	return list, nil
}
