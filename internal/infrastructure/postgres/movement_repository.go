package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL.
// Un movimiento vive en dos tablas: movements (cabecera) y movement_lines
// (snapshot de líneas). Las escrituras de ambas deben correr dentro de la
// misma transacción; por eso el repo acepta pool o tx (Querier).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, date, direction, total_base_units, reference_number, notes, attachments, created_by`

// Create persiste la cabecera y sus líneas.
func (r *MovementRepo) Create(m *entity.MovementRecord) error {
	query := `
		INSERT INTO movements (id, date, direction, total_base_units, reference_number, notes, attachments, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Date, m.Direction, m.TotalBaseUnits, m.ReferenceNumber, m.Notes, m.Attachments, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return r.insertLines(m)
}

// GetByID obtiene un movimiento con sus líneas. Devuelve nil, nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.MovementRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Date, &m.Direction, &m.TotalBaseUnits, &m.ReferenceNumber, &m.Notes, &m.Attachments, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	lines, err := r.loadLines([]string{m.ID})
	if err != nil {
		return nil, err
	}
	m.Lines = lines[m.ID]
	return &m, nil
}

// Update reemplaza la cabecera y reescribe las líneas completas.
func (r *MovementRepo) Update(m *entity.MovementRecord) error {
	query := `
		UPDATE movements SET
			date = $2, direction = $3, total_base_units = $4,
			reference_number = $5, notes = $6, attachments = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		m.ID, m.Date, m.Direction, m.TotalBaseUnits, m.ReferenceNumber, m.Notes, m.Attachments,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update movement: %s no existe", m.ID)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM movement_lines WHERE movement_id = $1`, m.ID); err != nil {
		return fmt.Errorf("clear movement lines: %w", err)
	}
	return r.insertLines(m)
}

// Delete elimina un movimiento; las líneas caen por ON DELETE CASCADE.
func (r *MovementRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete movement: %s no existe", id)
	}
	return nil
}

// List devuelve movimientos con líneas, más recientes primero.
func (r *MovementRepo) List(limit, offset int) ([]*entity.MovementRecord, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMovements(query, limit, offset)
}

// ListByItem devuelve el historial completo de movimientos que tocan un
// artículo, en orden de registro ascendente. El orden de inserción importa:
// movimientos con la misma fecha se desempatan por orden de creación al
// reconstruir el kardex.
func (r *MovementRepo) ListByItem(itemID string) ([]*entity.MovementRecord, error) {
	query := `
		SELECT m.id, m.date, m.direction, m.total_base_units, m.reference_number, m.notes, m.attachments, m.created_by
		FROM movements m
		WHERE EXISTS (
			SELECT 1 FROM movement_lines l WHERE l.movement_id = m.id AND l.item_id = $1
		)
		ORDER BY m.created_at ASC`
	return r.queryMovements(query, itemID)
}

func (r *MovementRepo) queryMovements(query string, args ...any) ([]*entity.MovementRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementRecord
	var ids []string
	for rows.Next() {
		var m entity.MovementRecord
		if err := rows.Scan(&m.ID, &m.Date, &m.Direction, &m.TotalBaseUnits,
			&m.ReferenceNumber, &m.Notes, &m.Attachments, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	lines, err := r.loadLines(ids)
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		m.Lines = lines[m.ID]
	}
	return list, nil
}

func (r *MovementRepo) insertLines(m *entity.MovementRecord) error {
	query := `
		INSERT INTO movement_lines (movement_id, line_no, item_id, name, sku, unit_name, unit_ratio, order_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, l := range m.Lines {
		_, err := r.q.Exec(context.Background(), query,
			m.ID, i, l.ItemID, l.Name, l.SKU, l.SelectedUnit.Name, l.SelectedUnit.Ratio, l.OrderQuantity,
		)
		if err != nil {
			return fmt.Errorf("insert movement line: %w", err)
		}
	}
	return nil
}

// loadLines trae las líneas de un conjunto de movimientos, en orden line_no.
func (r *MovementRepo) loadLines(movementIDs []string) (map[string][]entity.LineEntry, error) {
	query := `
		SELECT movement_id, item_id, name, sku, unit_name, unit_ratio, order_quantity
		FROM movement_lines
		WHERE movement_id = ANY($1)
		ORDER BY movement_id, line_no`
	rows, err := r.q.Query(context.Background(), query, movementIDs)
	if err != nil {
		return nil, fmt.Errorf("load movement lines: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.LineEntry, len(movementIDs))
	for rows.Next() {
		var movementID string
		var l entity.LineEntry
		if err := rows.Scan(&movementID, &l.ItemID, &l.Name, &l.SKU,
			&l.SelectedUnit.Name, &l.SelectedUnit.Ratio, &l.OrderQuantity); err != nil {
			return nil, fmt.Errorf("scan movement line: %w", err)
		}
		out[movementID] = append(out[movementID], l)
	}
	return out, rows.Err()
}
