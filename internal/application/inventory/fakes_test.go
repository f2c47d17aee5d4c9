package inventory_test

import (
	"context"

	"github.com/neonflow/neonflow-api/internal/application/inventory"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// Fakes en memoria con semántica transaccional real: Run trabaja sobre una
// copia y solo publica los cambios si fn no retorna error, igual que el
// TxRunner de PostgreSQL hace Commit/Rollback.

type fakeStore struct {
	items     map[string]entity.StockItem
	movements map[string]entity.MovementRecord
	order     []string // IDs de movimiento en orden de inserción
}

func newFakeStore(items ...entity.StockItem) *fakeStore {
	s := &fakeStore{
		items:     make(map[string]entity.StockItem),
		movements: make(map[string]entity.MovementRecord),
	}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	c.order = append([]string{}, s.order...)
	return c
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *fakeStore
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.StockItemRepository) error) error {
	tx := r.store.clone()
	if err := fn(&fakeMovementRepo{tx}, &fakeItemRepo{tx}); err != nil {
		return err // rollback: el store original queda intacto
	}
	*r.store = *tx // commit
	return nil
}

// ── StockItemRepository ───────────────────────────────────────────────────────

type fakeItemRepo struct {
	s *fakeStore
}

var _ repository.StockItemRepository = (*fakeItemRepo)(nil)

func (r *fakeItemRepo) GetByID(id string) (*entity.StockItem, error) {
	if it, ok := r.s.items[id]; ok {
		copy := it
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) Upsert(item *entity.StockItem) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) Update(item *entity.StockItem) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, it := range r.s.items {
		copy := it
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.s.items, id)
	return nil
}

// ── MovementRepository ────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	s *fakeStore
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.MovementRecord) error {
	r.s.movements[m.ID] = *m
	r.s.order = append(r.s.order, m.ID)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.MovementRecord, error) {
	if m, ok := r.s.movements[id]; ok {
		copy := m
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeMovementRepo) Update(m *entity.MovementRecord) error {
	r.s.movements[m.ID] = *m
	return nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	delete(r.s.movements, id)
	for i, mid := range r.s.order {
		if mid == id {
			r.s.order = append(r.s.order[:i], r.s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.MovementRecord, error) {
	var out []*entity.MovementRecord
	for i := len(r.s.order) - 1; i >= 0; i-- {
		m := r.s.movements[r.s.order[i]]
		copy := m
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByItem(itemID string) ([]*entity.MovementRecord, error) {
	var out []*entity.MovementRecord
	for _, id := range r.s.order {
		m := r.s.movements[id]
		for _, l := range m.Lines {
			if l.ItemID == itemID {
				copy := m
				out = append(out, &copy)
				break
			}
		}
	}
	return out, nil
}
