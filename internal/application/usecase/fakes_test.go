package usecase_test

import (
	"context"
	"fmt"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/ports"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

type fakeUserRepo struct {
	users map[string]*entity.User
	order []string
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	copy := *u
	r.users[u.ID] = &copy
	r.order = append(r.order, u.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	copy := *u
	r.users[u.ID] = &copy
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range r.order {
		if u, ok := r.users[id]; ok {
			copy := *u
			out = append(out, &copy)
		}
	}
	return out, nil
}

type fakePlaylistRepo struct {
	items []*entity.PlaylistItem
}

var _ repository.PlaylistRepository = (*fakePlaylistRepo)(nil)

func (r *fakePlaylistRepo) Create(item *entity.PlaylistItem) error {
	copy := *item
	r.items = append(r.items, &copy)
	return nil
}

func (r *fakePlaylistRepo) Delete(id string) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePlaylistRepo) List() ([]*entity.PlaylistItem, error) {
	var out []*entity.PlaylistItem
	for _, it := range r.items {
		copy := *it
		out = append(out, &copy)
	}
	return out, nil
}

type fakeCatalogRepo struct {
	items []*entity.StockItem
}

var _ repository.StockItemRepository = (*fakeCatalogRepo)(nil)

func (r *fakeCatalogRepo) GetByID(id string) (*entity.StockItem, error)      { return nil, nil }
func (r *fakeCatalogRepo) GetForUpdate(id string) (*entity.StockItem, error) { return nil, nil }
func (r *fakeCatalogRepo) Upsert(item *entity.StockItem) error               { return nil }
func (r *fakeCatalogRepo) Update(item *entity.StockItem) error               { return nil }
func (r *fakeCatalogRepo) Delete(id string) error                            { return nil }

func (r *fakeCatalogRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	return r.items, nil
}

// fakeLLM registra los artículos recibidos y responde con texto fijo.
type fakeLLM struct {
	healthItems  []*entity.StockItem
	restockItems []*entity.StockItem
	err          error
}

var _ ports.InsightService = (*fakeLLM)(nil)

func (f *fakeLLM) AnalyzeInventoryHealth(ctx context.Context, items []*entity.StockItem) (string, error) {
	f.healthItems = items
	if f.err != nil {
		return "", f.err
	}
	return "## Análisis\nTodo en orden.", nil
}

func (f *fakeLLM) SuggestRestockPlan(ctx context.Context, items []*entity.StockItem) ([]dto.RestockSuggestionDTO, error) {
	f.restockItems = items
	if f.err != nil {
		return nil, f.err
	}
	out := make([]dto.RestockSuggestionDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RestockSuggestionDTO{
			Item:       it.Name,
			Suggestion: fmt.Sprintf("Reponer %s", it.Name),
		})
	}
	return out, nil
}

func (f *fakeLLM) Provider() string { return "fake" }
