package postgres

import (
	"context"
	"fmt"

	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

var _ repository.PlaylistRepository = (*PlaylistRepo)(nil)

// PlaylistRepo playlist del reproductor sobre PostgreSQL.
type PlaylistRepo struct {
	q Querier
}

// NewPlaylistRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlaylistRepository(q Querier) *PlaylistRepo {
	return &PlaylistRepo{q: q}
}

// Create persiste un video.
func (r *PlaylistRepo) Create(item *entity.PlaylistItem) error {
	query := `
		INSERT INTO playlist_items (id, title, url, video_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Title, item.URL, item.VideoID, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("create playlist item: %w", err)
	}
	return nil
}

// Delete elimina un video por ID.
func (r *PlaylistRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM playlist_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete playlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: playlist item %s", domain.ErrNotFound, id)
	}
	return nil
}

// List devuelve la playlist en orden de inserción.
func (r *PlaylistRepo) List() ([]*entity.PlaylistItem, error) {
	query := `SELECT id, title, url, video_id, created_at FROM playlist_items ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list playlist: %w", err)
	}
	defer rows.Close()
	var list []*entity.PlaylistItem
	for rows.Next() {
		var it entity.PlaylistItem
		if err := rows.Scan(&it.ID, &it.Title, &it.URL, &it.VideoID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
