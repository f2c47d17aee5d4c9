package repository

import "github.com/neonflow/neonflow-api/internal/domain/entity"

// PlaylistRepository puerto de persistencia de la playlist del reproductor.
type PlaylistRepository interface {
	Create(item *entity.PlaylistItem) error
	Delete(id string) error
	// List devuelve los videos en orden de inserción.
	List() ([]*entity.PlaylistItem, error)
}
