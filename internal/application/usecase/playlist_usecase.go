package usecase

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// Formatos aceptados: watch?v=, youtu.be/, embed/, shorts/.
// El ID de YouTube son 11 caracteres [A-Za-z0-9_-].
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|embed/|shorts/)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// PlaylistUseCase administra la playlist del reproductor embebido.
type PlaylistUseCase struct {
	repo repository.PlaylistRepository
}

// NewPlaylistUseCase construye el caso de uso.
func NewPlaylistUseCase(repo repository.PlaylistRepository) *PlaylistUseCase {
	return &PlaylistUseCase{repo: repo}
}

// Add extrae el video id de la URL y persiste el item. URLs que no son de
// YouTube se rechazan con ErrValidation.
func (uc *PlaylistUseCase) Add(in dto.AddPlaylistItemRequest) (*dto.PlaylistItemDTO, error) {
	videoID, ok := ExtractVideoID(in.URL)
	if !ok {
		return nil, fmt.Errorf("%w: %q no es una URL de YouTube reconocida", domain.ErrValidation, in.URL)
	}
	title := in.Title
	if title == "" {
		title = "Video " + videoID
	}
	item := &entity.PlaylistItem{
		ID:        uuid.New().String(),
		Title:     title,
		URL:       in.URL,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toPlaylistItemDTO(item), nil
}

// Remove elimina un video de la playlist.
func (uc *PlaylistUseCase) Remove(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve la playlist en orden de inserción.
func (uc *PlaylistUseCase) List() ([]dto.PlaylistItemDTO, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlaylistItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, *toPlaylistItemDTO(it))
	}
	return out, nil
}

// ExtractVideoID obtiene el identificador de 11 caracteres de una URL de
// YouTube. Devuelve false si la URL no corresponde a ningún formato conocido.
func ExtractVideoID(url string) (string, bool) {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func toPlaylistItemDTO(i *entity.PlaylistItem) *dto.PlaylistItemDTO {
	return &dto.PlaylistItemDTO{
		ID:      i.ID,
		Title:   i.Title,
		URL:     i.URL,
		VideoID: i.VideoID,
	}
}
