package dto

// AddPlaylistItemRequest body para POST /api/playlist.
// El video id se extrae de URL en el servidor; URLs no reconocidas se rechazan.
type AddPlaylistItemRequest struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

// PlaylistItemDTO video de la playlist del reproductor.
type PlaylistItemDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	VideoID string `json:"video_id"`
}
