package entity

import "time"

// PlaylistItem es un video de la barra lateral del reproductor embebido.
// VideoID es el identificador de YouTube extraído de URL al crear el item.
type PlaylistItem struct {
	ID        string
	Title     string
	URL       string
	VideoID   string
	CreatedAt time.Time
}
