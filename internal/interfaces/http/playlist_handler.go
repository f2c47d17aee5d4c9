package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/usecase"
)

// PlaylistHandler maneja la playlist del reproductor embebido (protegido).
type PlaylistHandler struct {
	uc *usecase.PlaylistUseCase
}

// NewPlaylistHandler construye el handler.
func NewPlaylistHandler(uc *usecase.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{uc: uc}
}

// List godoc
// @Summary      Listar la playlist
// @Tags         playlist
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PlaylistItemDTO
// @Router       /api/playlist [get]
func (h *PlaylistHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar un video a la playlist
// @Description  El video id se extrae de la URL en el servidor; URLs que no
//               son de YouTube se rechazan.
// @Tags         playlist
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddPlaylistItemRequest  true  "url, title opcional"
// @Success      201   {object}  dto.PlaylistItemDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/playlist [post]
func (h *PlaylistHandler) Add(c *fiber.Ctx) error {
	var in dto.AddPlaylistItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Remove godoc
// @Summary      Quitar un video de la playlist
// @Tags         playlist
// @Security     Bearer
// @Param        id  path  string  true  "ID del item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/playlist/{id} [delete]
func (h *PlaylistHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
