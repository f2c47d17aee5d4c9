package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/inventory"
)

// MovementHandler maneja los movimientos de stock (protegido).
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	edit     *inventory.EditMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, edit *inventory.EditMovementUseCase) *MovementHandler {
	return &MovementHandler{register: register, edit: edit}
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Description  Valida las líneas, aplica los deltas al catálogo y persiste el
//               movimiento en una sola transacción. Una salida que dejaría
//               cualquier artículo en negativo rechaza el movimiento completo.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "date, direction (IN|OUT), lines"
// @Success      201   {object}  dto.MovementDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.register.RegisterMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementDTO(rec))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (defecto 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.MovementDTO
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	movements, err := h.edit.ListMovements(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementDTO(m))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.edit.GetMovement(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementDTO(rec))
}

// Update godoc
// @Summary      Editar un movimiento
// @Description  Aplica al stock solo la diferencia entre la versión original y
//               la revisada. Si algún artículo quedaría en negativo, la edición
//               se rechaza completa y el registro no cambia.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del movimiento"
// @Param        body  body  dto.RegisterMovementRequest  true  "versión revisada completa"
// @Success      200   {object}  dto.MovementDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rec, err := h.edit.EditMovement(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementDTO(rec))
}

// Delete godoc
// @Summary      Eliminar un movimiento
// @Description  Revierte el efecto del movimiento sobre el stock y elimina el
//               registro, atómicamente.
// @Tags         movements
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	if err := h.edit.DeleteMovement(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
