package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/reject"
)

// RejectHandler maneja el módulo de mermas (protegido).
type RejectHandler struct {
	uc *reject.UseCase
}

// NewRejectHandler construye el handler.
func NewRejectHandler(uc *reject.UseCase) *RejectHandler {
	return &RejectHandler{uc: uc}
}

// SyncMaster godoc
// @Summary      Sincronizar catálogo maestro de mermas
// @Tags         reject
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.RejectMasterItemDTO  true  "artículos maestros"
// @Success      200   {array}   dto.RejectMasterItemDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reject/master [post]
func (h *RejectHandler) SyncMaster(c *fiber.Ctx) error {
	var rows []dto.RejectMasterItemDTO
	if err := c.BodyParser(&rows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SyncMaster(c.Context(), rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMaster godoc
// @Summary      Listar catálogo maestro de mermas
// @Tags         reject
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RejectMasterItemDTO
// @Router       /api/reject/master [get]
func (h *RejectHandler) ListMaster(c *fiber.Ctx) error {
	out, err := h.uc.ListMaster(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateRecord godoc
// @Summary      Registrar una merma
// @Description  Registra la merma de un punto de venta. No afecta cantidades
//               del inventario: mermas e inventario son libros separados.
// @Tags         reject
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRejectRecordRequest  true  "date, outlet_name, lines"
// @Success      201   {object}  dto.RejectRecordDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reject/records [post]
func (h *RejectHandler) CreateRecord(c *fiber.Ctx) error {
	var in dto.CreateRejectRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateRecord(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRecords godoc
// @Summary      Listar registros de merma
// @Tags         reject
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (defecto 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.RejectRecordDTO
// @Router       /api/reject/records [get]
func (h *RejectHandler) ListRecords(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListRecords(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
