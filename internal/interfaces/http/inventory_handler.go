package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/application/inventory"
)

// InventoryHandler maneja el catálogo, el importador masivo y el kardex (protegido).
type InventoryHandler struct {
	catalog    *inventory.CatalogUseCase
	bulkImport *inventory.BulkImportUseCase
	stockCard  *inventory.StockCardUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(catalog *inventory.CatalogUseCase, bulkImport *inventory.BulkImportUseCase, stockCard *inventory.StockCardUseCase) *InventoryHandler {
	return &InventoryHandler{catalog: catalog, bulkImport: bulkImport, stockCard: stockCard}
}

// ListItems godoc
// @Summary      Listar catálogo de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (defecto 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.StockItemDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	items, err := h.catalog.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, inventory.ToStockItemDTO(it))
	}
	return c.JSON(out)
}

// GetItem godoc
// @Summary      Obtener un artículo por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.StockItemDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inventory.ToStockItemDTO(item))
}

// ImportItems godoc
// @Summary      Importación masiva de catálogo
// @Description  Recibe filas ya parseadas y hace upsert por ID en una sola
//               transacción. Filas sin nombre se descartan; el lote completo
//               confirma o revierte junto.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.ImportRowDTO  true  "filas del catálogo"
// @Success      200  {object}  dto.ImportResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/import [post]
func (h *InventoryHandler) ImportItems(c *fiber.Ctx) error {
	var rows []dto.ImportRowDTO
	if err := c.BodyParser(&rows); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.bulkImport.ImportRows(c.Context(), rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetStockCard godoc
// @Summary      Kardex de un artículo
// @Description  Reconstruye los saldos caminando el historial completo desde la
//               cantidad viva; la ventana de fechas solo filtra las filas visibles.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID del artículo"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.StockCardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/stock-card [get]
func (h *InventoryHandler) GetStockCard(c *fiber.Ctx) error {
	var in dto.StockCardRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	view, err := h.stockCard.GetStockCard(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockCardDTO(view))
}

// ExportStockCardPDF godoc
// @Summary      Exportar kardex como PDF
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        id          path   string  true   "ID del artículo"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/stock-card/pdf [get]
func (h *InventoryHandler) ExportStockCardPDF(c *fiber.Ctx) error {
	var in dto.StockCardRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	itemID := c.Params("id")
	pdfBytes, err := h.stockCard.ExportStockCardPDF(c.Context(), itemID, in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="kardex-%s.pdf"`, itemID))
	return c.Send(pdfBytes)
}
