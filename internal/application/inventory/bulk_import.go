package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// BulkImportUseCase importador masivo de catálogo: recibe filas ya parseadas
// (la lectura de la planilla ocurre fuera del sistema), completa campos
// faltantes con valores generados y hace upsert por ID en una transacción.
// No deduplica por nombre: nombres repetidos producen filas repetidas.
type BulkImportUseCase struct {
	txRunner TxRunner
}

// NewBulkImportUseCase construye el caso de uso.
func NewBulkImportUseCase(txRunner TxRunner) *BulkImportUseCase {
	return &BulkImportUseCase{txRunner: txRunner}
}

var titleCaser = cases.Title(language.Und)

// ImportRows valida y persiste las filas. Filas sin nombre se descartan
// (contadas en Skipped); el lote completo se confirma o revierte junto.
func (uc *BulkImportUseCase) ImportRows(ctx context.Context, rows []dto.ImportRowDTO) (*dto.ImportResultDTO, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: lote de importación vacío", domain.ErrValidation)
	}

	now := time.Now()
	var items []*entity.StockItem
	skipped := 0
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			skipped++
			continue
		}
		if row.Quantity < 0 {
			return nil, fmt.Errorf("%w: cantidad negativa para %q", domain.ErrValidation, row.Name)
		}
		item := &entity.StockItem{
			ID:       row.ID,
			Name:     strings.TrimSpace(row.Name),
			SKU:      row.SKU,
			Category: titleCaser.String(strings.TrimSpace(row.Category)),
			Quantity: row.Quantity,
			Price:    row.Price,
			Status:   row.Status,
		}
		if item.ID == "" {
			item.ID = "IMP-" + uuid.New().String()
		}
		if item.SKU == "" {
			item.SKU = "GEN-" + strings.ToUpper(uuid.New().String()[:8])
		}
		if item.Category == "" {
			item.Category = "General"
		}
		if item.Status != entity.StatusDiscontinued {
			item.Status = entity.StatusForQuantity(item.Quantity)
		}
		item.LastUpdated = now
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: ninguna fila válida en el lote", domain.ErrValidation)
	}

	err := uc.txRunner.Run(ctx, func(_ repository.MovementRepository, itemRepo repository.StockItemRepository) error {
		for _, item := range items {
			if err := itemRepo.Upsert(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResultDTO{Imported: len(items), Skipped: skipped}
	for _, item := range items {
		result.Items = append(result.Items, ToStockItemDTO(item))
	}
	return result, nil
}

// ToStockItemDTO mapea la entidad a su representación HTTP.
func ToStockItemDTO(i *entity.StockItem) dto.StockItemDTO {
	return dto.StockItemDTO{
		ID:          i.ID,
		Name:        i.Name,
		SKU:         i.SKU,
		Category:    i.Category,
		Quantity:    i.Quantity,
		Price:       i.Price,
		Status:      i.Status,
		LastUpdated: i.LastUpdated.Format(dateLayout),
	}
}
