package reject

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase módulo de mermas: catálogo maestro propio y registros por punto de
// venta. Es un libro separado del inventario: registrar una merma NO descuenta
// cantidades de StockItem.
type UseCase struct {
	masterRepo repository.RejectMasterRepository
	recordRepo repository.RejectRecordRepository
}

// NewUseCase construye el caso de uso de mermas.
func NewUseCase(masterRepo repository.RejectMasterRepository, recordRepo repository.RejectRecordRepository) *UseCase {
	return &UseCase{masterRepo: masterRepo, recordRepo: recordRepo}
}

// SyncMaster hace upsert del catálogo maestro. Filas sin nombre se rechazan.
func (uc *UseCase) SyncMaster(ctx context.Context, rows []dto.RejectMasterItemDTO) ([]dto.RejectMasterItemDTO, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: catálogo maestro vacío", domain.ErrValidation)
	}
	out := make([]dto.RejectMasterItemDTO, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: artículo maestro sin nombre", domain.ErrValidation)
		}
		item := &entity.RejectMasterItem{
			ID:          row.ID,
			Name:        name,
			SKU:         row.SKU,
			DefaultUnit: row.DefaultUnit,
			Category:    row.Category,
		}
		if item.ID == "" {
			item.ID = "RJM-" + uuid.New().String()
		}
		if item.DefaultUnit == "" {
			item.DefaultUnit = "Unit"
		}
		if err := uc.masterRepo.Upsert(item); err != nil {
			return nil, err
		}
		out = append(out, toMasterDTO(item))
	}
	return out, nil
}

// ListMaster devuelve el catálogo maestro completo.
func (uc *UseCase) ListMaster(ctx context.Context) ([]dto.RejectMasterItemDTO, error) {
	items, err := uc.masterRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RejectMasterItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toMasterDTO(it))
	}
	return out, nil
}

// CreateRecord registra una merma. Las líneas referencian artículos del
// catálogo maestro y congelan nombre/SKU; TotalItems es la suma de unidades
// base de todas las líneas.
func (uc *UseCase) CreateRecord(ctx context.Context, in dto.CreateRejectRecordRequest) (*dto.RejectRecordDTO, error) {
	if strings.TrimSpace(in.OutletName) == "" {
		return nil, fmt.Errorf("%w: outlet_name es obligatorio", domain.ErrValidation)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: el registro requiere al menos una línea", domain.ErrValidation)
	}

	date := time.Now().Truncate(24 * time.Hour)
	if in.Date != "" {
		d, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha %q no es YYYY-MM-DD", domain.ErrValidation, in.Date)
		}
		date = d
	}

	master, err := uc.masterRepo.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.RejectMasterItem, len(master))
	for _, m := range master {
		byID[m.ID] = m
	}

	record := &entity.RejectRecord{
		ID:         "RJ-" + uuid.New().String(),
		Date:       date,
		OutletName: strings.TrimSpace(in.OutletName),
	}
	for _, l := range in.Lines {
		if l.ItemID == "" {
			return nil, fmt.Errorf("%w: línea sin item_id", domain.ErrValidation)
		}
		if l.OrderQuantity < 1 || l.SelectedUnit.Ratio < 1 {
			return nil, fmt.Errorf("%w: cantidad y ratio deben ser >= 1", domain.ErrValidation)
		}
		m, ok := byID[l.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: artículo maestro %s", domain.ErrItemNotFound, l.ItemID)
		}
		line := entity.RejectLine{
			ItemID:        l.ItemID,
			Name:          m.Name,
			SKU:           m.SKU,
			SelectedUnit:  entity.UnitDefinition{Name: l.SelectedUnit.Name, Ratio: l.SelectedUnit.Ratio},
			OrderQuantity: l.OrderQuantity,
		}
		record.Lines = append(record.Lines, line)
		record.TotalItems += line.BaseUnits()
	}

	if err := uc.recordRepo.Create(record); err != nil {
		return nil, err
	}
	return toRecordDTO(record), nil
}

// ListRecords devuelve los registros de merma, más recientes primero.
func (uc *UseCase) ListRecords(ctx context.Context, page dto.PageRequest) ([]dto.RejectRecordDTO, error) {
	page.DefaultPage()
	records, err := uc.recordRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RejectRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, *toRecordDTO(r))
	}
	return out, nil
}

func toMasterDTO(i *entity.RejectMasterItem) dto.RejectMasterItemDTO {
	return dto.RejectMasterItemDTO{
		ID:          i.ID,
		Name:        i.Name,
		SKU:         i.SKU,
		DefaultUnit: i.DefaultUnit,
		Category:    i.Category,
	}
}

func toRecordDTO(r *entity.RejectRecord) *dto.RejectRecordDTO {
	out := &dto.RejectRecordDTO{
		ID:         r.ID,
		Date:       r.Date.Format(dateLayout),
		OutletName: r.OutletName,
		TotalItems: r.TotalItems,
	}
	for _, l := range r.Lines {
		out.Lines = append(out.Lines, dto.RejectLineDTO{
			ItemID:        l.ItemID,
			Name:          l.Name,
			SKU:           l.SKU,
			SelectedUnit:  dto.UnitDTO{Name: l.SelectedUnit.Name, Ratio: l.SelectedUnit.Ratio},
			OrderQuantity: l.OrderQuantity,
		})
	}
	return out
}
