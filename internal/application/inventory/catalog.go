package inventory

import (
	"context"
	"fmt"

	"github.com/neonflow/neonflow-api/internal/application/dto"
	"github.com/neonflow/neonflow-api/internal/domain"
	"github.com/neonflow/neonflow-api/internal/domain/entity"
	"github.com/neonflow/neonflow-api/internal/domain/repository"
)

// CatalogUseCase lecturas del catálogo de inventario.
type CatalogUseCase struct {
	itemRepo repository.StockItemRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(itemRepo repository.StockItemRepository) *CatalogUseCase {
	return &CatalogUseCase{itemRepo: itemRepo}
}

// List devuelve el catálogo paginado.
func (uc *CatalogUseCase) List(ctx context.Context, page dto.PageRequest) ([]*entity.StockItem, error) {
	page.DefaultPage()
	return uc.itemRepo.List(page.Limit, page.Offset)
}

// Get devuelve un artículo por ID.
func (uc *CatalogUseCase) Get(ctx context.Context, id string) (*entity.StockItem, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, nil
}
