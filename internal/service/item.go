package service

import (
	"context"
	"fmt"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/repository"
)

type itemService struct {
	itemRepo repository.RentalItemRepository
}

func NewItemService(itemRepo repository.RentalItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

func (s *itemService) CreateItem(ctx context.Context, item *domain.RentalItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *itemService) UpdateItem(ctx context.Context, item *domain.RentalItem) error {
	existing, err := s.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}
	if existing.TenantID != item.TenantID {
		return fmt.Errorf("rental item %s: %w", item.ID, domain.ErrNotFound)
	}
	if err := validateItem(item); err != nil {
		return err
	}
	return s.itemRepo.Update(ctx, item)
}

func (s *itemService) GetItem(ctx context.Context, id string) (*domain.RentalItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *itemService) ListItems(ctx context.Context, tenantID string, page, pageSize int32) ([]domain.RentalItem, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.itemRepo.ListByTenant(ctx, tenantID, page, pageSize)
}

func validateItem(item *domain.RentalItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: rental item requires a name", domain.ErrInvalidInput)
	}
	if item.Pricing == nil {
		return fmt.Errorf("%w: rental item requires pricing with a daily rate", domain.ErrInvalidInput)
	}
	// An item can declare a variation matrix only when variations are on.
	if len(item.AttributeSchema) > 0 && !item.HasVariations {
		return fmt.Errorf("%w: attribute schema requires has_variations", domain.ErrInvalidInput)
	}
	for _, attr := range item.AttributeSchema {
		if attr.Name == "" || len(attr.Values) == 0 {
			return fmt.Errorf("%w: attribute %q must declare at least one value", domain.ErrInvalidInput, attr.Name)
		}
	}
	return nil
}
