package service

import (
	"context"
	"fmt"
	"strings"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/pricing"
	"partyrent-backend/internal/repository"
)

type variationService struct {
	variationRepo repository.VariationRepository
	itemRepo      repository.RentalItemRepository
}

func NewVariationService(
	variationRepo repository.VariationRepository,
	itemRepo repository.RentalItemRepository,
) VariationService {
	return &variationService{
		variationRepo: variationRepo,
		itemRepo:      itemRepo,
	}
}

func (s *variationService) CreateVariation(ctx context.Context, v *domain.Variation) error {
	if err := s.validate(ctx, v, ""); err != nil {
		return err
	}
	if v.Status == "" {
		v.Status = domain.VariationStatusActive
	}
	return s.variationRepo.Create(ctx, v)
}

func (s *variationService) UpdateVariation(ctx context.Context, v *domain.Variation) error {
	existing, err := s.variationRepo.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	if existing.TenantID != v.TenantID {
		return fmt.Errorf("variation %s: %w", v.ID, domain.ErrNotFound)
	}
	if err := s.validate(ctx, v, v.ID); err != nil {
		return err
	}
	return s.variationRepo.Update(ctx, v)
}

// validate applies attribute validation against the parent item, SKU
// uniqueness within the tenant, and name defaulting.
func (s *variationService) validate(ctx context.Context, v *domain.Variation, excludeID string) error {
	if v.RentalItem.IsZero() {
		return fmt.Errorf("%w: variation requires a parent rental item", domain.ErrInvalidInput)
	}
	if v.SKU == "" {
		return fmt.Errorf("%w: variation requires a sku", domain.ErrInvalidInput)
	}

	parent, err := v.RentalItem.Resolve(ctx, s.itemRepo.GetByID)
	if err != nil {
		return err
	}
	if parent.TenantID != v.TenantID {
		return fmt.Errorf("rental item %s: %w", parent.ID, domain.ErrNotFound)
	}

	result := pricing.ValidateVariationAttributes(parent, v.Attributes)
	if !result.Valid {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(result.Errors, "; "))
	}

	unique, err := s.IsSKUUnique(ctx, v.TenantID, v.SKU, excludeID)
	if err != nil {
		return err
	}
	if !unique {
		return fmt.Errorf("sku %q in tenant %s: %w", v.SKU, v.TenantID, domain.ErrSKUConflict)
	}

	if v.Name == "" {
		v.Name = pricing.GenerateVariationName(v.Attributes)
	}
	return nil
}

func (s *variationService) GetVariation(ctx context.Context, id string) (*domain.Variation, error) {
	return s.variationRepo.GetByID(ctx, id)
}

func (s *variationService) ListByItem(ctx context.Context, tenantID, rentalItemID string, onlyActive bool) ([]domain.Variation, error) {
	item, err := s.itemRepo.GetByID(ctx, rentalItemID)
	if err != nil {
		return nil, err
	}
	if item.TenantID != tenantID {
		return nil, fmt.Errorf("rental item %s: %w", rentalItemID, domain.ErrNotFound)
	}
	return s.variationRepo.ListByItem(ctx, rentalItemID, onlyActive)
}

func (s *variationService) IsSKUUnique(ctx context.Context, tenantID, sku, excludeID string) (bool, error) {
	matches, err := s.variationRepo.FindByTenantAndSKU(ctx, tenantID, sku, excludeID)
	if err != nil {
		return false, err
	}
	return len(matches) == 0, nil
}

// ResolvePricing derives the variation's effective rate card from its parent
// item's pricing.
func (s *variationService) ResolvePricing(ctx context.Context, variationID string) (*domain.Pricing, error) {
	variation, err := s.variationRepo.GetByID(ctx, variationID)
	if err != nil {
		return nil, err
	}
	parent, err := variation.RentalItem.Resolve(ctx, s.itemRepo.GetByID)
	if err != nil {
		return nil, err
	}
	effective, err := pricing.ResolvePricing(parent.Pricing, variation)
	if err != nil {
		return nil, err
	}
	return &effective, nil
}

// Images returns the variation's own images, falling back to the parent
// item's images when the variation has none.
func (s *variationService) Images(ctx context.Context, v *domain.Variation) ([]domain.Image, error) {
	if len(v.Images) > 0 {
		return v.Images, nil
	}
	parent, err := v.RentalItem.Resolve(ctx, s.itemRepo.GetByID)
	if err != nil {
		return nil, err
	}
	return parent.Images, nil
}
