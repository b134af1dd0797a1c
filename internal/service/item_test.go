package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partyrent-backend/internal/domain"
)

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("valid item is stored", func(t *testing.T) {
		itemRepo := new(mockItemRepo)
		svc := NewItemService(itemRepo)

		itemRepo.On("Create", ctx, mock.Anything).Return(nil)
		require.NoError(t, svc.CreateItem(ctx, testParentItem()))
		itemRepo.AssertExpectations(t)
	})

	t.Run("name is required", func(t *testing.T) {
		svc := NewItemService(new(mockItemRepo))
		item := testParentItem()
		item.Name = ""
		assert.ErrorIs(t, svc.CreateItem(ctx, item), domain.ErrInvalidInput)
	})

	t.Run("pricing is required", func(t *testing.T) {
		svc := NewItemService(new(mockItemRepo))
		item := testParentItem()
		item.Pricing = nil
		assert.ErrorIs(t, svc.CreateItem(ctx, item), domain.ErrInvalidInput)
	})

	t.Run("schema without variations flag is rejected", func(t *testing.T) {
		svc := NewItemService(new(mockItemRepo))
		item := testParentItem()
		item.HasVariations = false
		assert.ErrorIs(t, svc.CreateItem(ctx, item), domain.ErrInvalidInput)
	})

	t.Run("attribute axes need values", func(t *testing.T) {
		svc := NewItemService(new(mockItemRepo))
		item := testParentItem()
		item.AttributeSchema = append(item.AttributeSchema, domain.VariationAttribute{Name: "Theme"})
		assert.ErrorIs(t, svc.CreateItem(ctx, item), domain.ErrInvalidInput)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("cross-tenant update reads as not found", func(t *testing.T) {
		itemRepo := new(mockItemRepo)
		svc := NewItemService(itemRepo)

		existing := testParentItem()
		existing.TenantID = "ten-2"
		itemRepo.On("GetByID", ctx, "item-1").Return(existing, nil)

		item := testParentItem()
		err := svc.UpdateItem(ctx, item)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		itemRepo.AssertNotCalled(t, "Update")
	})
}

func TestListItems(t *testing.T) {
	ctx := context.Background()

	t.Run("pagination is clamped", func(t *testing.T) {
		itemRepo := new(mockItemRepo)
		svc := NewItemService(itemRepo)

		itemRepo.On("ListByTenant", ctx, "ten-1", int32(1), int32(20)).
			Return([]domain.RentalItem{}, 0, nil)

		_, _, err := svc.ListItems(ctx, "ten-1", -3, 9999)
		require.NoError(t, err)
		itemRepo.AssertExpectations(t)
	})
}
