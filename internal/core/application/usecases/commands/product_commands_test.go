package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validDetails() product.Details {
	return product.Details{
		Name:        "Mini Smart Speaker",
		Description: "Smart speaker with a voice assistant",
		Price:       599000,
		ImageURL:    "https://picsum.photos/seed/speaker_mini/400/300",
	}
}

func TestCreateProductCommandHandler(t *testing.T) {
	admin := actorOf(t, kernel.NewUUID(), kernel.RoleAdmin)

	t.Run("admin creates", func(t *testing.T) {
		ctx := t.Context()
		productID := kernel.NewUUID()
		uow := newMockUoW()
		uow.expectTx(ctx, true)
		uow.products.On("Add", ctx, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID().IsEqual(productID) && p.Price() == 599000
		})).Return(nil).Once()

		cmd, err := commands.NewCreateProductCommand(admin, productID, validDetails())
		require.NoError(t, err)
		require.NoError(t, commands.NewCreateProductCommandHandler(uowFactory[commands.ProductUoW]{uow}).Handle(ctx, cmd))
		uow.assertAll(t)
	})

	t.Run("buyer is denied", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()

		cmd, err := commands.NewCreateProductCommand(actorOf(t, kernel.NewUUID(), kernel.RoleBuyer), kernel.NewUUID(), validDetails())
		require.NoError(t, err)
		err = commands.NewCreateProductCommandHandler(uowFactory[commands.ProductUoW]{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		uow.assertAll(t)
	})

	t.Run("invalid details", func(t *testing.T) {
		details := validDetails()
		details.Price = -5
		details.ImageURL = "ftp://example.com/a.png"

		_, err := commands.NewCreateProductCommand(admin, kernel.NewUUID(), details)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})
}

func TestUpdateProductCommandHandler(t *testing.T) {
	ctx := t.Context()
	admin := actorOf(t, kernel.NewUUID(), kernel.RoleAdmin)
	p, err := product.NewProduct(kernel.NewUUID(), validDetails())
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.products.On("Get", ctx, p.ID()).Return(p, nil).Once()
	uow.products.On("Update", ctx, p).Return(nil).Once()

	details := validDetails()
	details.Price = 549000
	cmd, err := commands.NewUpdateProductCommand(admin, p.ID(), details)
	require.NoError(t, err)
	require.NoError(t, commands.NewUpdateProductCommandHandler(uowFactory[commands.ProductUoW]{uow}).Handle(ctx, cmd))

	assert.Equal(t, int64(549000), p.Price())
	uow.assertAll(t)
}

func TestDeleteProductCommandHandler(t *testing.T) {
	ctx := t.Context()
	admin := actorOf(t, kernel.NewUUID(), kernel.RoleAdmin)
	productID := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.products.On("Delete", ctx, productID).Return(nil).Once()

	cmd, err := commands.NewDeleteProductCommand(admin, productID)
	require.NoError(t, err)
	require.NoError(t, commands.NewDeleteProductCommandHandler(uowFactory[commands.ProductUoW]{uow}).Handle(ctx, cmd))
	uow.assertAll(t)
}
