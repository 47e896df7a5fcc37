package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultQR = "https://picsum.photos/seed/sampleQR/250/250"

func newBuyer(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "buyer@example.com", "$2a$10$hash", kernel.RoleBuyer)
	require.NoError(t, err)
	return u
}

func newSettings(t *testing.T, url string) *settings.AdminSettings {
	t.Helper()
	s, err := settings.NewAdminSettings(url)
	require.NoError(t, err)
	return s
}

func serviceProduct() product.Snapshot {
	return product.Snapshot{
		ProductID:   kernel.NewUUID(),
		Name:        "Document verification",
		Description: "Plagiarism check with a detailed report",
		Price:       75000,
		ImageURL:    "https://picsum.photos/seed/service/400/300",
		IsService:   true,
	}
}

func retailProduct(price int64) product.Snapshot {
	return product.Snapshot{
		ProductID:   kernel.NewUUID(),
		Name:        "Notebook",
		Description: "A5 dotted notebook",
		Price:       price,
		ImageURL:    "https://picsum.photos/seed/notebook/400/300",
	}
}

func TestCheckout_Place(t *testing.T) {
	checkout := services.NewCheckout()

	t.Run("service cart", func(t *testing.T) {
		buyer := newBuyer(t)
		c, _ := cart.NewCart(buyer.ID())
		require.NoError(t, c.AddProduct(serviceProduct()))
		adminSettings := newSettings(t, defaultQR)

		o, err := checkout.Place(kernel.NewUUID(), buyer, c, adminSettings, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.AwaitingDocument, o.Status())
		assert.Equal(t, int64(75000), o.TotalAmount())
		assert.True(t, o.IsServiceOrder())
		assert.Equal(t, defaultQR, o.QRISImageURL())
		assert.Equal(t, buyer.Email(), o.Owner().Email)
		assert.True(t, c.IsEmpty())

		require.NoError(t, adminSettings.ChangeQRISImageURL("https://cdn.example.com/new-qr.png"))
		assert.Equal(t, defaultQR, o.QRISImageURL())
	})

	t.Run("retail cart", func(t *testing.T) {
		buyer := newBuyer(t)
		c, _ := cart.NewCart(buyer.ID())
		p := retailProduct(15000)
		require.NoError(t, c.AddProduct(p))
		require.NoError(t, c.AddProduct(p))

		o, err := checkout.Place(kernel.NewUUID(), buyer, c, newSettings(t, defaultQR), time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, int64(30000), o.TotalAmount())
		assert.Empty(t, o.QRISImageURL())
	})

	t.Run("empty cart", func(t *testing.T) {
		buyer := newBuyer(t)
		c, _ := cart.NewCart(buyer.ID())

		_, err := checkout.Place(kernel.NewUUID(), buyer, c, newSettings(t, defaultQR), time.Now())

		require.ErrorIs(t, err, services.ErrCartIsEmpty)
	})

	t.Run("someone else's cart", func(t *testing.T) {
		buyer := newBuyer(t)
		c, _ := cart.NewCart(kernel.NewUUID())
		require.NoError(t, c.AddProduct(retailProduct(100)))

		_, err := checkout.Place(kernel.NewUUID(), buyer, c, newSettings(t, defaultQR), time.Now())

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.False(t, c.IsEmpty())
	})

	t.Run("failed order keeps the cart", func(t *testing.T) {
		buyer := newBuyer(t)
		c, _ := cart.NewCart(buyer.ID())
		require.NoError(t, c.AddProduct(retailProduct(100)))

		_, err := checkout.Place(kernel.UUID{}, buyer, c, newSettings(t, defaultQR), time.Now())

		require.Error(t, err)
		assert.False(t, c.IsEmpty())
	})
}
