package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

const qrURL = "https://picsum.photos/seed/sampleQR/250/250"

func serviceItem() order.LineItem {
	return order.LineItem{
		Product: product.Snapshot{
			ProductID:   kernel.NewUUID(),
			Name:        "Document verification",
			Description: "Plagiarism check with a detailed report",
			Price:       75000,
			ImageURL:    "https://picsum.photos/seed/service/400/300",
			IsService:   true,
		},
		Quantity: 1,
	}
}

func retailItem(price int64, qty int) order.LineItem {
	return order.LineItem{
		Product: product.Snapshot{
			ProductID:   kernel.NewUUID(),
			Name:        "Ceramic mug",
			Description: "Hand-made mug",
			Price:       price,
			ImageURL:    "https://picsum.photos/seed/mug/400/300",
		},
		Quantity: qty,
	}
}

func sumOf(t *testing.T, items []order.LineItem) int64 {
	t.Helper()
	total, err := order.SumLineItems(items)
	require.NoError(t, err)
	return total
}

func owner() order.Owner {
	return order.Owner{UserID: kernel.NewUUID(), Email: "buyer@example.com"}
}

func newServiceOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), owner(), []order.LineItem{serviceItem()}, time.Now(), qrURL)
	require.NoError(t, err)
	return o
}

func newRetailOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), owner(), []order.LineItem{retailItem(1000, 2)}, time.Now(), qrURL)
	require.NoError(t, err)
	return o
}

func document(t *testing.T) order.UploadedFile {
	t.Helper()
	f, err := order.NewUploadedFile(order.KindDocument, "thesis.pdf", "application/pdf", 4, "data:application/pdf;base64,JVBERg==")
	require.NoError(t, err)
	return f
}

func report(t *testing.T) order.UploadedFile {
	t.Helper()
	f, err := order.NewUploadedFile(order.KindReport, "report.png", "image/png", 4, "data:image/png;base64,iVBORw==")
	require.NoError(t, err)
	return f
}

// persisted simulates a save and reload so the next mutation bumps the version.
func persisted(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	restored, err := order.RestoreOrder(order.RestoreParams{
		ID:                  o.ID(),
		Owner:               o.Owner(),
		Items:               o.Items(),
		TotalAmount:         o.TotalAmount(),
		OrderDate:           o.OrderDate(),
		Status:              o.Status(),
		IsServiceOrder:      o.IsServiceOrder(),
		BuyerUploadedFile:   o.BuyerUploadedFile(),
		AdminUploadedReport: o.AdminUploadedReport(),
		QRISImageURL:        o.QRISImageURL(),
		Version:             o.Version(),
	})
	require.NoError(t, err)
	return restored
}
