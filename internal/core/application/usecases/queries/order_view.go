package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderReader is the read side of the order repository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetAll(ctx context.Context) ([]*order.Order, error)
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
}

// OrderView is the read model of an order. Attached files are described
// without their content; content is served by dedicated queries.
type OrderView struct {
	ID                  kernel.UUID
	UserID              kernel.UUID
	UserEmail           string
	Items               []OrderItemView
	TotalAmount         int64
	OrderDate           time.Time
	Status              string
	IsServiceOrder      bool
	BuyerUploadedFile   *FileView
	AdminUploadedReport *FileView
	QRISImageURL        string
	Version             int
	// AvailableStatusChanges lists the status selector targets. Empty for buyers.
	AvailableStatusChanges []string
}

type OrderItemView struct {
	Product  ProductView
	Quantity int
	Subtotal int64
}

type FileView struct {
	Name      string
	MimeType  string
	Size      int64
	SizeLabel string
}

// NewOrderView builds the read model of o as seen by actor.
func NewOrderView(actor kernel.Actor, o *order.Order) OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		// Order items are validated on construction, so the subtotal always fits.
		subtotal, _ := item.Subtotal()
		items = append(items, OrderItemView{
			Product: ProductView{
				ID:          item.Product.ProductID,
				Name:        item.Product.Name,
				Description: item.Product.Description,
				Price:       item.Product.Price,
				ImageURL:    item.Product.ImageURL,
				IsService:   item.Product.IsService,
			},
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
	}

	targets := make([]string, 0)
	if actor.IsAdmin() {
		for _, s := range o.AvailableStatusChanges() {
			targets = append(targets, s.String())
		}
	}

	return OrderView{
		ID:                     o.ID(),
		UserID:                 o.Owner().UserID,
		UserEmail:              o.Owner().Email,
		Items:                  items,
		TotalAmount:            o.TotalAmount(),
		OrderDate:              o.OrderDate(),
		Status:                 o.Status().String(),
		IsServiceOrder:         o.IsServiceOrder(),
		BuyerUploadedFile:      newFileView(o.BuyerUploadedFile()),
		AdminUploadedReport:    newFileView(o.AdminUploadedReport()),
		QRISImageURL:           o.QRISImageURL(),
		Version:                o.Version(),
		AvailableStatusChanges: targets,
	}
}

func newFileView(f *order.UploadedFile) *FileView {
	if f == nil {
		return nil
	}
	return &FileView{
		Name:      f.Name(),
		MimeType:  f.MimeType(),
		Size:      f.Size(),
		SizeLabel: f.SizeLabel(),
	}
}
