// Package orderrepo maps the order aggregate to the orders and order_items
// tables. Uploaded files are stored inline as JSONB documents.
package orderrepo

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents a row of the orders table.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `gorm:"type:uuid;index"`
	UserEmail           string
	TotalAmount         int64
	OrderDate           time.Time
	Status              int
	IsServiceOrder      bool
	BuyerUploadedFile   *datatypes.JSON
	AdminUploadedReport *datatypes.JSON
	QRISImageURL        string `gorm:"column:qris_image_url"`
	Version             int
	Items               []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a line item with the product snapshot taken at checkout.
type OrderItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	Name        string
	Description string
	Price       int64
	ImageURL    string
	IsService   bool
	Quantity    int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// UploadedFileDTO is the JSON document stored for an attached file.
type UploadedFileDTO struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	DataURI  string `json:"dataUri"`
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	id := o.ID().Bytes()

	buyerFile, err := fileToJSON(o.BuyerUploadedFile())
	if err != nil {
		return OrderDTO{}, err
	}
	adminReport, err := fileToJSON(o.AdminUploadedReport())
	if err != nil {
		return OrderDTO{}, err
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     id,
			Position:    i,
			ProductID:   item.Product.ProductID.Bytes(),
			Name:        item.Product.Name,
			Description: item.Product.Description,
			Price:       item.Product.Price,
			ImageURL:    item.Product.ImageURL,
			IsService:   item.Product.IsService,
			Quantity:    item.Quantity,
		})
	}

	return OrderDTO{
		ID:                  id,
		UserID:              o.Owner().UserID.Bytes(),
		UserEmail:           o.Owner().Email,
		TotalAmount:         o.TotalAmount(),
		OrderDate:           o.OrderDate().UTC(),
		Status:              int(o.Status()),
		IsServiceOrder:      o.IsServiceOrder(),
		BuyerUploadedFile:   buyerFile,
		AdminUploadedReport: adminReport,
		QRISImageURL:        o.QRISImageURL(),
		Version:             o.Version(),
		Items:               items,
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, order.LineItem{
			Product: product.Snapshot{
				ProductID:   productID,
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				ImageURL:    item.ImageURL,
				IsService:   item.IsService,
			},
			Quantity: item.Quantity,
		})
	}

	buyerFile, err := fileFromJSON(dto.BuyerUploadedFile, order.KindDocument)
	if err != nil {
		return nil, err
	}
	adminReport, err := fileFromJSON(dto.AdminUploadedReport, order.KindReport)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                  id,
		Owner:               order.Owner{UserID: userID, Email: dto.UserEmail},
		Items:               items,
		TotalAmount:         dto.TotalAmount,
		OrderDate:           dto.OrderDate,
		Status:              order.Status(dto.Status),
		IsServiceOrder:      dto.IsServiceOrder,
		BuyerUploadedFile:   buyerFile,
		AdminUploadedReport: adminReport,
		QRISImageURL:        dto.QRISImageURL,
		Version:             dto.Version,
	})
}

func fileToJSON(f *order.UploadedFile) (*datatypes.JSON, error) {
	if f == nil {
		return nil, nil
	}
	raw, err := json.Marshal(UploadedFileDTO{
		Kind:     f.Kind().String(),
		Name:     f.Name(),
		MimeType: f.MimeType(),
		Size:     f.Size(),
		DataURI:  f.DataURI(),
	})
	if err != nil {
		return nil, err
	}
	doc := datatypes.JSON(raw)
	return &doc, nil
}

// fileFromJSON rebuilds an attachment. The column kind decides the file kind;
// the stored kind label is informational.
func fileFromJSON(raw *datatypes.JSON, kind order.FileKind) (*order.UploadedFile, error) {
	if raw == nil || len(*raw) == 0 || string(*raw) == "null" {
		return nil, nil
	}
	var dto UploadedFileDTO
	if err := json.Unmarshal(*raw, &dto); err != nil {
		return nil, err
	}
	f, err := order.NewUploadedFile(kind, dto.Name, dto.MimeType, dto.Size, dto.DataURI)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
