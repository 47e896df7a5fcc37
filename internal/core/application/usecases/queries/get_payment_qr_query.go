package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetPaymentQRQueryIsNotConstructed = errors.New(
	"GetPaymentQRQuery must be created via NewGetPaymentQRQuery constructor",
)

const (
	MinQRSize = 64
	MaxQRSize = 1024
)

// GetPaymentQRQuery renders the payment QR snapshotted on a service order as
// a PNG. The QR encodes the image URL the order was placed with, so later
// settings changes do not affect it.
type GetPaymentQRQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID
	size    int

	guard guard.ConstructorGuard
}

func NewGetPaymentQRQuery(actor kernel.Actor, orderID kernel.UUID, size int) (GetPaymentQRQuery, error) {
	var sizeErr error
	if size < MinQRSize || size > MaxQRSize {
		sizeErr = errs.NewValueIsOutOfRangeError("size", size, MinQRSize, MaxQRSize)
	}
	if err := errors.Join(actor.Validate(), orderID.Validate(), sizeErr); err != nil {
		return GetPaymentQRQuery{}, err
	}
	return GetPaymentQRQuery{actor: actor, orderID: orderID, size: size, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentQRQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQRQueryIsNotConstructed)
}

func (q GetPaymentQRQuery) Actor() kernel.Actor { return q.actor }

func (q GetPaymentQRQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetPaymentQRQuery) Size() int { return q.size }
