package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// orderReference is the part shared by every command that mutates an existing
// order: who acts, on which order, and which version they last saw.
type orderReference struct {
	actor           kernel.Actor
	orderID         kernel.UUID
	expectedVersion int
}

func newOrderReference(actor kernel.Actor, orderID kernel.UUID, expectedVersion int) (orderReference, error) {
	var versionErr error
	if expectedVersion < 1 {
		versionErr = errs.NewValueIsInvalidErrorWithCause("expectedVersion",
			fmt.Errorf("%d is less than 1", expectedVersion))
	}
	if err := errors.Join(actor.Validate(), orderID.Validate(), versionErr); err != nil {
		return orderReference{}, err
	}
	return orderReference{actor: actor, orderID: orderID, expectedVersion: expectedVersion}, nil
}

// Actor returns the authenticated identity issuing the command.
func (r orderReference) Actor() kernel.Actor {
	return r.actor
}

// OrderID returns the order the command targets.
func (r orderReference) OrderID() kernel.UUID {
	return r.orderID
}

// ExpectedVersion returns the order version the caller last read.
func (r orderReference) ExpectedVersion() int {
	return r.expectedVersion
}
