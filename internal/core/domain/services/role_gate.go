package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// RoleGate is the authorization check for order operations. It answers "may
// this actor invoke this trigger on this order"; whether the order's status
// permits the transition is left to the state machine.
//
// Rules:
//   - Admins read every order; buyers read only their own
//   - An order the actor may not read is reported as *errs.ObjectNotFoundError,
//     for writes as well as reads, so its existence is not revealed
//   - Admin triggers require the admin role
//   - Buyer triggers require the buyer role and ownership of the order
//
// Role violations on a visible order return *errs.AccessDeniedError. Nothing
// is mutated on any violation.
type RoleGate struct{}

// NewRoleGate creates a new RoleGate instance.
func NewRoleGate() RoleGate {
	return RoleGate{}
}

// AuthorizeRole checks only the role part of the rule. It is used for
// triggers that have no order yet, such as checkout.
func (RoleGate) AuthorizeRole(actor kernel.Actor, trigger order.Trigger) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	required := trigger.RequiredRole()
	if required == kernel.RoleUnknown || actor.Role() != required {
		return errs.NewAccessDeniedError(trigger.String(),
			fmt.Sprintf("requires role %s, actor is %s", required, actor.Role()))
	}
	return nil
}

// Authorize checks that actor may see o and then the role for trigger. A
// buyer who can see o owns it, so buyer triggers need no further check.
func (g RoleGate) Authorize(actor kernel.Actor, o *order.Order, trigger order.Trigger) error {
	if err := errors.Join(actor.Validate(), o.Validate()); err != nil {
		return err
	}
	if !g.CanView(actor, o) {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	return g.AuthorizeRole(actor, trigger)
}

// CanView reports whether actor may read o.
func (RoleGate) CanView(actor kernel.Actor, o *order.Order) bool {
	if actor.Validate() != nil || o.Validate() != nil {
		return false
	}
	return actor.IsAdmin() || actor.Owns(o.Owner().UserID)
}

func newCartOwnerMismatch(buyerID kernel.UUID) error {
	return errs.NewAccessDeniedError(order.TriggerCheckout.String(),
		fmt.Sprintf("cart does not belong to %s", buyerID))
}
