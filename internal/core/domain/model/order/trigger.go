package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
)

var (
	// ErrTransitionNotAllowed is wrapped by every TransitionError.
	ErrTransitionNotAllowed = errors.New("transition not allowed")

	// ErrNotServiceOrder is returned when a document, report or payment
	// operation targets a retail order.
	ErrNotServiceOrder = errors.New("order is not a service order")
)

// Trigger names the action that causes a transition. Each trigger has exactly
// one role that may invoke it.
type Trigger int

const (
	TriggerUnknown Trigger = iota
	TriggerCheckout
	TriggerDocumentUpload
	TriggerAcknowledge
	TriggerReportUpload
	TriggerPaymentConfirmation
	TriggerReportDownload
	TriggerCancellation
	TriggerStatusSelection
)

func getTriggerStrings() map[Trigger]string {
	return map[Trigger]string{
		TriggerCheckout:            "checkout",
		TriggerDocumentUpload:      "document upload",
		TriggerAcknowledge:         "acknowledgment",
		TriggerReportUpload:        "report upload",
		TriggerPaymentConfirmation: "payment confirmation",
		TriggerReportDownload:      "report download",
		TriggerCancellation:        "cancellation",
		TriggerStatusSelection:     "status selection",
	}
}

func (t Trigger) String() string {
	if s, ok := getTriggerStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// RequiredRole returns the role allowed to invoke the trigger. Buyer triggers
// are additionally restricted to the order owner.
func (t Trigger) RequiredRole() kernel.Role {
	//nolint:exhaustive // everything else is an admin action
	switch t {
	case TriggerCheckout, TriggerDocumentUpload, TriggerReportDownload:
		return kernel.RoleBuyer
	case TriggerUnknown:
		return kernel.RoleUnknown
	}
	return kernel.RoleAdmin
}

// TransitionError reports a status change the state machine rejected.
// The order is left unchanged.
type TransitionError struct {
	From    Status
	To      Status
	Trigger Trigger
}

func newTransitionError(from, to Status, trigger Trigger) *TransitionError {
	return &TransitionError{From: from, To: to, Trigger: trigger}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %q -> %q by %s", ErrTransitionNotAllowed, e.From, e.To, e.Trigger)
}

func (e *TransitionError) Unwrap() error {
	return ErrTransitionNotAllowed
}
