package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Orders live on one of
// two disjoint tracks chosen at checkout (see Track); Cancelled is shared.
//
// Retail track:
//
//	Pending ─┬─> Processing ─┬─> Shipped ─┬─> Completed
//	         └───────────────┴────────────┴─> Cancelled
//	(the admin selector may jump between any non-terminal retail statuses)
//
// Service track:
//
//	Awaiting Document ──> Document Submitted ──┬──> Document In Review ──┐
//	                                           └─────────────────────────┴─> Report Ready - Awaiting Payment
//	Report Ready - Awaiting Payment ──> Payment Confirmed ──> Report Downloaded
//	(any non-terminal status) ──> Cancelled
//
// The wire and persistence form of a status is its label, e.g. "Report Ready - Awaiting Payment".
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a retail order.
	Pending
	// Processing means the admin started preparing the retail order.
	Processing
	// Shipped means the retail order left the store.
	Shipped
	// Completed is the terminal success status of a retail order.
	Completed

	// Cancelled is terminal on both tracks.
	Cancelled

	// AwaitingDocument is the initial status of a service order.
	AwaitingDocument
	// DocumentSubmitted is reached when the owner uploads the document.
	DocumentSubmitted
	// DocumentInReview is the optional admin acknowledgment step.
	DocumentInReview
	// ReportReadyAwaitingPayment is reached when the admin uploads the report.
	ReportReadyAwaitingPayment
	// PaymentConfirmed is reached when the admin confirms the manual payment.
	PaymentConfirmed
	// ReportDownloaded is the terminal success status of a service order.
	ReportDownloaded
)

// getStatusStrings returns a map of Status values to their labels.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                    "Unknown",
		Pending:                    "Pending",
		Processing:                 "Processing",
		Shipped:                    "Shipped",
		Completed:                  "Completed",
		Cancelled:                  "Cancelled",
		AwaitingDocument:           "Awaiting Document",
		DocumentSubmitted:          "Document Submitted",
		DocumentInReview:           "Document In Review",
		ReportReadyAwaitingPayment: "Report Ready - Awaiting Payment",
		PaymentConfirmed:           "Payment Confirmed",
		ReportDownloaded:           "Report Downloaded",
	}
}

// getTerminalStatuses returns the statuses no transition may leave.
func getTerminalStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Completed:        {},
		Cancelled:        {},
		ReportDownloaded: {},
	}
}

// ParseStatus converts a label back into a Status. Matching ignores case and
// surrounding whitespace; Unknown is never returned without an error.
//
// Example:
//
//	s, err := order.ParseStatus("payment confirmed") // PaymentConfirmed, nil
func ParseStatus(label string) (Status, error) {
	label = strings.TrimSpace(label)
	for s, str := range getStatusStrings() {
		if s != Unknown && strings.EqualFold(str, label) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", label))
}

// Validate checks if the Status value is one of the defined statuses.
//
// Unknown (0) and any other values are invalid. Used to vet values coming
// from the database and the API before they reach the aggregate.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the label of the status, or "Unknown" for invalid values.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	_, ok := getTerminalStatuses()[s]
	return ok
}

// BelongsTo reports whether s is a status of track t.
func (s Status) BelongsTo(t Track) bool {
	for _, candidate := range t.Statuses() {
		if candidate == s {
			return true
		}
	}
	return false
}

// SubmitDocument transitions the status for a buyer document upload.
//
// Valid transitions:
//   - Awaiting Document -> Document Submitted
//
// Returns:
//   - (DocumentSubmitted, nil) on valid transition
//   - (Unknown, *TransitionError) otherwise
func (s Status) SubmitDocument() (Status, error) {
	if s != AwaitingDocument {
		return Unknown, newTransitionError(s, DocumentSubmitted, TriggerDocumentUpload)
	}
	return DocumentSubmitted, nil
}

// Acknowledge transitions the status for the optional admin review step.
//
// Valid transitions:
//   - Document Submitted -> Document In Review
func (s Status) Acknowledge() (Status, error) {
	if s != DocumentSubmitted {
		return Unknown, newTransitionError(s, DocumentInReview, TriggerAcknowledge)
	}
	return DocumentInReview, nil
}

// PublishReport transitions the status for an admin report upload.
//
// Valid transitions:
//   - Document Submitted -> Report Ready - Awaiting Payment (review skipped)
//   - Document In Review -> Report Ready - Awaiting Payment
func (s Status) PublishReport() (Status, error) {
	if s != DocumentSubmitted && s != DocumentInReview {
		return Unknown, newTransitionError(s, ReportReadyAwaitingPayment, TriggerReportUpload)
	}
	return ReportReadyAwaitingPayment, nil
}

// ConfirmPayment transitions the status when the admin confirms the manual payment.
//
// Valid transitions:
//   - Report Ready - Awaiting Payment -> Payment Confirmed
func (s Status) ConfirmPayment() (Status, error) {
	if s != ReportReadyAwaitingPayment {
		return Unknown, newTransitionError(s, PaymentConfirmed, TriggerPaymentConfirmation)
	}
	return PaymentConfirmed, nil
}

// DownloadReport transitions the status for a buyer report download.
//
// Valid transitions:
//   - Payment Confirmed -> Report Downloaded
//   - Report Downloaded -> Report Downloaded (repeat download, no change)
func (s Status) DownloadReport() (Status, error) {
	if s != PaymentConfirmed && s != ReportDownloaded {
		return Unknown, newTransitionError(s, ReportDownloaded, TriggerReportDownload)
	}
	return ReportDownloaded, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.Validate() != nil || s.IsTerminal() {
		return Unknown, newTransitionError(s, Cancelled, TriggerCancellation)
	}
	return Cancelled, nil
}

// Select applies the admin status selector on track t.
//
// On the retail track any non-terminal status may move to any other retail
// status, in any order. On the service track the selector only reaches the
// statuses that need no attachment: Document In Review (acknowledgment),
// Payment Confirmed and Cancelled. Report upload and the buyer steps have
// dedicated operations.
//
// Returns:
//   - (target, nil) when the move is legal
//   - (Unknown, *TransitionError) otherwise; the caller keeps its status
func (s Status) Select(t Track, target Status) (Status, error) {
	if !s.BelongsTo(t) || !target.BelongsTo(t) || target == s {
		return Unknown, newTransitionError(s, target, TriggerStatusSelection)
	}

	switch t {
	case TrackRetail:
		if s.IsTerminal() {
			return Unknown, newTransitionError(s, target, TriggerStatusSelection)
		}
		return target, nil
	case TrackService:
		//nolint:exhaustive // only these targets are reachable from the selector
		switch target {
		case DocumentInReview:
			return s.Acknowledge()
		case PaymentConfirmed:
			return s.ConfirmPayment()
		case Cancelled:
			return s.Cancel()
		}
	}

	return Unknown, newTransitionError(s, target, TriggerStatusSelection)
}

// AvailableTargets lists the statuses the admin selector may move s to on track t,
// in track order. Terminal statuses have none.
func (s Status) AvailableTargets(t Track) []Status {
	var targets []Status
	for _, candidate := range t.Statuses() {
		if next, err := s.Select(t, candidate); err == nil {
			targets = append(targets, next)
		}
	}
	return targets
}
