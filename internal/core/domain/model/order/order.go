package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Owner is the buyer an order belongs to. The email is a snapshot taken at checkout.
type Owner struct {
	UserID kernel.UUID
	Email  string
}

// Order is the aggregate root of the order workflow. It owns the line item
// snapshot, the status machine and the files exchanged on service orders.
//
// Order follows these invariants:
//   - TotalAmount always equals the sum of price times quantity over the line items
//   - IsServiceOrder is derived from the line items at creation and never toggles
//   - Status belongs to the track selected by IsServiceOrder
//   - QRISImageURL is set only on service orders and never changes
//   - Files are attached only to service orders, and only through their transitions
//   - Version starts at 1 and grows by one per persisted mutation
//
// Authorization is not checked here: callers pass the order through
// services.RoleGate before invoking a transition.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	owner Owner

	// items is the line item snapshot taken at checkout
	items []LineItem

	totalAmount int64

	// orderDate is the creation timestamp, immutable
	orderDate time.Time

	status Status

	isServiceOrder bool

	buyerUploadedFile   *UploadedFile
	adminUploadedReport *UploadedFile

	// qrisImageURL is the payment QR image URL snapshotted at checkout (service orders only)
	qrisImageURL string

	// version is the value the order will have once persisted;
	// baseVersion is the value it was loaded with (0 for a new order)
	version     int
	baseVersion int

	events []Event

	guard guard.ConstructorGuard
}

// NewOrder places a new order. The track, initial status and total are derived
// from items; qrisImageURL is kept only when the items contain the service.
//
// Parameters:
//   - id: Unique identifier for the order
//   - owner: The buyer placing the order
//   - items: Non-empty line item snapshot
//   - orderDate: Creation timestamp
//   - qrisImageURL: Current payment QR image URL from admin settings
//
// Returns:
//   - *Order: The created order with version 1 and an EventOrderPlaced recorded
//   - error: Joined validation errors if any parameter is invalid
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), owner, items, time.Now(), settings.QRISImageURL())
func NewOrder(id kernel.UUID, owner Owner, items []LineItem, orderDate time.Time, qrisImageURL string) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard(), version: 1}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setItems(items),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	total, err := SumLineItems(o.items)
	if err != nil {
		return nil, err
	}
	o.isServiceOrder = ContainsService(o.items)
	o.totalAmount = total
	o.status = TrackOf(o.isServiceOrder).Initial()

	if o.isServiceOrder {
		qrisImageURL = strings.TrimSpace(qrisImageURL)
		if err := kernel.ValidateHTTPURL("qrisImageUrlForOrder", qrisImageURL); err != nil {
			return nil, err
		}
		o.qrisImageURL = qrisImageURL
	}

	o.record(EventOrderPlaced, Unknown, o.status, TriggerCheckout)
	return o, nil
}

// RestoreParams carries a persisted order into RestoreOrder.
type RestoreParams struct {
	ID                  kernel.UUID
	Owner               Owner
	Items               []LineItem
	TotalAmount         int64
	OrderDate           time.Time
	Status              Status
	IsServiceOrder      bool
	BuyerUploadedFile   *UploadedFile
	AdminUploadedReport *UploadedFile
	QRISImageURL        string
	Version             int
}

// RestoreOrder rebuilds a persisted order and re-checks every invariant, so a
// corrupted row surfaces as an error instead of an inconsistent aggregate.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		guard:               guard.NewConstructorGuard(),
		totalAmount:         p.TotalAmount,
		status:              p.Status,
		isServiceOrder:      p.IsServiceOrder,
		buyerUploadedFile:   p.BuyerUploadedFile,
		adminUploadedReport: p.AdminUploadedReport,
		qrisImageURL:        p.QRISImageURL,
		version:             p.Version,
		baseVersion:         p.Version,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setOwner(p.Owner),
		o.setItems(p.Items),
		o.setOrderDate(p.OrderDate),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := o.checkInvariants(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) checkInvariants() error {
	var problems []error

	if sum, err := SumLineItems(o.items); err != nil {
		problems = append(problems, err)
	} else if sum != o.totalAmount {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d does not equal the line item sum %d", o.totalAmount, sum)))
	}
	if derived := ContainsService(o.items); derived != o.isServiceOrder {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("isServiceOrder",
			fmt.Errorf("flag is %t but line items say %t", o.isServiceOrder, derived)))
	}
	if !o.status.BelongsTo(o.Track()) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a %s status", o.status, o.Track())))
	}
	if o.version < 1 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is less than 1", o.version)))
	}

	if o.isServiceOrder {
		if err := kernel.ValidateHTTPURL("qrisImageUrlForOrder", o.qrisImageURL); err != nil {
			problems = append(problems, err)
		}
		problems = append(problems, o.checkAttachments())
	} else if o.qrisImageURL != "" || o.buyerUploadedFile != nil || o.adminUploadedReport != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("order",
			errors.New("retail orders carry no QR image or files")))
	}

	return errors.Join(problems...)
}

func (o *Order) checkAttachments() error {
	needsDocument := map[Status]bool{
		DocumentSubmitted: true, DocumentInReview: true,
		ReportReadyAwaitingPayment: true, PaymentConfirmed: true, ReportDownloaded: true,
	}
	needsReport := map[Status]bool{
		ReportReadyAwaitingPayment: true, PaymentConfirmed: true, ReportDownloaded: true,
	}

	var problems []error
	if needsDocument[o.status] && o.buyerUploadedFile == nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("buyerUploadedFile",
			fmt.Errorf("status %q requires the buyer document", o.status)))
	}
	if needsReport[o.status] && o.adminUploadedReport == nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("adminUploadedReport",
			fmt.Errorf("status %q requires the admin report", o.status)))
	}
	if o.buyerUploadedFile != nil && o.buyerUploadedFile.Kind() != KindDocument {
		problems = append(problems, errs.NewValueIsInvalidError("buyerUploadedFile"))
	}
	if o.adminUploadedReport != nil && o.adminUploadedReport.Kind() != KindReport {
		problems = append(problems, errs.NewValueIsInvalidError("adminUploadedReport"))
	}
	return errors.Join(problems...)
}

// Validate ensures the Order instance was properly constructed through NewOrder
// or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Owner returns the buyer the order belongs to.
func (o *Order) Owner() Owner {
	return o.owner
}

// Items returns a copy of the line item snapshot.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// TotalAmount returns the sum of price times quantity, in the smallest currency unit.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsServiceOrder reports whether the order follows the service track.
func (o *Order) IsServiceOrder() bool {
	return o.isServiceOrder
}

// Track returns the status track selected at checkout.
func (o *Order) Track() Track {
	return TrackOf(o.isServiceOrder)
}

// BuyerUploadedFile returns the buyer document, or nil before it is uploaded.
func (o *Order) BuyerUploadedFile() *UploadedFile {
	return o.buyerUploadedFile
}

// AdminUploadedReport returns the verification report, or nil before it is uploaded.
func (o *Order) AdminUploadedReport() *UploadedFile {
	return o.adminUploadedReport
}

// QRISImageURL returns the payment QR image URL snapshotted at checkout.
// It is empty for retail orders.
func (o *Order) QRISImageURL() string {
	return o.qrisImageURL
}

// Version returns the version the order has (or will have once persisted).
func (o *Order) Version() int {
	return o.version
}

// BaseVersion returns the version the order was loaded with. Repositories use
// it as the compare-and-swap guard; it is 0 for an order not yet stored.
func (o *Order) BaseVersion() int {
	return o.baseVersion
}

// IsNew reports whether the order has never been persisted.
func (o *Order) IsNew() bool {
	return o.baseVersion == 0
}

// CheckVersion rejects a caller working from a stale copy.
//
// Returns:
//   - nil if expected equals the current version
//   - *errs.VersionIsInvalidError otherwise
func (o *Order) CheckVersion(expected int) error {
	if expected != o.version {
		return errs.NewVersionIsInvalidError("order", expected, o.version)
	}
	return nil
}

// AvailableStatusChanges lists the statuses the admin status selector may move
// the order to right now. It is empty for terminal orders.
func (o *Order) AvailableStatusChanges() []Status {
	return o.status.AvailableTargets(o.Track())
}

// UploadDocument attaches the buyer's document and moves the order from
// Awaiting Document to Document Submitted.
//
// Returns:
//   - ErrNotServiceOrder for retail orders
//   - a validation error if file is not a document
//   - *TransitionError if the order is not awaiting a document
func (o *Order) UploadDocument(file UploadedFile) error {
	if err := o.requireService(); err != nil {
		return err
	}
	if err := o.requireKind(file, KindDocument); err != nil {
		return err
	}

	next, err := o.status.SubmitDocument()
	if err != nil {
		return err
	}

	o.buyerUploadedFile = &file
	o.changeStatus(next, TriggerDocumentUpload)
	return nil
}

// UploadReport attaches the verification report and moves the order to
// Report Ready - Awaiting Payment. The review step may be skipped.
func (o *Order) UploadReport(file UploadedFile) error {
	if err := o.requireService(); err != nil {
		return err
	}
	if err := o.requireKind(file, KindReport); err != nil {
		return err
	}

	next, err := o.status.PublishReport()
	if err != nil {
		return err
	}

	o.adminUploadedReport = &file
	o.changeStatus(next, TriggerReportUpload)
	return nil
}

// ConfirmPayment records the manual payment confirmation. No file is touched.
func (o *Order) ConfirmPayment() error {
	if err := o.requireService(); err != nil {
		return err
	}

	next, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	o.changeStatus(next, TriggerPaymentConfirmation)
	return nil
}

// DownloadReport hands the report to the buyer and moves the order to
// Report Downloaded. A repeat download returns the same report and changes
// nothing: no status change, no version bump, no event.
func (o *Order) DownloadReport() (UploadedFile, error) {
	if err := o.requireService(); err != nil {
		return UploadedFile{}, err
	}

	next, err := o.status.DownloadReport()
	if err != nil {
		return UploadedFile{}, err
	}
	if o.adminUploadedReport == nil {
		return UploadedFile{}, errs.NewValueIsRequiredError("adminUploadedReport")
	}

	if next != o.status {
		o.changeStatus(next, TriggerReportDownload)
	}
	return *o.adminUploadedReport, nil
}

// IsReportDownloaded reports whether a download would be a repeat.
func (o *Order) IsReportDownloaded() bool {
	return o.status == ReportDownloaded
}

// ChangeStatus applies the admin status selector. See Status.Select for the
// moves each track permits. On error the order is unchanged.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.Select(o.Track(), target)
	if err != nil {
		return err
	}

	trigger := TriggerStatusSelection
	if next == Cancelled {
		trigger = TriggerCancellation
	}
	o.changeStatus(next, trigger)
	return nil
}

// PullEvents returns the events recorded since the last call and forgets them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) changeStatus(next Status, trigger Trigger) {
	from := o.status
	o.status = next
	o.touch()
	o.record(EventStatusChanged, from, next, trigger)
}

// touch bumps the version once per unit of work.
func (o *Order) touch() {
	if o.version == o.baseVersion {
		o.version++
	}
}

func (o *Order) record(eventType EventType, from, to Status, trigger Trigger) {
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		OrderID:    o.id,
		UserID:     o.owner.UserID,
		From:       from,
		To:         to,
		Trigger:    trigger,
		Version:    o.version,
		OccurredAt: time.Now().UTC(),
	})
}

func (o *Order) requireService() error {
	if !o.isServiceOrder {
		return ErrNotServiceOrder
	}
	return nil
}

func (o *Order) requireKind(file UploadedFile, kind FileKind) error {
	if file.Kind() != kind {
		return errs.NewValueIsInvalidErrorWithCause("file",
			fmt.Errorf("expected a %s, got a %s", kind, file.Kind()))
	}
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner Owner) error {
	owner.Email = strings.TrimSpace(owner.Email)
	var emailErr error
	if owner.Email == "" {
		emailErr = errs.NewValueIsRequiredError("userEmail")
	}
	if err := errors.Join(owner.UserID.Validate(), emailErr); err != nil {
		return err
	}
	o.owner = owner
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}
