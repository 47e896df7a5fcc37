package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUploadReportCommandIsNotConstructed = errors.New(
	"UploadReportCommand must be created via NewUploadReportCommand constructor",
)

// UploadReportCommand attaches the admin's verification report to a service order.
type UploadReportCommand struct {
	orderReference
	file order.UploadedFile

	guard guard.ConstructorGuard
}

// NewUploadReportCommand validates the reference and the report (PDF, JPEG or PNG).
func NewUploadReportCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	expectedVersion int,
	name, mimeType string,
	size int64,
	dataURI string,
) (UploadReportCommand, error) {
	ref, refErr := newOrderReference(actor, orderID, expectedVersion)
	file, fileErr := order.NewUploadedFile(order.KindReport, name, mimeType, size, dataURI)
	if err := errors.Join(refErr, fileErr); err != nil {
		return UploadReportCommand{}, err
	}

	return UploadReportCommand{
		orderReference: ref,
		file:           file,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadReportCommand) Validate() error {
	return c.guard.Validate(ErrUploadReportCommandIsNotConstructed)
}

// File returns the validated report.
func (c UploadReportCommand) File() order.UploadedFile {
	return c.file
}
