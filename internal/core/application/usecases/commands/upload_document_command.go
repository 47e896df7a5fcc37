package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUploadDocumentCommandIsNotConstructed = errors.New(
	"UploadDocumentCommand must be created via NewUploadDocumentCommand constructor",
)

// UploadDocumentCommand attaches the buyer's document to a service order that
// is awaiting it. The file metadata is checked against its content here.
//
// Example:
//
//	cmd, err := NewUploadDocumentCommand(actor, orderID, 1,
//	    "thesis.pdf", "application/pdf", 4, "data:application/pdf;base64,JVBERg==")
type UploadDocumentCommand struct {
	orderReference
	file order.UploadedFile

	guard guard.ConstructorGuard
}

// NewUploadDocumentCommand validates the reference and the document.
func NewUploadDocumentCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	expectedVersion int,
	name, mimeType string,
	size int64,
	dataURI string,
) (UploadDocumentCommand, error) {
	ref, refErr := newOrderReference(actor, orderID, expectedVersion)
	file, fileErr := order.NewUploadedFile(order.KindDocument, name, mimeType, size, dataURI)
	if err := errors.Join(refErr, fileErr); err != nil {
		return UploadDocumentCommand{}, err
	}

	return UploadDocumentCommand{
		orderReference: ref,
		file:           file,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadDocumentCommand) Validate() error {
	return c.guard.Validate(ErrUploadDocumentCommandIsNotConstructed)
}

// File returns the validated document.
func (c UploadDocumentCommand) File() order.UploadedFile {
	return c.file
}
