package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// UploadDocumentCommandHandler moves a service order from Awaiting Document to
// Document Submitted. Only the owning buyer may upload, and only files within
// the configured size limit are accepted.
type UploadDocumentCommandHandler struct {
	uowFactory     OrderUoWFactory
	maxUploadBytes int64
}

// NewUploadDocumentCommandHandler creates the handler. maxUploadBytes <= 0 disables the size limit.
func NewUploadDocumentCommandHandler(uowFactory OrderUoWFactory, maxUploadBytes int64) UploadDocumentCommandHandler {
	return UploadDocumentCommandHandler{
		uowFactory:     uowFactory,
		maxUploadBytes: maxUploadBytes,
	}
}

// Handle runs the upload in one transaction.
func (h UploadDocumentCommandHandler) Handle(ctx context.Context, cmd UploadDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := checkUploadSize(cmd.File(), h.maxUploadBytes); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.orderReference, order.TriggerDocumentUpload,
		func(o *order.Order) error {
			return o.UploadDocument(cmd.File())
		})
}

func checkUploadSize(file order.UploadedFile, maxBytes int64) error {
	if maxBytes > 0 && file.Size() > maxBytes {
		return errs.NewValueIsOutOfRangeError("file size", file.Size(), 1, maxBytes)
	}
	return nil
}
