package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// UploadReportCommandHandler moves a service order to Report Ready - Awaiting
// Payment from Document Submitted or Document In Review. Admin only.
type UploadReportCommandHandler struct {
	uowFactory     OrderUoWFactory
	maxUploadBytes int64
}

// NewUploadReportCommandHandler creates the handler. maxUploadBytes <= 0 disables the size limit.
func NewUploadReportCommandHandler(uowFactory OrderUoWFactory, maxUploadBytes int64) UploadReportCommandHandler {
	return UploadReportCommandHandler{
		uowFactory:     uowFactory,
		maxUploadBytes: maxUploadBytes,
	}
}

// Handle runs the upload in one transaction.
func (h UploadReportCommandHandler) Handle(ctx context.Context, cmd UploadReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := checkUploadSize(cmd.File(), h.maxUploadBytes); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.orderReference, order.TriggerReportUpload,
		func(o *order.Order) error {
			return o.UploadReport(cmd.File())
		})
}
