package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// DownloadReportCommandHandler returns the report and, on the first download,
// moves the order from Payment Confirmed to Report Downloaded.
//
// A repeat download is answered from the stored order without a version check
// and without writing, so a buyer retrying with a stale version still gets the file.
type DownloadReportCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDownloadReportCommandHandler(uowFactory OrderUoWFactory) DownloadReportCommandHandler {
	return DownloadReportCommandHandler{uowFactory: uowFactory}
}

// Handle returns the report file.
func (h DownloadReportCommandHandler) Handle(ctx context.Context, cmd DownloadReportCommand) (order.UploadedFile, error) {
	if err := cmd.Validate(); err != nil {
		return order.UploadedFile{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.UploadedFile{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.UploadedFile{}, err
	}

	if err = services.NewRoleGate().Authorize(cmd.Actor(), o, order.TriggerReportDownload); err != nil {
		return order.UploadedFile{}, err
	}

	if o.IsReportDownloaded() {
		return o.DownloadReport()
	}

	if err = o.CheckVersion(cmd.ExpectedVersion()); err != nil {
		return order.UploadedFile{}, err
	}

	report, err := o.DownloadReport()
	if err != nil {
		return order.UploadedFile{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.UploadedFile{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.UploadedFile{}, err
	}

	return report, nil
}
