package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDownloadReportCommandIsNotConstructed = errors.New(
	"DownloadReportCommand must be created via NewDownloadReportCommand constructor",
)

// DownloadReportCommand hands the verification report to the owning buyer.
type DownloadReportCommand struct {
	orderReference

	guard guard.ConstructorGuard
}

func NewDownloadReportCommand(actor kernel.Actor, orderID kernel.UUID, expectedVersion int) (DownloadReportCommand, error) {
	ref, err := newOrderReference(actor, orderID, expectedVersion)
	if err != nil {
		return DownloadReportCommand{}, err
	}
	return DownloadReportCommand{orderReference: ref, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DownloadReportCommand) Validate() error {
	return c.guard.Validate(ErrDownloadReportCommandIsNotConstructed)
}
