package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// mutateOrder runs one role-gated, version-checked transition in its own
// transaction. Nothing is written unless every step succeeds.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	ref orderReference,
	trigger order.Trigger,
	mutate func(o *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, ref.OrderID())
	if err != nil {
		return err
	}

	if err = services.NewRoleGate().Authorize(ref.Actor(), o, trigger); err != nil {
		return err
	}

	if err = o.CheckVersion(ref.ExpectedVersion()); err != nil {
		return err
	}

	if err = mutate(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
