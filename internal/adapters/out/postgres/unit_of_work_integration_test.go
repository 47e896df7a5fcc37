package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	postgres_adapter "storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite exercises transactions and the outbox
// against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	suite.database = pgtest.Start(context.Background(), suite.T())
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.database.Truncate(suite.T())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.database.Stop(suite.T())
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newServiceOrder() *order.Order {
	items := []order.LineItem{{
		Product: product.Snapshot{
			ProductID:   kernel.NewUUID(),
			Name:        "Plagiarism Check",
			Description: "Professional plagiarism check",
			Price:       75000,
			ImageURL:    "https://picsum.photos/seed/turnitin_service/400/300",
			IsService:   true,
		},
		Quantity: 1,
	}}
	o, err := order.NewOrder(kernel.NewUUID(), order.Owner{UserID: kernel.NewUUID(), Email: "buyer@example.com"},
		items, time.Now().UTC(), "https://picsum.photos/seed/sampleQR/250/250")
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(table string) int64 {
	var n int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesOrderAndOutbox() {
	ctx := context.Background()
	o := suite.newServiceOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows("orders"))
	suite.Equal(int64(1), suite.countRows("order_items"))

	var row outboxrepo.OutboxDTO
	suite.Require().NoError(suite.database.DB.First(&row).Error)
	suite.Equal(string(order.EventOrderPlaced), row.Type)
	suite.Nil(row.PublishedAt)

	var payload outboxrepo.OrderEventPayload
	suite.Require().NoError(json.Unmarshal(row.Payload, &payload))
	suite.Equal(o.ID().String(), payload.OrderID)
	suite.Equal("Awaiting Document", payload.To)
	suite.Empty(payload.From)
	suite.Equal(1, payload.Version)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderCartAndEvents() {
	ctx := context.Background()
	o := suite.newServiceOrder()
	c, err := cart.NewCart(o.Owner().UserID)
	suite.Require().NoError(err)
	suite.Require().NoError(c.AddProduct(o.Items()[0].Product))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.CartRepository().Save(ctx, c))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(suite.countRows("orders"))
	suite.Zero(suite.countRows("cart_items"))
	suite.Zero(suite.countRows("outbox"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_StatusChangeEmitsEvent() {
	ctx := context.Background()
	o := suite.newServiceOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.Cancelled))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	var rows []outboxrepo.OutboxDTO
	suite.Require().NoError(suite.database.DB.Order("occurred_at").Find(&rows).Error)
	suite.Require().Len(rows, 2)
	suite.Equal(string(order.EventStatusChanged), rows[1].Type)

	var payload outboxrepo.OrderEventPayload
	suite.Require().NoError(json.Unmarshal(rows[1].Payload, &payload))
	suite.Equal("Awaiting Document", payload.From)
	suite.Equal("Cancelled", payload.To)
	suite.Equal(2, payload.Version)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentWriters_SecondUpdateIsRejected() {
	ctx := context.Background()
	o := suite.newServiceOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	repo := suite.factory.Create().OrderRepository()
	first, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ChangeStatus(order.Cancelled))
	suite.Require().NoError(repo.Update(ctx, first))

	suite.Require().NoError(second.ChangeStatus(order.Cancelled))
	err = repo.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	stored, err := repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(2, stored.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOutboxRelayCycle() {
	ctx := context.Background()
	o := suite.newServiceOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	pending, err := uow.OutboxRepository().GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].AggregateID.IsEqual(o.ID()))
	suite.Require().NoError(uow.OutboxRepository().MarkPublished(ctx, []kernel.UUID{pending[0].ID}, time.Now()))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	pending, err = uow.OutboxRepository().GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	suite.Error(suite.factory.Create().Commit(context.Background()))
}

type checkoutUoWFactory struct {
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func (f checkoutUoWFactory) Create() commands.CheckoutUoW {
	return f.factory.CreateGorm()
}

// buyerWithCart stores a buyer whose cart holds one service product.
func (suite *UnitOfWorkIntegrationTestSuite) buyerWithCart() kernel.Actor {
	ctx := context.Background()
	buyer, err := user.NewUser(kernel.NewUUID(), "buyer@example.com", "$2a$10$hash", kernel.RoleBuyer)
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.database.DB).Add(ctx, buyer))

	o := suite.newServiceOrder()
	c, err := cart.NewCart(buyer.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(c.AddProduct(o.Items()[0].Product))
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Save(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))

	actor, err := kernel.NewActor(buyer.ID(), kernel.RoleBuyer)
	suite.Require().NoError(err)
	return actor
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckout_WaitsForConcurrentCheckoutOfSameCart() {
	ctx := context.Background()
	actor := suite.buyerWithCart()
	handler := commands.NewCheckoutCommandHandler(checkoutUoWFactory{suite.factory}, "https://picsum.photos/seed/sampleQR/250/250")

	// The first checkout holds the cart while the second one starts.
	first := suite.factory.CreateGorm()
	suite.Require().NoError(first.Begin(ctx))
	held, err := first.CartRepository().GetForUpdate(ctx, actor.UserID())
	suite.Require().NoError(err)
	suite.Require().False(held.IsEmpty())

	done := make(chan error, 1)
	go func() {
		cmd, cmdErr := commands.NewCheckoutCommand(actor, kernel.NewUUID())
		if cmdErr != nil {
			done <- cmdErr
			return
		}
		_, handleErr := handler.Handle(ctx, cmd)
		done <- handleErr
	}()

	select {
	case err = <-done:
		suite.FailNow("second checkout did not wait for the cart lock", "err: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	o := suite.newServiceOrder()
	suite.Require().NoError(first.OrderRepository().Add(ctx, o))
	held.Clear()
	suite.Require().NoError(first.CartRepository().Save(ctx, held))
	suite.Require().NoError(first.Commit(ctx))

	select {
	case err = <-done:
	case <-time.After(10 * time.Second):
		suite.FailNow("second checkout never finished")
	}
	suite.ErrorIs(err, services.ErrCartIsEmpty)
	suite.Equal(int64(1), suite.countRows("orders"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckout_ParallelRequestsPlaceOneOrder() {
	ctx := context.Background()
	actor := suite.buyerWithCart()
	handler := commands.NewCheckoutCommandHandler(checkoutUoWFactory{suite.factory}, "https://picsum.photos/seed/sampleQR/250/250")

	const attempts = 4
	results := make(chan error, attempts)
	for range attempts {
		go func() {
			cmd, err := commands.NewCheckoutCommand(actor, kernel.NewUUID())
			if err != nil {
				results <- err
				return
			}
			_, err = handler.Handle(ctx, cmd)
			results <- err
		}()
	}

	placed := 0
	for range attempts {
		err := <-results
		if err == nil {
			placed++
			continue
		}
		suite.ErrorIs(err, services.ErrCartIsEmpty)
	}
	suite.Equal(1, placed)
	suite.Equal(int64(1), suite.countRows("orders"))
	suite.Zero(suite.countRows("cart_items"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_UnknownUser() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.CartRepository().GetForUpdate(ctx, kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
