package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) GetForUpdate(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context) (*settings.AdminSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.AdminSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *settings.AdminSettings) error {
	return m.Called(ctx, s).Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct {
	mock.Mock

	orders   *MockOrderRepository
	products *MockProductRepository
	users    *MockUserRepository
	carts    *MockCartRepository
	settings *MockSettingsRepository
	outbox   *MockOutboxRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:   new(MockOrderRepository),
		products: new(MockProductRepository),
		users:    new(MockUserRepository),
		carts:    new(MockCartRepository),
		settings: new(MockSettingsRepository),
		outbox:   new(MockOutboxRepository),
	}
}

// expectTx registers Begin and a tolerant Rollback; commit says whether Commit is expected.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Maybe()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.carts.AssertExpectations(t)
	m.settings.AssertExpectations(t)
	m.outbox.AssertExpectations(t)
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository       { return m.orders }
func (m *MockUoW) ProductRepository() ports.ProductRepository   { return m.products }
func (m *MockUoW) UserRepository() ports.UserRepository         { return m.users }
func (m *MockUoW) CartRepository() ports.CartRepository         { return m.carts }
func (m *MockUoW) SettingsRepository() ports.SettingsRepository { return m.settings }
func (m *MockUoW) OutboxRepository() ports.OutboxRepository     { return m.outbox }

// uowFactory adapts a fixed unit of work to any of the handler factory interfaces.
type uowFactory[T any] struct{ uow T }

func (f uowFactory[T]) Create() T { return f.uow }

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(actor kernel.Actor) (string, time.Time, error) {
	args := m.Called(actor)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenIssuer) Parse(token string) (kernel.Actor, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.Actor), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

// fixtures

const testQR = "https://picsum.photos/seed/sampleQR/250/250"

func actorOf(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func serviceSnapshot() product.Snapshot {
	return product.Snapshot{
		ProductID:   kernel.NewUUID(),
		Name:        "Plagiarism Check",
		Description: "Professional plagiarism check",
		Price:       75000,
		ImageURL:    "https://picsum.photos/seed/turnitin_service/400/300",
		IsService:   true,
	}
}

func retailSnapshot() product.Snapshot {
	return product.Snapshot{
		ProductID:   kernel.NewUUID(),
		Name:        "Leather Backpack",
		Description: "A durable leather backpack",
		Price:       650000,
		ImageURL:    "https://picsum.photos/seed/backpack/400/300",
	}
}

func testDocument(t *testing.T) order.UploadedFile {
	t.Helper()
	f, err := order.NewUploadedFile(order.KindDocument, "thesis.pdf", "application/pdf", 4, "data:application/pdf;base64,JVBERg==")
	require.NoError(t, err)
	return f
}

func testReport(t *testing.T) order.UploadedFile {
	t.Helper()
	f, err := order.NewUploadedFile(order.KindReport, "report.pdf", "application/pdf", 4, "data:application/pdf;base64,JVBERg==")
	require.NoError(t, err)
	return f
}

func mustSum(t *testing.T, items []order.LineItem) int64 {
	t.Helper()
	total, err := order.SumLineItems(items)
	require.NoError(t, err)
	return total
}

// storedServiceOrder returns a service order as loaded from the database at the given status and version.
func storedServiceOrder(t *testing.T, ownerID kernel.UUID, status order.Status, version int) *order.Order {
	t.Helper()
	items := []order.LineItem{{Product: serviceSnapshot(), Quantity: 1}}

	params := order.RestoreParams{
		ID:             kernel.NewUUID(),
		Owner:          order.Owner{UserID: ownerID, Email: "buyer@example.com"},
		Items:          items,
		TotalAmount:    mustSum(t, items),
		OrderDate:      time.Now().Add(-time.Hour),
		Status:         status,
		IsServiceOrder: true,
		QRISImageURL:   testQR,
		Version:        version,
	}
	//nolint:exhaustive // statuses before the document need no files
	switch status {
	case order.DocumentSubmitted, order.DocumentInReview:
		doc := testDocument(t)
		params.BuyerUploadedFile = &doc
	case order.ReportReadyAwaitingPayment, order.PaymentConfirmed, order.ReportDownloaded:
		doc, rep := testDocument(t), testReport(t)
		params.BuyerUploadedFile = &doc
		params.AdminUploadedReport = &rep
	}

	o, err := order.RestoreOrder(params)
	require.NoError(t, err)
	return o
}

func storedRetailOrder(t *testing.T, ownerID kernel.UUID, status order.Status, version int) *order.Order {
	t.Helper()
	items := []order.LineItem{{Product: retailSnapshot(), Quantity: 2}}
	o, err := order.RestoreOrder(order.RestoreParams{
		ID:          kernel.NewUUID(),
		Owner:       order.Owner{UserID: ownerID, Email: "buyer@example.com"},
		Items:       items,
		TotalAmount: mustSum(t, items),
		OrderDate:   time.Now().Add(-time.Hour),
		Status:      status,
		Version:     version,
	})
	require.NoError(t, err)
	return o
}
