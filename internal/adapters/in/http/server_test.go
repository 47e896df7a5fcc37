package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/auth"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommand[C any] struct{ mock.Mock }

func (m *mockCommand[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockRequest[C, R any] struct{ mock.Mock }

func (m *mockRequest[C, R]) Handle(ctx context.Context, req C) (R, error) {
	args := m.Called(ctx, req)
	var result R
	if v := args.Get(0); v != nil {
		result = v.(R)
	}
	return result, args.Error(1)
}

type fixture struct {
	e      *echo.Echo
	tokens *auth.JWTIssuer

	login             *mockRequest[commands.LoginCommand, commands.LoginResult]
	register          *mockCommand[commands.RegisterUserCommand]
	checkout          *mockRequest[commands.CheckoutCommand, *order.Order]
	listOrders        *mockRequest[queries.ListOrdersQuery, []queries.OrderView]
	getOrder          *mockRequest[queries.GetOrderQuery, queries.OrderView]
	changeOrderStatus *mockCommand[commands.ChangeOrderStatusCommand]
	getPaymentQR      *mockRequest[queries.GetPaymentQRQuery, []byte]
	createProduct     *mockCommand[commands.CreateProductCommand]
	downloadReport    *mockRequest[commands.DownloadReportCommand, order.UploadedFile]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := auth.NewJWTIssuer("test_secret_key_very_long_for_testing", time.Hour)
	require.NoError(t, err)

	f := &fixture{
		tokens:            tokens,
		login:             new(mockRequest[commands.LoginCommand, commands.LoginResult]),
		register:          new(mockCommand[commands.RegisterUserCommand]),
		checkout:          new(mockRequest[commands.CheckoutCommand, *order.Order]),
		listOrders:        new(mockRequest[queries.ListOrdersQuery, []queries.OrderView]),
		getOrder:          new(mockRequest[queries.GetOrderQuery, queries.OrderView]),
		changeOrderStatus: new(mockCommand[commands.ChangeOrderStatusCommand]),
		getPaymentQR:      new(mockRequest[queries.GetPaymentQRQuery, []byte]),
		createProduct:     new(mockCommand[commands.CreateProductCommand]),
		downloadReport:    new(mockRequest[commands.DownloadReportCommand, order.UploadedFile]),
	}

	server := httpin.NewServer(httpin.Handlers{
		Login:             f.login,
		Register:          f.register,
		Checkout:          f.checkout,
		ListOrders:        f.listOrders,
		GetOrder:          f.getOrder,
		ChangeOrderStatus: f.changeOrderStatus,
		GetPaymentQR:      f.getPaymentQR,
		CreateProduct:     f.createProduct,
		DownloadReport:    f.downloadReport,
	}, 256)

	e, err := httpin.NewRouter(t.Context(), server, httpin.RouterConfig{
		ServiceName: "storefront-test",
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tokens:      tokens,
		BodyLimit:   "1M",
	})
	require.NoError(t, err)
	f.e = e
	return f
}

func (f *fixture) tokenFor(t *testing.T, actor kernel.Actor) string {
	t.Helper()
	token, _, err := f.tokens.Issue(actor)
	require.NoError(t, err)
	return token
}

func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpin.Error {
	t.Helper()
	var body httpin.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func orderView(owner kernel.Actor, status string, version int) queries.OrderView {
	return queries.OrderView{
		ID:        kernel.NewUUID(),
		UserID:    owner.UserID(),
		UserEmail: "buyer@example.com",
		Items: []queries.OrderItemView{{
			Product:  queries.ProductView{ID: kernel.NewUUID(), Name: "Watch", Price: 1500000},
			Quantity: 1,
			Subtotal: 1500000,
		}},
		TotalAmount:            1500000,
		OrderDate:              time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Status:                 status,
		Version:                version,
		AvailableStatusChanges: []string{},
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	userID := kernel.NewUUID()
	f.login.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.LoginCommand) bool {
		return cmd.Password() == "admin"
	})).Return(commands.LoginResult{
		UserID: userID, Email: "admin@gmail.com", Role: kernel.RoleAdmin, Token: "signed", ExpiresAt: time.Now().Add(time.Hour),
	}, nil).Once()
	f.login.On("Handle", mock.Anything, mock.Anything).Return(nil, commands.ErrCredentialsRejected).Once()

	rec := f.do(http.MethodPost, "/api/v1/login", "", `{"email":"admin@gmail.com","password":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var body httpin.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin", body.Role)
	assert.Equal(t, "signed", body.Token)
	assert.Equal(t, userID.String(), body.ID.String())

	rec = f.do(http.MethodPost, "/api/v1/login", "", `{"email":"admin@gmail.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, decodeError(t, rec).Code)
}

func TestLogin_MissingFieldsRejectedByContract(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/login", "", `{"email":"admin@gmail.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.login.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUpdateCartItem_QuantityBeyond32BitsRejectedByContract(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/cart/items/"+kernel.NewUUID().String(),
		f.tokenFor(t, newActor(t, kernel.RoleBuyer)), `{"quantity":3000000000}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister(t *testing.T) {
	t.Run("creates a buyer", func(t *testing.T) {
		f := newFixture(t)
		f.register.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/register", "", `{"email":"New@Example.com","password":"secret1","confirmPassword":"secret1"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body httpin.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "new@example.com", body.Email)
		assert.Equal(t, "buyer", body.Role)
	})

	t.Run("admin role is rejected", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/register", "", `{"email":"x@example.com","password":"secret1","role":"admin"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.register.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)
		f.register.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectAlreadyExistsError("email", "x@example.com")).Once()

		rec := f.do(http.MethodPost, "/api/v1/register", "", `{"email":"x@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestProtectedRoutesNeedAToken(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		token string
	}{
		{"no header", ""},
		{"garbage token", "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(http.MethodGet, "/api/v1/orders", tt.token, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
	f.listOrders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestListOrders(t *testing.T) {
	f := newFixture(t)
	buyer := newActor(t, kernel.RoleBuyer)
	f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.Actor().UserID().IsEqual(buyer.UserID())
	})).Return([]queries.OrderView{orderView(buyer, "Pending", 1)}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders", f.tokenFor(t, buyer), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []httpin.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Pending", body[0].Status)
	assert.Equal(t, int64(1500000), body[0].TotalAmount)
	assert.NotContains(t, rec.Body.String(), "qrisImageUrlForOrder")
}

func TestCheckout(t *testing.T) {
	t.Run("places the order", func(t *testing.T) {
		f := newFixture(t)
		buyer := newActor(t, kernel.RoleBuyer)
		placed, err := order.NewOrder(kernel.NewUUID(), order.Owner{UserID: buyer.UserID(), Email: "buyer@example.com"},
			[]order.LineItem{{Product: orderItemSnapshot(), Quantity: 1}}, time.Now(), "https://picsum.photos/seed/sampleQR/250/250")
		require.NoError(t, err)
		f.checkout.On("Handle", mock.Anything, mock.Anything).Return(placed, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", f.tokenFor(t, buyer), "")

		require.Equal(t, http.StatusCreated, rec.Code)
		var body httpin.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Awaiting Document", body.Status)
		assert.True(t, body.IsServiceOrder)
		assert.Equal(t, int64(75000), body.TotalAmount)
		assert.Equal(t, "https://picsum.photos/seed/sampleQR/250/250", body.QRISImageURLForOrder)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newFixture(t)
		f.checkout.On("Handle", mock.Anything, mock.Anything).Return(nil, services.ErrCartIsEmpty).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", f.tokenFor(t, newActor(t, kernel.RoleBuyer)), "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestChangeOrderStatus(t *testing.T) {
	admin := newActor(t, kernel.RoleAdmin)
	orderID := kernel.NewUUID()
	path := "/api/v1/orders/" + orderID.String() + "/status"

	t.Run("applies the selection", func(t *testing.T) {
		f := newFixture(t)
		f.changeOrderStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStatusCommand) bool {
			return cmd.Target() == order.Shipped
		})).Return(nil).Once()
		f.getOrder.On("Handle", mock.Anything, mock.Anything).Return(orderView(admin, "Shipped", 2), nil).Once()

		rec := f.do(http.MethodPut, path, f.tokenFor(t, admin), `{"status":"Shipped","expectedVersion":1}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var body httpin.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Shipped", body.Status)
		assert.Equal(t, 2, body.Version)
	})

	tests := []struct {
		name      string
		body      string
		handleErr error
		want      int
	}{
		{"unknown status label", `{"status":"Teleported","expectedVersion":1}`, nil, http.StatusBadRequest},
		{"missing version", `{"status":"Shipped"}`, nil, http.StatusBadRequest},
		{"stale version", `{"status":"Shipped","expectedVersion":1}`, errs.NewVersionIsInvalidError("order", 1, 2), http.StatusConflict},
		{"illegal transition", `{"status":"Shipped","expectedVersion":1}`, &order.TransitionError{From: order.Completed, To: order.Shipped, Trigger: order.TriggerStatusSelection}, http.StatusUnprocessableEntity},
		{"not admin", `{"status":"Shipped","expectedVersion":1}`, errs.NewAccessDeniedError("change order status", "admin only"), http.StatusForbidden},
		{"missing order", `{"status":"Shipped","expectedVersion":1}`, errs.NewObjectNotFoundError("order", orderID), http.StatusNotFound},
		{"storage down", `{"status":"Shipped","expectedVersion":1}`, errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.handleErr != nil {
				f.changeOrderStatus.On("Handle", mock.Anything, mock.Anything).Return(tt.handleErr).Once()
			}

			rec := f.do(http.MethodPut, path, f.tokenFor(t, admin), tt.body)

			assert.Equal(t, tt.want, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.want, body.Code)
			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "connection refused")
			}
		})
	}
}

func TestOrderRoutes_RejectMalformedIDs(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/orders/not-a-uuid", f.tokenFor(t, newActor(t, kernel.RoleAdmin)), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetPaymentQR(t *testing.T) {
	buyer := newActor(t, kernel.RoleBuyer)
	path := "/api/v1/orders/" + kernel.NewUUID().String() + "/payment-qr"

	t.Run("default size", func(t *testing.T) {
		f := newFixture(t)
		f.getPaymentQR.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetPaymentQRQuery) bool {
			return q.Size() == 256
		})).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

		rec := f.do(http.MethodGet, path, f.tokenFor(t, buyer), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
	})

	t.Run("size below the contract minimum", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, path+"?size=10", f.tokenFor(t, buyer), "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("retail order", func(t *testing.T) {
		f := newFixture(t)
		f.getPaymentQR.On("Handle", mock.Anything, mock.Anything).Return(nil, order.ErrNotServiceOrder).Once()

		rec := f.do(http.MethodGet, path, f.tokenFor(t, buyer), "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestDownloadReport(t *testing.T) {
	f := newFixture(t)
	buyer := newActor(t, kernel.RoleBuyer)
	report, err := order.NewUploadedFile(order.KindReport, "report.pdf", "application/pdf", 4, "data:application/pdf;base64,JVBERg==")
	require.NoError(t, err)
	f.downloadReport.On("Handle", mock.Anything, mock.Anything).Return(report, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/report/download", f.tokenFor(t, buyer), `{"expectedVersion":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body httpin.UploadedFile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "report.pdf", body.Name)
	assert.Equal(t, "application/pdf", body.Type)
	assert.Equal(t, "data:application/pdf;base64,JVBERg==", body.DataURL)
}

func TestCreateProduct_BuyerDenied(t *testing.T) {
	f := newFixture(t)
	f.createProduct.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewAccessDeniedError("create product", "admin only")).Maybe()

	rec := f.do(http.MethodPost, "/api/v1/products", f.tokenFor(t, newActor(t, kernel.RoleBuyer)),
		`{"name":"Mug","description":"Hand-made","price":45000,"imageUrl":"https://picsum.photos/seed/mug/400/300"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func orderItemSnapshot() product.Snapshot {
	return product.Snapshot{
		ProductID:   kernel.NewUUID(),
		Name:        "Plagiarism Check",
		Description: "Professional plagiarism check with a detailed report",
		Price:       75000,
		ImageURL:    "https://picsum.photos/seed/turnitin_service/400/300",
		IsService:   true,
	}
}
