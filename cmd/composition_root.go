package cmd

import (
	"log/slog"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/auth"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/qrcode"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	orders     queries.OrderReader
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
	qr         ports.QRRenderer
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return CompositionRoot{}, err
	}
	tokens, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		// reads only, so there is nothing to track
		orders: orderrepo.NewGormOrderRepository(gormDB, nil),
		hasher: hasher,
		tokens: tokens,
		qr:     qrcode.NewRenderer("M"),
	}, nil
}

func (c *CompositionRoot) Tokens() ports.TokenIssuer {
	return c.tokens
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateSeedCommandHandler() commands.SeedCommandHandler {
	var f commands.SeedUoWFactory = FuncSeedUoWFactory(func() commands.SeedUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewSeedCommandHandler(f, c.hasher, c.logger)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCheckoutCommandHandler(f, c.cfg.DefaultQRISImageURL)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUploadDocumentCommandHandler() commands.UploadDocumentCommandHandler {
	return commands.NewUploadDocumentCommandHandler(c.orderUoWFactory(), c.cfg.MaxUploadBytes)
}

func (c *CompositionRoot) CreateUploadReportCommandHandler() commands.UploadReportCommandHandler {
	return commands.NewUploadReportCommandHandler(c.orderUoWFactory(), c.cfg.MaxUploadBytes)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDownloadReportCommandHandler() commands.DownloadReportCommandHandler {
	return commands.NewDownloadReportCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewUpdateSettingsCommandHandler(f, c.cfg.DefaultQRISImageURL)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.MessagePublisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB, c.cfg.DefaultQRISImageURL)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderTransitionsQueryHandler() queries.GetOrderTransitionsQueryHandler {
	return queries.NewGetOrderTransitionsQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderDocumentQueryHandler() queries.GetOrderDocumentQueryHandler {
	return queries.NewGetOrderDocumentQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetPaymentQRQueryHandler() queries.GetPaymentQRQueryHandler {
	return queries.NewGetPaymentQRQueryHandler(c.orders, c.qr)
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		Login:    c.CreateLoginCommandHandler(),
		Register: c.CreateRegisterUserCommandHandler(),

		ListProducts:  c.CreateListProductsQueryHandler(),
		GetProduct:    c.CreateGetProductQueryHandler(),
		CreateProduct: c.CreateCreateProductCommandHandler(),
		UpdateProduct: c.CreateUpdateProductCommandHandler(),
		DeleteProduct: c.CreateDeleteProductCommandHandler(),

		GetCart:        c.CreateGetCartQueryHandler(),
		AddCartItem:    c.CreateAddCartItemCommandHandler(),
		UpdateCartItem: c.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem: c.CreateRemoveCartItemCommandHandler(),

		Checkout:            c.CreateCheckoutCommandHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetOrderTransitions: c.CreateGetOrderTransitionsQueryHandler(),
		GetOrderDocument:    c.CreateGetOrderDocumentQueryHandler(),
		GetPaymentQR:        c.CreateGetPaymentQRQueryHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		UploadDocument:      c.CreateUploadDocumentCommandHandler(),
		UploadReport:        c.CreateUploadReportCommandHandler(),
		ConfirmPayment:      c.CreateConfirmPaymentCommandHandler(),
		DownloadReport:      c.CreateDownloadReportCommandHandler(),

		GetSettings:    c.CreateGetSettingsQueryHandler(),
		UpdateSettings: c.CreateUpdateSettingsCommandHandler(),
	}, c.cfg.QRCodeSize)
}

// CreateOutboxRelayJob schedules publication of outbox rows through publisher.
func (c *CompositionRoot) CreateOutboxRelayJob(publisher ports.MessagePublisher) (*jobs.OutboxRelayJob, error) {
	return jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(publisher),
		c.cfg.OutboxRelaySchedule,
		c.cfg.OutboxRelayBatchSize,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.CreateGorm()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncSeedUoWFactory func() commands.SeedUoW

func (f FuncSeedUoWFactory) Create() commands.SeedUoW {
	return f()
}
