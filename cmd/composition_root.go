package cmd

import (
	"fmt"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/email"
	"fulfillment/internal/adapters/out/pdf"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/customerrepo"
	"fulfillment/internal/adapters/out/sms"
	"fulfillment/internal/core/application/links"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/quotation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/notifications"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *zap.Logger
	uowFactory *postgres.GormUnitOfWorkFactory

	clock      ports.Clock
	links      links.Builder
	catalog    ports.CatalogReader
	customers  ports.CustomerDirectory
	renderer   ports.QuotationRenderer
	dispatcher *notifications.Dispatcher
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      ports.SystemClock{},
		links:      links.NewBuilder(cfg.Links.PublicBaseURL),
		catalog:    catalogrepo.NewGormCatalogReader(gormDB),
		customers:  customerrepo.NewGormCustomerDirectory(gormDB),
		renderer:   pdf.NewRenderer(),
	}

	policy, err := c.createNotificationPolicy()
	if err != nil {
		return nil, err
	}
	c.dispatcher = notifications.NewDispatcher(notifications.DispatcherConfig{
		Workers:     cfg.Dispatcher.Workers,
		QueueSize:   cfg.Dispatcher.QueueSize,
		TaskTimeout: cfg.Dispatcher.TaskTimeout,
	}, policy, logger)

	return c, nil
}

func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

func (c *CompositionRoot) issuer() quotation.Issuer {
	i := c.cfg.Issuer
	return quotation.Issuer{
		Name:     i.Name,
		Address:  i.Address,
		Phone:    i.Phone,
		Email:    i.Email,
		Website:  i.Website,
		Currency: i.Currency,
	}
}

func (c *CompositionRoot) payee() quotation.Payee {
	p := c.cfg.Payee
	return quotation.Payee{
		PayBillNumber:     p.PayBillNumber,
		AccountNumber:     p.AccountNumber,
		BankName:          p.BankName,
		BankAccountName:   p.BankAccountName,
		BankAccountNumber: p.BankAccountNumber,
		BankBranch:        p.BankBranch,
	}
}

func (c *CompositionRoot) createNotificationPolicy() (*notifications.Policy, error) {
	smsSender := sms.NewSender(sms.Config{
		BaseURL:  c.cfg.SMS.BaseURL,
		Username: c.cfg.SMS.Username,
		APIKey:   c.cfg.SMS.APIKey,
		SenderID: c.cfg.SMS.SenderID,
		Timeout:  c.cfg.SMS.Timeout,
	}, c.logger)

	emailSender, err := email.NewSender(email.Config{
		Host:     c.cfg.Email.Host,
		Port:     c.cfg.Email.Port,
		Username: c.cfg.Email.Username,
		Password: c.cfg.Email.Password,
		From:     c.cfg.Email.From,
		Timeout:  c.cfg.Email.Timeout,
	}, c.logger)
	if err != nil {
		return nil, fmt.Errorf("email sender: %w", err)
	}

	return notifications.NewPolicy(notifications.PolicyDeps{
		SMS:       smsSender,
		Email:     emailSender,
		Renderer:  c.renderer,
		Customers: c.customers,
		Links:     c.links,
		Issuer:    c.issuer(),
		Payee:     c.payee(),
		Phone: notifications.PhoneSettings{
			CountryCode:    c.cfg.Phone.CountryCode,
			NationalLength: c.cfg.Phone.NationalLength,
		},
	}, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var checkout commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		checkout,
		c.cartUoWFactory(),
		c.catalog,
		c.dispatcher,
		c.clock,
		commands.CheckoutSettings{
			Payee:    c.payee(),
			Currency: c.cfg.Issuer.Currency,
			Links:    c.links,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateSetTrackingStatusCommandHandler() commands.SetTrackingStatusCommandHandler {
	return commands.NewSetTrackingStatusCommandHandler(c.orderUoWFactory(), c.dispatcher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.catalog)
}

func (c *CompositionRoot) CreateEditCartCommandHandler() commands.EditCartCommandHandler {
	return commands.NewEditCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateShippingRateCommandHandler() commands.ShippingRateCommandHandler {
	var f commands.RateUoWFactory = FuncRateUoWFactory(func() commands.RateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShippingRateCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// Single-aggregate reads use a unit of work that never begins a transaction.

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetQuotationQueryHandler() queries.GetQuotationQueryHandler {
	return queries.NewGetQuotationQueryHandler(
		c.uowFactory.Create().OrderRepository(),
		c.customers,
		c.renderer,
		queries.QuotationSettings{Issuer: c.issuer(), Payee: c.payee()},
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.uowFactory.Create().CartRepository())
}

func (c *CompositionRoot) CreateListShippingRatesQueryHandler() queries.ListShippingRatesQueryHandler {
	return queries.NewListShippingRatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		SetTrackingStatus: c.CreateSetTrackingStatusCommandHandler(),
		ConfirmPayment:    c.CreateConfirmPaymentCommandHandler(),
		AddCartItem:       c.CreateAddCartItemCommandHandler(),
		EditCart:          c.CreateEditCartCommandHandler(),
		ShippingRates:     c.CreateShippingRateCommandHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetQuotation:      c.CreateGetQuotationQueryHandler(),
		GetCart:           c.CreateGetCartQueryHandler(),
		ListShippingRates: c.CreateListShippingRatesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.Config{StatsSchedule: c.cfg.Jobs.StatsSchedule}, c.dispatcher, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncRateUoWFactory func() commands.RateUoW

func (f FuncRateUoWFactory) Create() commands.RateUoW {
	return f()
}
