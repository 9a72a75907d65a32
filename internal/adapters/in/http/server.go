package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

const APIPrefix = "/api/v1"

// Server translates HTTP requests into use case calls.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{h: handlers, logger: logging.Component(logger, "http")}
}

// NewEcho builds the echo instance with middleware and every route registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = NewErrorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(s.logger))

	s.Register(e)
	return e
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group(APIPrefix)
	api.GET("/shipping-rates/public", s.ListPublicShippingRates)

	authed := api.Group("", Authenticate())
	customer := RequireRole(RoleCustomer)
	admin := RequireRole(RoleAdmin)
	anyone := RequireRole(RoleCustomer, RoleAdmin)

	authed.POST("/orders", s.CreateOrder, customer)
	authed.GET("/orders", s.ListOrders, anyone)
	authed.GET("/orders/:id", s.GetOrder, anyone)
	authed.GET("/orders/:id/quotation", s.GetQuotation, anyone)
	authed.PATCH("/orders/:id/status", s.SetTrackingStatus, admin)
	authed.PATCH("/orders/:id/payment-confirm", s.ConfirmPayment, admin)

	authed.GET("/shipping-rates", s.ListShippingRates, admin)
	authed.POST("/shipping-rates", s.CreateShippingRate, admin)
	authed.PUT("/shipping-rates/:id", s.UpdateShippingRate, admin)
	authed.DELETE("/shipping-rates/:id", s.DeleteShippingRate, admin)

	authed.GET("/cart", s.GetCart, customer)
	authed.POST("/cart", s.AddCartItem, customer)
	authed.DELETE("/cart", s.ClearCart, customer)
	authed.PUT("/cart/:itemId", s.UpdateCartItem, customer)
	authed.DELETE("/cart/:itemId", s.RemoveCartItem, customer)
}

func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// Orders.

func (s *Server) CreateOrder(c echo.Context) error {
	identity, _ := identityFrom(c)

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := newCreateOrderCommand(identity.UserID, req)
	if err != nil {
		return err
	}

	result, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{
		Order:               toOrderResponse(result.Order),
		QuotationLink:       result.QuotationLink,
		PaymentInstructions: result.PaymentInstructions,
	})
}

func newCreateOrderCommand(customerID kernel.UUID, req CreateOrderRequest) (commands.CreateOrderCommand, error) {
	var carrier shipping.Carrier
	var carrierErr error
	if strings.TrimSpace(req.ShippingCarrier) != "" {
		carrier, carrierErr = shipping.ParseCarrier(req.ShippingCarrier)
	}
	method, methodErr := order.ParsePaymentMethod(req.PaymentMethod)
	address, addressErr := order.NewShippingAddress(
		req.ShippingAddress.Name,
		req.ShippingAddress.Phone,
		req.ShippingAddress.City,
		req.ShippingAddress.Region,
		req.ShippingAddress.AddressLine,
	)
	lines, linesErr := lineRequests(req)

	if err := errors.Join(carrierErr, methodErr, addressErr, linesErr); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(commands.CreateOrderParams{
		CustomerID:       customerID,
		ShippingAddress:  address,
		ShippingLocation: req.ShippingLocation,
		ShippingCarrier:  carrier,
		PaymentMethod:    method,
		Lines:            lines,
		ProofOfPayment:   req.ProofOfPayment,
	})
}

func lineRequests(req CreateOrderRequest) ([]services.LineRequest, error) {
	lines := make([]services.LineRequest, 0, len(req.Items)+len(req.Packages))
	var errList []error

	add := func(kind catalog.Kind, rawID string, quantity int) {
		id, err := kernel.UUIDFromString(rawID)
		if err != nil {
			errList = append(errList, badRequest(string(kind)+"Id", err))
			return
		}
		ref, err := catalog.NewRef(kind, id)
		if err != nil {
			errList = append(errList, err)
			return
		}
		lines = append(lines, services.LineRequest{Ref: ref, Quantity: quantity})
	}
	for _, item := range req.Items {
		add(catalog.KindProduct, item.ProductID, item.Quantity)
	}
	for _, pkg := range req.Packages {
		add(catalog.KindPackage, pkg.PackageID, pkg.Quantity)
	}

	return lines, errors.Join(errList...)
}

func (s *Server) ListOrders(c echo.Context) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	page, err := intParam(c, "page")
	if err != nil {
		return err
	}
	limit, err := intParam(c, "limit")
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(viewer, page, limit, c.QueryParam("status"))
	if err != nil {
		return err
	}

	result, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(result))
}

func (s *Server) GetOrder(c echo.Context) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(viewer, orderID)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

func (s *Server) GetQuotation(c echo.Context) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetQuotationQuery(viewer, orderID)
	if err != nil {
		return err
	}
	file, err := s.h.GetQuotation.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+file.Filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", file.Data)
}

func (s *Server) SetTrackingStatus(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetTrackingStatusCommand(orderID, status)
	if err != nil {
		return err
	}
	o, err := s.h.SetTrackingStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

func (s *Server) ConfirmPayment(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID)
	if err != nil {
		return err
	}
	o, err := s.h.ConfirmPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// Shipping rates.

func (s *Server) ListPublicShippingRates(c echo.Context) error {
	rates, err := s.h.ListShippingRates.HandlePublic(c.Request().Context(), queries.NewListShippingRatesQuery())
	if err != nil {
		return err
	}

	out := make([]PublicShippingRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, toPublicRateResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) ListShippingRates(c echo.Context) error {
	rates, err := s.h.ListShippingRates.Handle(c.Request().Context(), queries.NewListShippingRatesQuery())
	if err != nil {
		return err
	}

	out := make([]ShippingRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, toRateViewResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) CreateShippingRate(c echo.Context) error {
	params, err := bindRateParams(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateShippingRateCommand(params)
	if err != nil {
		return err
	}
	rate, err := s.h.ShippingRates.HandleSave(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRateResponse(rate))
}

func (s *Server) UpdateShippingRate(c echo.Context) error {
	rateID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	params, err := bindRateParams(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShippingRateCommand(rateID, params)
	if err != nil {
		return err
	}
	rate, err := s.h.ShippingRates.HandleSave(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRateResponse(rate))
}

func (s *Server) DeleteShippingRate(c echo.Context) error {
	rateID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteShippingRateCommand(rateID)
	if err != nil {
		return err
	}
	if err := s.h.ShippingRates.HandleDelete(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindRateParams(c echo.Context) (shipping.RateParams, error) {
	var req ShippingRateRequest
	if err := c.Bind(&req); err != nil {
		return shipping.RateParams{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	carrier, carrierErr := shipping.ParseCarrier(req.Carrier)
	price, priceErr := parseMoney("price", req.Price)
	if err := errors.Join(carrierErr, priceErr); err != nil {
		return shipping.RateParams{}, err
	}

	return shipping.RateParams{
		Carrier:             carrier,
		LocationName:        req.LocationName,
		RegionCode:          req.RegionCode,
		Price:               price,
		IsCarrierDefault:    req.IsCarrierDefault,
		IsGlobalDefault:     req.IsGlobalDefault,
		AllowCashOnDelivery: req.AllowCashOnDelivery,
	}, nil
}

// Cart.

func (s *Server) GetCart(c echo.Context) error {
	identity, _ := identityFrom(c)

	query, err := queries.NewGetCartQuery(identity.UserID)
	if err != nil {
		return err
	}
	ct, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(ct))
}

func (s *Server) AddCartItem(c echo.Context) error {
	identity, _ := identityFrom(c)

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	id, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return badRequest("id", err)
	}
	kind := catalog.Kind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if kind == "" {
		kind = catalog.KindProduct
	}
	ref, err := catalog.NewRef(kind, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(identity.UserID, ref, req.Quantity)
	if err != nil {
		return err
	}
	ct, err := s.h.AddCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(ct))
}

func (s *Server) UpdateCartItem(c echo.Context) error {
	identity, _ := identityFrom(c)
	itemID, err := uuidParam(c, "itemId")
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemCommand(identity.UserID, itemID, req.Quantity)
	if err != nil {
		return err
	}
	ct, err := s.h.EditCart.HandleUpdate(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(ct))
}

func (s *Server) RemoveCartItem(c echo.Context) error {
	identity, _ := identityFrom(c)
	itemID, err := uuidParam(c, "itemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(identity.UserID, itemID)
	if err != nil {
		return err
	}
	ct, err := s.h.EditCart.HandleRemove(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(ct))
}

func (s *Server) ClearCart(c echo.Context) error {
	identity, _ := identityFrom(c)

	cmd, err := commands.NewClearCartCommand(identity.UserID)
	if err != nil {
		return err
	}
	ct, err := s.h.EditCart.HandleClear(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(ct))
}

// Helpers.

func badRequest(param string, cause error) error {
	return errs.NewValueIsInvalidErrorWithCause(param, cause)
}

func viewerFrom(c echo.Context) (queries.Viewer, error) {
	identity, ok := identityFrom(c)
	if !ok {
		return queries.Viewer{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return identity.Viewer()
}

func uuidParam(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, badRequest(name, err)
	}
	return id, nil
}

func intParam(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(name, err)
	}
	return n, nil
}
