// Package http provides the inbound HTTP adapter: an echo server exposing
// the delivery lifecycle, JWT authentication, and the uniform response
// envelope. Handlers translate between HTTP and application use cases and
// hold no business rules of their own.
package http

import (
	"net/http"

	"tradlogistics/internal/core/application/usecases/commands"
	"tradlogistics/internal/core/application/usecases/queries"
	"tradlogistics/internal/core/domain/model/account"
	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler       commands.CreateDeliveryCommandHandler
	editDeliveryHandler         commands.EditDeliveryCommandHandler
	removeDeliveryHandler       commands.RemoveDeliveryCommandHandler
	startSearchingHandler       commands.StartSearchingCommandHandler
	cancelDeliveryHandler       commands.CancelDeliveryCommandHandler
	acceptDeliveryHandler       commands.AcceptDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	rateDeliveryHandler         commands.RateDeliveryCommandHandler
	tipDeliveryHandler          commands.TipDeliveryCommandHandler

	// Query handlers
	getCustomerDeliveriesHandler  queries.GetCustomerDeliveriesQueryHandler
	getDeliveryHandler            queries.GetDeliveryQueryHandler
	getAvailableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	editDeliveryHandler commands.EditDeliveryCommandHandler,
	removeDeliveryHandler commands.RemoveDeliveryCommandHandler,
	startSearchingHandler commands.StartSearchingCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	rateDeliveryHandler commands.RateDeliveryCommandHandler,
	tipDeliveryHandler commands.TipDeliveryCommandHandler,
	getCustomerDeliveriesHandler queries.GetCustomerDeliveriesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getAvailableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:         createDeliveryHandler,
		editDeliveryHandler:           editDeliveryHandler,
		removeDeliveryHandler:         removeDeliveryHandler,
		startSearchingHandler:         startSearchingHandler,
		cancelDeliveryHandler:         cancelDeliveryHandler,
		acceptDeliveryHandler:         acceptDeliveryHandler,
		updateDeliveryStatusHandler:   updateDeliveryStatusHandler,
		rateDeliveryHandler:           rateDeliveryHandler,
		tipDeliveryHandler:            tipDeliveryHandler,
		getCustomerDeliveriesHandler:  getCustomerDeliveriesHandler,
		getDeliveryHandler:            getDeliveryHandler,
		getAvailableDeliveriesHandler: getAvailableDeliveriesHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance. All routes
// require an authenticated principal.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1", auth)

	deliveries := api.Group("/deliveries")
	deliveries.POST("", s.CreateDelivery)
	deliveries.GET("", s.GetCustomerDeliveries)
	deliveries.GET("/:id", s.GetDelivery)
	deliveries.PATCH("/:id", s.EditDelivery)
	deliveries.DELETE("/:id", s.RemoveDelivery)
	deliveries.POST("/:id/search-driver", s.StartSearching)
	deliveries.POST("/:id/cancel", s.CancelDelivery)
	deliveries.POST("/:id/rate", s.RateDelivery)
	deliveries.POST("/:id/tip", s.TipDelivery)

	driver := api.Group("/driver/deliveries")
	driver.GET("/available", s.GetAvailableDeliveries)
	driver.POST("/:id/accept", s.AcceptDelivery)
	driver.POST("/:id/status", s.UpdateDeliveryStatus)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	var body deliveryRequestBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, principal.AccountID, body.toRequestParams())
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.createDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return respondSuccess(c, http.StatusCreated, "delivery created",
		map[string]string{"id": deliveryID.String()})
}

// GetCustomerDeliveries handles GET /api/v1/deliveries.
func (s *Server) GetCustomerDeliveries(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	query, err := queries.NewGetCustomerDeliveriesQuery(principal.AccountID)
	if err != nil {
		return respondDomainError(c, err)
	}

	deliveries, err := s.getCustomerDeliveriesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "", deliveries)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID, principal.AccountID)
	if err != nil {
		return respondDomainError(c, err)
	}

	response, err := s.getDeliveryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "", response)
}

// EditDelivery handles PATCH /api/v1/deliveries/:id.
func (s *Server) EditDelivery(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	var body deliveryRequestBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewEditDeliveryCommand(deliveryID, principal.AccountID, body.toRequestParams())
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.editDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "delivery updated", nil)
}

// RemoveDelivery handles DELETE /api/v1/deliveries/:id.
func (s *Server) RemoveDelivery(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	cmd, err := commands.NewRemoveDeliveryCommand(deliveryID, principal.AccountID)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.removeDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "delivery removed", nil)
}

// StartSearching handles POST /api/v1/deliveries/:id/search-driver.
func (s *Server) StartSearching(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	cmd, err := commands.NewStartSearchingCommand(deliveryID, principal.AccountID)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.startSearchingHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	metrics.RecordDeliveryTransition(delivery.StatusSearching.String())
	return respondSuccess(c, http.StatusOK, "driver search started", nil)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel.
func (s *Server) CancelDelivery(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, principal.AccountID)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.cancelDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	metrics.RecordDeliveryTransition(delivery.StatusCancelled.String())
	return respondSuccess(c, http.StatusOK, "delivery cancelled", nil)
}

// RateDelivery handles POST /api/v1/deliveries/:id/rate.
func (s *Server) RateDelivery(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	var body rateRequestBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRateDeliveryCommand(deliveryID, principal.AccountID, body.Value, body.Review)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.rateDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return respondSuccess(c, http.StatusCreated, "rating recorded", nil)
}

// TipDelivery handles POST /api/v1/deliveries/:id/tip.
func (s *Server) TipDelivery(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	var body tipRequestBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewTipDeliveryCommand(deliveryID, principal.AccountID, body.Amount)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.tipDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	return respondSuccess(c, http.StatusCreated, "tip recorded", nil)
}

// GetAvailableDeliveries handles GET /api/v1/driver/deliveries/available.
// Only drivers can browse the open delivery pool.
func (s *Server) GetAvailableDeliveries(c echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}
	if principal.Role != account.RoleDriver.String() {
		return respondError(c, http.StatusForbidden, "only drivers can browse available deliveries")
	}

	query := queries.NewGetAvailableDeliveriesQuery()
	deliveries, err := s.getAvailableDeliveriesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondDomainError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "", deliveries)
}

// AcceptDelivery handles POST /api/v1/driver/deliveries/:id/accept.
func (s *Server) AcceptDelivery(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, principal.AccountID)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.acceptDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	metrics.RecordDeliveryTransition(delivery.StatusDriverAssigned.String())
	return respondSuccess(c, http.StatusOK, "delivery accepted", nil)
}

// UpdateDeliveryStatus handles POST /api/v1/driver/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	principal, deliveryID, ok := s.authenticatedTarget(c)
	if !ok {
		return nil
	}

	var body statusRequestBody
	if err := c.Bind(&body); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, principal.AccountID, body.Status)
	if err != nil {
		return respondDomainError(c, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondDomainError(c, err)
	}

	metrics.RecordDeliveryTransition(body.Status)
	return respondSuccess(c, http.StatusOK, "delivery status updated", nil)
}

// authenticatedTarget resolves the caller's principal and the :id path
// parameter. On failure it writes the error response itself and reports
// ok = false.
func (s *Server) authenticatedTarget(c echo.Context) (Principal, kernel.UUID, bool) {
	principal, found := principalFrom(c)
	if !found {
		_ = respondError(c, http.StatusUnauthorized, "authentication required")
		return Principal{}, kernel.UUID{}, false
	}

	deliveryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		_ = respondError(c, http.StatusBadRequest, "invalid delivery id")
		return Principal{}, kernel.UUID{}, false
	}

	return principal, deliveryID, true
}
