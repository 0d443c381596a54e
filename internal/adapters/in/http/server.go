// Package http exposes the order lifecycle engine over a JSON API.
// It coordinates between HTTP handlers and application use cases; all
// behavior lives in the command and query handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP transport for handling order lifecycle requests.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	requestTransitionHandler commands.RequestTransitionCommandHandler
	setRackLocationHandler   commands.SetRackLocationCommandHandler

	// Query handlers
	getAllowedTransitionsHandler queries.GetAllowedTransitionsQueryHandler
	getOrderHistoryHandler       queries.GetOrderHistoryQueryHandler
	getWorkflowContextHandler    queries.GetWorkflowContextQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	requestTransitionHandler commands.RequestTransitionCommandHandler,
	setRackLocationHandler commands.SetRackLocationCommandHandler,
	getAllowedTransitionsHandler queries.GetAllowedTransitionsQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getWorkflowContextHandler queries.GetWorkflowContextQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		requestTransitionHandler:     requestTransitionHandler,
		setRackLocationHandler:       setRackLocationHandler,
		getAllowedTransitionsHandler: getAllowedTransitionsHandler,
		getOrderHistoryHandler:       getOrderHistoryHandler,
		getWorkflowContextHandler:    getWorkflowContextHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/transitions", s.RequestTransition)
	api.PUT("/orders/:id/rack-location", s.SetRackLocation)
	api.GET("/orders/:id/transitions/allowed", s.GetAllowedTransitions)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.GET("/tenants/:id/workflow-context", s.GetWorkflowContext)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	TenantID    string     `json:"tenant_id"`
	ItemsCount  int        `json:"items_count"`
	PiecesTotal int        `json:"pieces_total"`
	ReadyBy     *time.Time `json:"ready_by,omitempty"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type transitionRequest struct {
	Screen   string `json:"screen"`
	ToStatus string `json:"to_status"`
	Notes    string `json:"notes,omitempty"`
	ActorID  string `json:"actor_id"`
	Routing  string `json:"routing,omitempty"`
}

type transitionResponse struct {
	Success   bool     `json:"success"`
	NewStatus string   `json:"new_status,omitempty"`
	Blockers  []string `json:"blockers"`
}

type rackLocationRequest struct {
	RackLocation string `json:"rack_location"`
}

type historyEntryResponse struct {
	OccurredAt time.Time `json:"occurred_at"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Screen     string    `json:"screen"`
	Notes      string    `json:"notes,omitempty"`
	ActorID    string    `json:"actor_id"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new order at intake.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tenantID, err := kernel.UUIDFromString(req.TenantID)
	if err != nil {
		return badRequest(ctx, "Invalid tenant ID")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, tenantID, req.ItemsCount, req.PiecesTotal, req.ReadyBy)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

// RequestTransition handles POST /api/v1/orders/:id/transitions.
//
// A blocker failure is a successful request with success=false in the body;
// rejected transitions (unknown edge, wrong screen, terminal order, lost
// version race) map to 409 so the workstation refreshes its view.
func (s *Server) RequestTransition(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req transitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	toStatus, err := order.StatusFromString(req.ToStatus)
	if err != nil {
		return badRequest(ctx, "Unknown target status")
	}

	cmd, err := commands.NewRequestTransitionCommand(
		orderID,
		workflow.Screen(req.Screen),
		toStatus,
		req.Notes,
		req.ActorID,
		commands.RoutingHint(req.Routing),
	)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	result, err := s.requestTransitionHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrConflict):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Failed to execute transition")
	}

	resp := transitionResponse{
		Success:  result.Success,
		Blockers: result.Blockers,
	}
	if result.Success {
		resp.NewStatus = result.NewStatus.String()
	}
	return ctx.JSON(http.StatusOK, resp)
}

// SetRackLocation handles PUT /api/v1/orders/:id/rack-location.
func (s *Server) SetRackLocation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req rackLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetRackLocationCommand(orderID, req.RackLocation)
	if err != nil {
		return badRequest(ctx, "Invalid rack location: "+err.Error())
	}

	err = s.setRackLocationHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, order.ErrConflict), errors.Is(err, order.ErrTerminalState):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Failed to set rack location")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllowedTransitions handles GET /api/v1/orders/:id/transitions/allowed.
func (s *Server) GetAllowedTransitions(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetAllowedTransitionsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	targets, err := s.getAllowedTransitionsHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound(ctx, "Order not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to retrieve allowed transitions")
	}

	return ctx.JSON(http.StatusOK, targets)
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order history")
	}

	response := make([]historyEntryResponse, len(history))
	for i, entry := range history {
		response[i] = historyEntryResponse{
			OccurredAt: entry.OccurredAt,
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			Screen:     entry.Screen,
			Notes:      entry.Notes,
			ActorID:    entry.ActorID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkflowContext handles GET /api/v1/tenants/:id/workflow-context.
func (s *Server) GetWorkflowContext(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant ID")
	}

	query, err := queries.NewGetWorkflowContextQuery(tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid tenant ID")
	}

	context, err := s.getWorkflowContextHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve workflow context")
	}

	return ctx.JSON(http.StatusOK, context)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, errorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
