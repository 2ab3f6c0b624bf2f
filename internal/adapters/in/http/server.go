// Package http exposes the bakery use cases over a REST API built on Echo.
// Request and response shapes are defined here; the package contains no
// business logic beyond translating between JSON and commands/queries.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

const dateLayout = "2006-01-02"
const timeLayout = "15:04"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one product line of a new order.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Comment   string `json:"comment,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderedBy        string             `json:"orderedBy"`
	CustomerName     string             `json:"customerName"`
	CustomerPhone    string             `json:"customerPhone"`
	CustomerDetails  string             `json:"customerDetails,omitempty"`
	PickupLocationID string             `json:"pickupLocationId"`
	DueDate          string             `json:"dueDate"`
	DueTime          string             `json:"dueTime"`
	Items            []OrderItemRequest `json:"items"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeOrderStateRequest is the body of POST /api/v1/orders/:id/state.
type ChangeOrderStateRequest struct {
	ActorID  string `json:"actorId"`
	NewState string `json:"newState"`
	Comment  string `json:"comment,omitempty"`
}

// AddOrderCommentRequest is the body of POST /api/v1/orders/:id/comments.
type AddOrderCommentRequest struct {
	ActorID string `json:"actorId"`
	Message string `json:"message"`
}

// DueOrderResponse is one row of the day's work list.
type DueOrderResponse struct {
	ID                 string `json:"id"`
	CustomerName       string `json:"customerName"`
	CustomerPhone      string `json:"customerPhone"`
	DueTime            string `json:"dueTime"`
	Status             string `json:"status"`
	PickupLocationName string `json:"pickupLocationName"`
}

// DeliveryStatsResponse carries the dashboard counters.
type DeliveryStatsResponse struct {
	DeliveredToday    int `json:"deliveredToday"`
	DueToday          int `json:"dueToday"`
	DueTomorrow       int `json:"dueTomorrow"`
	NotAvailableToday int `json:"notAvailableToday"`
	NewOrders         int `json:"newOrders"`
}

// Server translates HTTP requests into application use cases.
type Server struct {
	createOrderHandler      commands.CreateOrderCommandHandler
	changeOrderStateHandler commands.ChangeOrderStateCommandHandler
	addOrderCommentHandler  commands.AddOrderCommentCommandHandler

	getOrdersDueHandler     queries.GetOrdersDueQueryHandler
	getDeliveryStatsHandler queries.GetDeliveryStatsQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStateHandler commands.ChangeOrderStateCommandHandler,
	addOrderCommentHandler commands.AddOrderCommentCommandHandler,
	getOrdersDueHandler queries.GetOrdersDueQueryHandler,
	getDeliveryStatsHandler queries.GetDeliveryStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		changeOrderStateHandler: changeOrderStateHandler,
		addOrderCommentHandler:  addOrderCommentHandler,
		getOrdersDueHandler:     getOrdersDueHandler,
		getDeliveryStatsHandler: getDeliveryStatsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/orders", s.GetOrdersDue)
	e.GET("/api/v1/dashboard/delivery-stats", s.GetDeliveryStats)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.POST("/api/v1/orders/:id/state", s.ChangeOrderState)
	e.POST("/api/v1/orders/:id/comments", s.AddOrderComment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrdersDue handles GET /api/v1/orders?due=YYYY-MM-DD, returning the work
// list for the given day sorted by due time.
func (s *Server) GetOrdersDue(ctx echo.Context) error {
	day, err := time.Parse(dateLayout, ctx.QueryParam("due"))
	if err != nil {
		return badRequest(ctx, "Invalid or missing due date, expected YYYY-MM-DD")
	}

	query, err := queries.NewGetOrdersDueQuery(day)
	if err != nil {
		return badRequest(ctx, "Invalid due date: "+err.Error())
	}

	dueOrders, err := s.getOrdersDueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]DueOrderResponse, len(dueOrders))
	for i, dueOrder := range dueOrders {
		response[i] = DueOrderResponse{
			ID:                 dueOrder.ID.String(),
			CustomerName:       dueOrder.CustomerFullName,
			CustomerPhone:      dueOrder.CustomerPhone,
			DueTime:            dueOrder.DueTime.String(),
			Status:             dueOrder.Status.String(),
			PickupLocationName: dueOrder.PickupLocationName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryStats handles GET /api/v1/dashboard/delivery-stats, computing the
// dashboard counters relative to the server's current date.
func (s *Server) GetDeliveryStats(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryStatsQuery(time.Now())
	if err != nil {
		return internalError(ctx, "Failed to build stats query")
	}

	stats, err := s.getDeliveryStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve delivery stats")
	}

	return ctx.JSON(http.StatusOK, DeliveryStatsResponse{
		DeliveredToday:    stats.DeliveredToday,
		DueToday:          stats.DueToday,
		DueTomorrow:       stats.DueTomorrow,
		NotAvailableToday: stats.NotAvailableToday,
		NewOrders:         stats.NewOrders,
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := s.buildCreateOrderCommand(request)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: cmd.OrderID().String()})
}

// ChangeOrderState handles POST /api/v1/orders/:id/state.
func (s *Server) ChangeOrderState(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request ChangeOrderStateRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID")
	}

	newState, err := order.StatusFromString(request.NewState)
	if err != nil {
		return badRequest(ctx, "Invalid state: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStateCommand(orderID, actorID, newState, request.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid state change: "+err.Error())
	}

	if handleErr := s.changeOrderStateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to change order state")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderComment handles POST /api/v1/orders/:id/comments.
func (s *Server) AddOrderComment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request AddOrderCommentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(request.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID")
	}

	cmd, err := commands.NewAddOrderCommentCommand(orderID, actorID, request.Message)
	if err != nil {
		return badRequest(ctx, "Invalid comment: "+err.Error())
	}

	if handleErr := s.addOrderCommentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to add comment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) buildCreateOrderCommand(request CreateOrderRequest) (commands.CreateOrderCommand, error) {
	orderedBy, err := kernel.UUIDFromString(request.OrderedBy)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	pickupLocationID, err := kernel.UUIDFromString(request.PickupLocationID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	customer, err := order.NewCustomer(request.CustomerName, request.CustomerPhone, request.CustomerDetails)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	dueDate, err := time.Parse(dateLayout, request.DueDate)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	parsedTime, err := time.Parse(timeLayout, request.DueTime)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	dueTime, err := kernel.NewTimeOfDay(parsedTime.Hour(), parsedTime.Minute())
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]order.OrderItem, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		productID, itemErr := kernel.UUIDFromString(itemRequest.ProductID)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		item, itemErr := order.NewOrderItem(productID, itemRequest.Quantity, itemRequest.Comment)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}
		items = append(items, item)
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(), orderedBy, customer, pickupLocationID, dueDate, dueTime, items)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func commandError(ctx echo.Context, err error, message string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	return internalError(ctx, message)
}
