// Package http exposes the shipment lifecycle over a REST API.
// Handlers translate requests into commands and queries; every route is
// tenant-scoped through the X-Tenant-ID header.
package http

import (
	"errors"
	"net/http"
	"time"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/domain/model/stop"
	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// TenantHeader carries the calling tenant's identifier on every request.
const TenantHeader = "X-Tenant-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	dispatchOrderHandler      commands.DispatchOrderCommandHandler
	createLoadHandler         commands.CreateLoadCommandHandler
	updateLoadHandler         commands.UpdateLoadCommandHandler
	assignCarrierHandler      commands.AssignCarrierCommandHandler
	dispatchLoadHandler       commands.DispatchLoadCommandHandler
	updateLoadLocationHandler commands.UpdateLoadLocationCommandHandler
	addCheckCallHandler       commands.AddCheckCallCommandHandler
	deleteLoadHandler         commands.DeleteLoadCommandHandler
	createStopHandler         commands.CreateStopCommandHandler
	markStopArrivedHandler    commands.MarkStopArrivedCommandHandler
	markStopDepartedHandler   commands.MarkStopDepartedCommandHandler
	reorderStopsHandler       commands.ReorderStopsCommandHandler
	deleteStopHandler         commands.DeleteStopCommandHandler

	// Query handlers
	getOrderHistoryHandler       queries.GetOrderHistoryQueryHandler
	getLoadCheckCallsHandler     queries.GetLoadCheckCallsQueryHandler
	getStaleTrackingLoadsHandler queries.GetStaleTrackingLoadsQueryHandler
}

// Handlers bundles every use case the server exposes.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrder        commands.UpdateOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	DispatchOrder      commands.DispatchOrderCommandHandler
	CreateLoad         commands.CreateLoadCommandHandler
	UpdateLoad         commands.UpdateLoadCommandHandler
	AssignCarrier      commands.AssignCarrierCommandHandler
	DispatchLoad       commands.DispatchLoadCommandHandler
	UpdateLoadLocation commands.UpdateLoadLocationCommandHandler
	AddCheckCall       commands.AddCheckCallCommandHandler
	DeleteLoad         commands.DeleteLoadCommandHandler
	CreateStop         commands.CreateStopCommandHandler
	MarkStopArrived    commands.MarkStopArrivedCommandHandler
	MarkStopDeparted   commands.MarkStopDepartedCommandHandler
	ReorderStops       commands.ReorderStopsCommandHandler
	DeleteStop         commands.DeleteStopCommandHandler

	GetOrderHistory       queries.GetOrderHistoryQueryHandler
	GetLoadCheckCalls     queries.GetLoadCheckCallsQueryHandler
	GetStaleTrackingLoads queries.GetStaleTrackingLoadsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createOrderHandler:           handlers.CreateOrder,
		updateOrderHandler:           handlers.UpdateOrder,
		cancelOrderHandler:           handlers.CancelOrder,
		deleteOrderHandler:           handlers.DeleteOrder,
		dispatchOrderHandler:         handlers.DispatchOrder,
		createLoadHandler:            handlers.CreateLoad,
		updateLoadHandler:            handlers.UpdateLoad,
		assignCarrierHandler:         handlers.AssignCarrier,
		dispatchLoadHandler:          handlers.DispatchLoad,
		updateLoadLocationHandler:    handlers.UpdateLoadLocation,
		addCheckCallHandler:          handlers.AddCheckCall,
		deleteLoadHandler:            handlers.DeleteLoad,
		createStopHandler:            handlers.CreateStop,
		markStopArrivedHandler:       handlers.MarkStopArrived,
		markStopDepartedHandler:      handlers.MarkStopDeparted,
		reorderStopsHandler:          handlers.ReorderStops,
		deleteStopHandler:            handlers.DeleteStop,
		getOrderHistoryHandler:       handlers.GetOrderHistory,
		getLoadCheckCallsHandler:     handlers.GetLoadCheckCalls,
		getStaleTrackingLoadsHandler: handlers.GetStaleTrackingLoads,
	}
}

// RegisterRoutes binds every handler to its route on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:orderID", s.UpdateOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/dispatch", s.DispatchOrder)
	api.DELETE("/orders/:orderID", s.DeleteOrder)
	api.GET("/orders/:orderID/history", s.GetOrderHistory)

	api.POST("/orders/:orderID/stops", s.CreateStop)
	api.PUT("/orders/:orderID/stops/sequence", s.ReorderStops)
	api.POST("/stops/:stopID/arrive", s.MarkStopArrived)
	api.POST("/stops/:stopID/depart", s.MarkStopDeparted)
	api.DELETE("/stops/:stopID", s.DeleteStop)

	api.POST("/orders/:orderID/loads", s.CreateLoad)
	api.PATCH("/loads/:loadID", s.UpdateLoad)
	api.POST("/loads/:loadID/assign", s.AssignCarrier)
	api.POST("/loads/:loadID/dispatch", s.DispatchLoad)
	api.POST("/loads/:loadID/location", s.UpdateLoadLocation)
	api.POST("/loads/:loadID/check-calls", s.AddCheckCall)
	api.GET("/loads/:loadID/check-calls", s.GetLoadCheckCalls)
	api.DELETE("/loads/:loadID", s.DeleteLoad)

	api.GET("/loads/stale-tracking", s.GetStaleTrackingLoads)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	stops := make([]commands.StopInput, 0, len(req.Stops))
	for _, in := range req.Stops {
		stopType, typeErr := stop.ParseType(in.Type)
		if typeErr != nil {
			return badRequest(ctx, "Invalid stop type: "+in.Type)
		}
		stops = append(stops, commands.StopInput{
			StopID:   kernel.NewUUID(),
			StopType: stopType,
			Address:  in.Address,
			City:     in.City,
			State:    in.State,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, tenantID, customerID,
		req.Rate, req.FuelSurcharge, req.Accessorials,
		req.CustomFields,
		stops,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// UpdateOrder handles PATCH /api/v1/orders/:orderID.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		value := order.Status(*req.Status)
		status = &value
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, tenantID,
		status,
		req.Rate, req.FuelSurcharge, req.Accessorials,
		req.CustomFields,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, tenantID, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancel request: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:orderID/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid dispatch request: "+err.Error())
	}

	if handleErr := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderHistory handles GET /api/v1/orders/:orderID/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid history request: "+err.Error())
	}

	records, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]HistoryEntry, len(records))
	for i, record := range records {
		response[i] = HistoryEntry{
			EntityType: record.EntityType,
			EntityID:   record.EntityID.String(),
			OldStatus:  record.OldStatus,
			NewStatus:  record.NewStatus,
			Notes:      record.Notes,
			OccurredAt: record.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStop handles POST /api/v1/orders/:orderID/stops.
func (s *Server) CreateStop(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req CreateStopRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stopType, err := stop.ParseType(req.Type)
	if err != nil {
		return badRequest(ctx, "Invalid stop type: "+req.Type)
	}

	stopID := kernel.NewUUID()
	cmd, err := commands.NewCreateStopCommand(
		stopID, tenantID, orderID,
		stopType, req.Sequence,
		req.Address, req.City, req.State,
	)
	if err != nil {
		return badRequest(ctx, "Invalid stop data: "+err.Error())
	}

	if handleErr := s.createStopHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: stopID.String()})
}

// ReorderStops handles PUT /api/v1/orders/:orderID/stops/sequence.
func (s *Server) ReorderStops(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req ReorderStopsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stopIDs := make([]kernel.UUID, 0, len(req.StopIDs))
	for _, raw := range req.StopIDs {
		stopID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid stop id: "+raw)
		}
		stopIDs = append(stopIDs, stopID)
	}

	cmd, err := commands.NewReorderStopsCommand(orderID, tenantID, stopIDs)
	if err != nil {
		return badRequest(ctx, "Invalid reorder request: "+err.Error())
	}

	if handleErr := s.reorderStopsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkStopArrived handles POST /api/v1/stops/:stopID/arrive.
func (s *Server) MarkStopArrived(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	stopID, err := pathUUID(ctx, "stopID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkStopArrivedCommand(stopID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid arrival request: "+err.Error())
	}

	if handleErr := s.markStopArrivedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkStopDeparted handles POST /api/v1/stops/:stopID/depart.
func (s *Server) MarkStopDeparted(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	stopID, err := pathUUID(ctx, "stopID")
	if err != nil {
		return err
	}

	var req MarkStopDepartedRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkStopDepartedCommand(stopID, tenantID, req.SignedBy, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid departure request: "+err.Error())
	}

	if handleErr := s.markStopDepartedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteStop handles DELETE /api/v1/stops/:stopID.
func (s *Server) DeleteStop(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	stopID, err := pathUUID(ctx, "stopID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteStopCommand(stopID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if handleErr := s.deleteStopHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateLoad handles POST /api/v1/orders/:orderID/loads.
func (s *Server) CreateLoad(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return err
	}

	loadID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(loadID, tenantID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid load data: "+err.Error())
	}

	if handleErr := s.createLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: loadID.String()})
}

// UpdateLoad handles PATCH /api/v1/loads/:loadID.
func (s *Server) UpdateLoad(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	loadID, err := pathUUID(ctx, "loadID")
	if err != nil {
		return err
	}

	var req UpdateLoadRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *load.Status
	if req.Status != nil {
		value := load.Status(*req.Status)
		status = &value
	}

	cmd, err := commands.NewUpdateLoadCommand(
		loadID, tenantID,
		status,
		req.DriverName, req.DriverPhone, req.EquipmentType,
	)
	if err != nil {
		return badRequest(ctx, "Invalid load data: "+err.Error())
	}

	if handleErr := s.updateLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCarrier handles POST /api/v1/loads/:loadID/assign.
func (s *Server) AssignCarrier(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	loadID, err := pathUUID(ctx, "loadID")
	if err != nil {
		return err
	}

	var req AssignCarrierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	cmd, err := commands.NewAssignCarrierCommand(
		loadID, tenantID, carrierID,
		req.DriverName, req.DriverPhone, req.EquipmentType,
	)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignCarrierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchLoad handles POST /api/v1/loads/:loadID/dispatch.
func (s *Server) DispatchLoad(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	loadID, err := pathUUID(ctx, "loadID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDispatchLoadCommand(loadID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid dispatch request: "+err.Error())
	}

	if handleErr := s.dispatchLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLoadLocation handles POST /api/v1/loads/:loadID/location.
func (s *Server) UpdateLoadLocation(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	loadID, err := pathUUID(ctx, "loadID")
	if err != nil {
		return err
	}

	var req UpdateLoadLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	position, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates")
	}

	cmd, err := commands.NewUpdateLoadLocationCommand(
		loadID, tenantID,
		position,
		req.City, req.State,
		req.ETA,
	)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if handleErr := s.updateLoadLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCheckCall handles POST /api/v1/loads/:loadID/check-calls.
func (s *Server) AddCheckCall(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	loadID, err := pathUUID(ctx, "loadID")
	if err != nil {
		return err
	}

	var req AddCheckCallRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	position, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates")
	}

	var calledAt time.Time
	if req.CalledAt != nil {
		calledAt = *req.CalledAt
	}

	checkCallID := kernel.NewUUID()
	cmd, err := commands.NewAddCheckCallCommand(
		checkCallID, loadID, tenantID,
		position,
		req.City, req.State, req.StatusNote, req.Notes,
		req.ETA,
		calledAt,
	)
	if err != nil {
		return badRequest(ctx, "Invalid check call data: "+err.Error())
	}

	if handleErr := s.addCheckCallHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: checkCallID.String()})
}

// GetLoadCheckCalls handles GET /api/v1/loads/:loadID/check-calls.
func (s *Server) GetLoadCheckCalls(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	loadID, err := pathUUID(ctx, "loadID")
	if err != nil {
		return err
	}

	query, err := queries.NewGetLoadCheckCallsQuery(loadID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid check call request: "+err.Error())
	}

	calls, err := s.getLoadCheckCallsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CheckCallEntry, len(calls))
	for i, call := range calls {
		response[i] = CheckCallEntry{
			ID:         call.ID.String(),
			Lat:        call.Lat,
			Lng:        call.Lng,
			City:       call.City,
			State:      call.State,
			StatusNote: call.StatusNote,
			Notes:      call.Notes,
			ETA:        call.ETA,
			CalledAt:   call.CalledAt,
			RecordedAt: call.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteLoad handles DELETE /api/v1/loads/:loadID.
func (s *Server) DeleteLoad(ctx echo.Context) error {
	tenantID, err := tenantFromRequest(ctx)
	if err != nil {
		return err
	}
	loadID, err := pathUUID(ctx, "loadID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteLoadCommand(loadID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if handleErr := s.deleteLoadHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStaleTrackingLoads handles GET /api/v1/loads/stale-tracking.
// The staleness window in hours is passed as ?hours=, defaulting to 4.
func (s *Server) GetStaleTrackingLoads(ctx echo.Context) error {
	hours := 4
	if raw := ctx.QueryParam("hours"); raw != "" {
		parsed, parseErr := parsePositiveInt(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid hours parameter")
		}
		hours = parsed
	}

	cutoff := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	query, err := queries.NewGetStaleTrackingLoadsQuery(cutoff)
	if err != nil {
		return badRequest(ctx, "Invalid stale tracking request: "+err.Error())
	}

	loads, err := s.getStaleTrackingLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]StaleTrackingEntry, len(loads))
	for i, staleLoad := range loads {
		response[i] = StaleTrackingEntry{
			LoadID:             staleLoad.LoadID.String(),
			TenantID:           staleLoad.TenantID.String(),
			LoadNumber:         staleLoad.LoadNumber,
			Status:             staleLoad.Status,
			LastTrackingUpdate: staleLoad.LastTrackingUpdate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// tenantFromRequest extracts and validates the tenant header. A missing or
// malformed header aborts the request with a 400 response.
func tenantFromRequest(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(TenantHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Missing "+TenantHeader+" header")
	}

	tenantID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+TenantHeader+" header")
	}

	return tenantID, nil
}

// pathUUID parses a UUID path parameter, aborting with a 400 response.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}

	return id, nil
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain and application errors to HTTP status codes:
// missing aggregates become 404, lifecycle conflicts 409, bad input 400,
// anything else 500.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrStatusTransitionNotAllowed):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
