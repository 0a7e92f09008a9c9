package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	confirmHandler        commands.ConfirmOrderCommandHandler
	archiveHandler        commands.ArchiveOrderCommandHandler
	markRespondedHandler  commands.MarkRespondedCommandHandler
	setStatusHandler      commands.SetStatusCommandHandler
	expediateHandler      commands.ExpediateOrderCommandHandler
	expediateBatchHandler commands.ExpediateBatchCommandHandler
	syncStatusesHandler   commands.SyncStatusesCommandHandler

	// Query handlers
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	confirmHandler commands.ConfirmOrderCommandHandler,
	archiveHandler commands.ArchiveOrderCommandHandler,
	markRespondedHandler commands.MarkRespondedCommandHandler,
	setStatusHandler commands.SetStatusCommandHandler,
	expediateHandler commands.ExpediateOrderCommandHandler,
	expediateBatchHandler commands.ExpediateBatchCommandHandler,
	syncStatusesHandler commands.SyncStatusesCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler,
) *Server {
	return &Server{
		confirmHandler:           confirmHandler,
		archiveHandler:           archiveHandler,
		markRespondedHandler:     markRespondedHandler,
		setStatusHandler:         setStatusHandler,
		expediateHandler:         expediateHandler,
		expediateBatchHandler:    expediateBatchHandler,
		syncStatusesHandler:      syncStatusesHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getArchivedOrdersHandler: getArchivedOrdersHandler,
	}
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context, params servers.GetActiveOrdersParams) error {
	var statusToken string
	if params.Status != nil {
		statusToken = *params.Status
	}

	page, pageSize := 0, 0
	if params.Page != nil {
		page = *params.Page
	}
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	query, err := queries.NewGetActiveOrdersQuery(statusToken, page, pageSize)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(rows))
	for i, row := range rows {
		response[i] = servers.Order{
			Id:             row.ID.Bytes(),
			CustomerName:   row.CustomerName,
			CustomerPhone:  row.CustomerPhone,
			Wilaya:         row.WilayaName,
			Commune:        row.CommuneName,
			Status:         row.Status,
			Responded:      row.Responded,
			Total:          row.Total,
			TrackingNumber: optionalString(row.TrackingNumber),
			EcotrackStatus: optionalString(row.EcotrackStatus),
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetArchivedOrders handles GET /api/v1/orders/archived.
func (s *Server) GetArchivedOrders(ctx echo.Context, params servers.GetArchivedOrdersParams) error {
	var reasonToken string
	if params.Reason != nil {
		reasonToken = *params.Reason
	}

	page, pageSize := 0, 0
	if params.Page != nil {
		page = *params.Page
	}
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	query, err := queries.NewGetArchivedOrdersQuery(reasonToken, page, pageSize)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rows, err := s.getArchivedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.ArchivedOrder, len(rows))
	for i, row := range rows {
		response[i] = servers.ArchivedOrder{
			Id:               row.ID.Bytes(),
			OriginalOrderId:  row.OriginalOrderID.Bytes(),
			CustomerName:     row.CustomerName,
			CustomerPhone:    row.CustomerPhone,
			Wilaya:           row.WilayaName,
			Commune:          row.CommuneName,
			StatusAtArchival: row.StatusAtArchival,
			Reason:           row.Reason,
			Notes:            optionalString(row.Notes),
			Total:            row.Total,
			ArchivedAt:       row.ArchivedAt,
			OrderCreatedAt:   row.OrderCreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.confirmHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// ArchiveOrder handles POST /api/v1/orders/{orderId}/archive. The reason in
// the body selects between client cancellation and the no-response queue.
func (s *Server) ArchiveOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ArchiveOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	actorID, err := actorFromContext(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	reason, err := order.ReasonFromString(body.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var notes string
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewArchiveOrderCommand(orderID, reason, notes, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	archived, err := s.archiveHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ArchivedOrder{
		Id:               archived.ID().Bytes(),
		OriginalOrderId:  archived.OriginalOrderID().Bytes(),
		CustomerName:     archived.CustomerName(),
		CustomerPhone:    archived.CustomerPhone(),
		Wilaya:           archived.WilayaName(),
		Commune:          archived.CommuneName(),
		StatusAtArchival: archived.StatusAtArchival().String(),
		Reason:           archived.Reason().String(),
		Notes:            optionalString(archived.Notes()),
		Total:            archived.Total().Amount(),
		ArchivedAt:       archived.ArchivedAt(),
		OrderCreatedAt:   archived.OrderCreatedAt(),
	})
}

// MarkOrderResponded handles PATCH /api/v1/orders/{orderId}/responded.
func (s *Server) MarkOrderResponded(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.MarkOrderRespondedJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkRespondedCommand(orderID, body.Responded)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.markRespondedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// SetOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) SetOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.SetOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetStatusCommand(orderID, body.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.setStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// ExpediateOrder handles POST /api/v1/orders/{orderId}/expediate.
func (s *Server) ExpediateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewExpediateOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	aggregate, err := s.expediateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// ExpediateOrders handles POST /api/v1/orders/expediate.
func (s *Server) ExpediateOrders(ctx echo.Context) error {
	var body servers.ExpediateOrdersJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderIDs := make([]kernel.UUID, 0, len(body.OrderIds))
	for _, raw := range body.OrderIds {
		orderID, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return errorResponse(ctx, err)
		}
		orderIDs = append(orderIDs, orderID)
	}

	cmd, err := commands.NewExpediateBatchCommand(orderIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.expediateBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	report := servers.ExpeditionReport{
		Successful: make([]servers.ExpeditedOrder, len(result.Successful)),
		Failed:     make([]servers.ExpeditionFailure, len(result.Failed)),
	}
	for i, success := range result.Successful {
		report.Successful[i] = servers.ExpeditedOrder{
			OrderId:        success.OrderID.Bytes(),
			CarrierOrderId: success.CarrierOrderID,
			TrackingNumber: success.TrackingNumber,
		}
	}
	for i, failure := range result.Failed {
		report.Failed[i] = servers.ExpeditionFailure{
			OrderId: failure.OrderID.Bytes(),
			Reason:  failure.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, report)
}

// SyncOrderStatuses handles POST /api/v1/orders/sync-statuses. An absent or
// empty body reconciles every in-flight order.
func (s *Server) SyncOrderStatuses(ctx echo.Context) error {
	var body servers.SyncOrderStatusesJSONRequestBody
	if ctx.Request().ContentLength > 0 {
		if err := ctx.Bind(&body); err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid request body",
			})
		}
	}

	var rawIDs []string
	if body.OrderIds != nil {
		rawIDs = make([]string, len(*body.OrderIds))
		for i, id := range *body.OrderIds {
			rawIDs[i] = id.String()
		}
	}

	cmd, err := commands.NewSyncStatusesCommand(rawIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.syncStatusesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	report := servers.SyncReport{
		Synced: make([]servers.SyncedOrder, len(result.Synced)),
		Failed: make([]servers.SyncFailure, len(result.Failed)),
	}
	for i, synced := range result.Synced {
		report.Synced[i] = servers.SyncedOrder{
			OrderId:        synced.OrderID.Bytes(),
			EcotrackStatus: synced.RawStatus,
			Status:         synced.Status.String(),
		}
	}
	for i, failure := range result.Failed {
		report.Failed[i] = servers.SyncFailure{
			OrderId: failure.OrderID.Bytes(),
			Reason:  failure.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, report)
}

func orderToResponse(aggregate *order.Order) servers.Order {
	return servers.Order{
		Id:             aggregate.ID().Bytes(),
		CustomerName:   aggregate.Customer().Name(),
		CustomerPhone:  aggregate.Customer().Phone(),
		Wilaya:         aggregate.Destination().WilayaName(),
		Commune:        aggregate.Destination().CommuneName(),
		Status:         aggregate.Status().String(),
		Responded:      aggregate.Responded(),
		Total:          aggregate.Total().Amount(),
		TrackingNumber: optionalString(aggregate.TrackingNumber()),
		EcotrackStatus: optionalString(aggregate.EcotrackStatus()),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
