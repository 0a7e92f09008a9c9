package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ExpediateOrderCommandHandler is the single-order expedition orchestrator.
// It validates every precondition before the network call, submits the order
// to the carrier gateway, and records the returned tracking data.
//
// Preconditions checked in the domain: status confirmed, no existing carrier
// order id (re-expediting fails with order.ErrAlreadyExpediated and leaves
// tracking fields untouched), destination wilaya mapped to a carrier zone
// (else order.ErrMissingCarrierMapping).
type ExpediateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.CarrierGateway
}

// NewExpediateOrderCommandHandler creates the expedition handler.
func NewExpediateOrderCommandHandler(uowFactory OrderUoWFactory, gateway ports.CarrierGateway) ExpediateOrderCommandHandler {
	return ExpediateOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle submits the order to the carrier and returns the updated aggregate,
// now in sent status with tracking data recorded.
func (h ExpediateOrderCommandHandler) Handle(ctx context.Context, cmd ExpediateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// Load and precondition checks run outside any transaction so no DB
	// transaction is held open across the carrier call.
	aggregate, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.CanExpediate(); err != nil {
		return nil, err
	}

	tracking, err := h.gateway.SubmitShipment(ctx, buildShipmentRequest(aggregate))
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkExpediated(tracking.CarrierOrderID, tracking.TrackingNumber, time.Now().UTC()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// buildShipmentRequest projects an order into the carrier-facing shape.
// The order id doubles as the batch reference the gateway echoes back.
func buildShipmentRequest(aggregate *order.Order) ports.ShipmentRequest {
	products := make([]string, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		products = append(products, fmt.Sprintf("%s x%d", item.Name(), item.Quantity()))
	}

	return ports.ShipmentRequest{
		Reference:     aggregate.ID().String(),
		CustomerName:  aggregate.Customer().Name(),
		CustomerPhone: aggregate.Customer().Phone(),
		Address:       aggregate.Destination().Address(),
		CommuneName:   aggregate.Destination().CommuneName(),
		WilayaZone:    aggregate.Destination().CarrierZone(),
		DeskDelivery:  aggregate.Destination().Mode() == order.DeliveryDesk,
		Amount:        aggregate.Total().Amount(),
		ProductList:   strings.Join(products, ", "),
	}
}
