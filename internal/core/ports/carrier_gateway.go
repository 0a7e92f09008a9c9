package ports

import (
	"context"
)

// ShipmentRequest is the carrier-facing projection of a confirmed order.
// Reference is a caller-supplied key (the order id) that the gateway echoes
// back in batch results so outcomes can be matched to orders.
type ShipmentRequest struct {
	Reference     string
	CustomerName  string
	CustomerPhone string
	Address       string
	CommuneName   string
	WilayaZone    int
	DeskDelivery  bool
	Amount        float64
	ProductList   string
}

// TrackingResult is the carrier's answer to a successful shipment submission.
type TrackingResult struct {
	CarrierOrderID string
	TrackingNumber string
}

// BatchEntry is one per-reference outcome of a batch submission. Exactly one
// of Tracking or ErrorPayload is meaningful: a present tracking value means
// the shipment was accepted; otherwise ErrorPayload carries the gateway's
// error for that order verbatim, without interpretation.
type BatchEntry struct {
	Tracking     *TrackingResult
	ErrorPayload string
}

// StatusReport is one carrier-side status observation for an in-flight shipment.
type StatusReport struct {
	CarrierOrderID string
	RawStatus      string
}

// CarrierGateway is the contract the core consumes from the external delivery
// carrier. Wire format, authentication, and rate limiting belong to the
// implementing adapter, not to this interface. Implementations must surface
// timeouts and transport failures as errs.ErrExternalService, never as a
// silent success.
type CarrierGateway interface {
	// SubmitShipment hands one order to the carrier and returns tracking data.
	SubmitShipment(ctx context.Context, request ShipmentRequest) (TrackingResult, error)

	// SubmitShipmentBatch hands several orders to the carrier in one call.
	// The result is keyed by each request's Reference; per-order failures are
	// reported in the map, while a transport-level failure fails the whole call.
	SubmitShipmentBatch(ctx context.Context, requests []ShipmentRequest) (map[string]BatchEntry, error)

	// FetchStatuses returns the carrier's current status for each given
	// carrier order id. Unknown ids are simply absent from the result.
	FetchStatuses(ctx context.Context, carrierOrderIDs []string) ([]StatusReport, error)
}
