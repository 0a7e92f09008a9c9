package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// CarrierStatusPending is the raw carrier status recorded at expedition time,
// before the first reconciliation pulls a real value from the carrier.
const CarrierStatusPending = "en_preparation"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without line items.
	ErrOrderHasNoItems = errors.New("order must have at least one line item")

	// ErrAlreadyExpediated is returned when expedition is requested for an order
	// that already carries a carrier order id. Tracking fields are left untouched.
	ErrAlreadyExpediated = errors.New("order is already expediated")

	// ErrMissingCarrierMapping is returned when the destination wilaya carries no
	// carrier-recognized zone code, making expedition impossible.
	ErrMissingCarrierMapping = errors.New("destination has no carrier mapping")
)

// Order is the aggregate root for one customer purchase moving through the
// fulfillment pipeline. It owns its line items and enforces the lifecycle
// rules: fulfillment transitions, the money invariant (total = subtotal +
// shipping cost), the expedition idempotency guard, and the first-write-wins
// policy for carrier-reported milestone dates.
//
// Termination is a two-sided fact: the Archival Coordinator snapshots the
// order into the archive and, in the same transaction, marks this aggregate
// cancelled through Cancel. The live cancelled row is a cheap status marker;
// the archive is the historical source of truth.
type Order struct {
	id          kernel.UUID
	customer    Customer
	destination Destination
	items       []*Item
	payment     Payment

	subtotal     kernel.Money
	shippingCost kernel.Money
	total        kernel.Money

	status    Status
	responded bool

	confirmedBy  *kernel.UUID
	confirmedAt  *time.Time
	expediatedAt *time.Time
	shippedAt    *time.Time
	deliveredAt  *time.Time
	returnedAt   *time.Time

	cancellation *Cancellation

	carrierOrderID string
	trackingNumber string
	ecotrackStatus string

	version   int
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new order in pending status from checkout data.
// The subtotal is computed from the line items and the total from subtotal
// plus shipping cost, so the money invariant holds by construction.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	destination Destination,
	items []*Item,
	payment Payment,
	shippingCost kernel.Money,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	if err := payment.Method().Validate(); err != nil {
		return nil, err
	}
	if err := payment.Status().Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	subtotal := kernel.Zero()
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return &Order{
		id:            id,
		customer:      customer,
		destination:   destination,
		items:         items,
		payment:       payment,
		subtotal:      subtotal,
		shippingCost:  shippingCost,
		total:         subtotal.Add(shippingCost),
		status:        Pending,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrderParams carries the persisted state of an order for RestoreOrder.
type RestoreOrderParams struct {
	ID           kernel.UUID
	Customer     Customer
	Destination  Destination
	Items        []*Item
	Payment      Payment
	ShippingCost kernel.Money
	Status       Status
	Responded    bool

	ConfirmedBy  *kernel.UUID
	ConfirmedAt  *time.Time
	ExpediatedAt *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	ReturnedAt   *time.Time

	Cancellation *Cancellation

	CarrierOrderID string
	TrackingNumber string
	EcotrackStatus string

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder reconstructs an order aggregate from persistence. The subtotal
// and total are recomputed from the restored items and shipping cost so the
// money invariant cannot be violated by stale stored values.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(
		params.ID,
		params.Customer,
		params.Destination,
		params.Items,
		params.Payment,
		params.ShippingCost,
		params.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = params.Status.Validate(); err != nil {
		return nil, err
	}
	if params.Version <= 0 {
		return nil, errs.NewVersionIsInvalidError("order", errors.New("version must be positive"))
	}

	o.status = params.Status
	o.responded = params.Responded
	o.confirmedBy = params.ConfirmedBy
	o.confirmedAt = params.ConfirmedAt
	o.expediatedAt = params.ExpediatedAt
	o.shippedAt = params.ShippedAt
	o.deliveredAt = params.DeliveredAt
	o.returnedAt = params.ReturnedAt
	o.cancellation = params.Cancellation
	o.carrierOrderID = params.CarrierOrderID
	o.trackingNumber = params.TrackingNumber
	o.ecotrackStatus = params.EcotrackStatus
	o.version = params.Version
	o.updatedAt = params.UpdatedAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Confirm transitions a pending order to confirmed and stamps the confirming
// actor and time. A second call fails because only pending orders confirm.
func (o *Order) Confirm(actor kernel.UUID, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.confirmedBy = &actor
	o.confirmedAt = &now
	o.touch(now)
	return nil
}

// MarkResponded toggles the responded flag without touching the fulfillment
// status. The flag is operational tracking only and is allowed while the
// order is pending or confirmed.
func (o *Order) MarkResponded(responded bool, now time.Time) error {
	if err := o.status.ValidateMarkResponded(); err != nil {
		return err
	}

	o.responded = responded
	o.touch(now)
	return nil
}

// OverrideStatus sets the fulfillment status without consulting the transition
// graph. It is the low-level, carrier-agnostic setter used by the status
// reconciler and administrative overrides; the token allow-list in Status is
// the only guard.
func (o *Order) OverrideStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.touch(now)
	return nil
}

// Cancel marks the live order cancelled and records the cancellation
// metadata. Callers must pair it with an archive insert in one transaction;
// the aggregate only enforces that the current status allows termination with
// the given reason.
func (o *Order) Cancel(reason CancellationReason, notes string, actor kernel.UUID, now time.Time) error {
	newStatus, err := o.status.Cancel(reason)
	if err != nil {
		return err
	}

	cancellation, err := NewCancellation(reason, notes, actor, now)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellation = &cancellation
	o.touch(now)
	return nil
}

// CanExpediate checks every expedition precondition without mutating the
// order: confirmed status, no prior carrier handoff, and a carrier-recognized
// destination. Used by the batch orchestrator to route invalid orders to the
// failed partition before any network call.
func (o *Order) CanExpediate() error {
	if o.carrierOrderID != "" {
		return ErrAlreadyExpediated
	}
	if err := o.status.ValidateExpediate(); err != nil {
		return err
	}
	if !o.destination.HasCarrierMapping() {
		return ErrMissingCarrierMapping
	}
	return nil
}

// MarkExpediated records a successful carrier handoff: status becomes sent,
// the carrier identifiers are stored, the expedition time is stamped, and the
// raw carrier status is initialized to the pending marker.
func (o *Order) MarkExpediated(carrierOrderID, trackingNumber string, now time.Time) error {
	if err := o.CanExpediate(); err != nil {
		return err
	}
	if carrierOrderID == "" {
		return errs.NewValueIsRequiredError("carrierOrderID")
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	newStatus, err := o.status.Expediate()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.carrierOrderID = carrierOrderID
	o.trackingNumber = trackingNumber
	o.ecotrackStatus = CarrierStatusPending
	o.expediatedAt = &now
	o.touch(now)
	return nil
}

// ApplyCarrierStatus projects one carrier report onto the order. The raw
// carrier status is recorded unconditionally; the fulfillment status is set
// whenever the mapped status is known (Unknown means "no change"); milestone
// dates are first-write-wins so a later sync revisiting an already dated
// milestone never overwrites the original timestamp.
func (o *Order) ApplyCarrierStatus(rawStatus string, mapped Status, now time.Time) {
	o.ecotrackStatus = rawStatus

	if mapped == Unknown {
		o.touch(now)
		return
	}

	o.status = mapped

	switch mapped {
	case Shipped:
		if o.shippedAt == nil {
			o.shippedAt = &now
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &now
		}
	case Returned:
		if o.returnedAt == nil {
			o.returnedAt = &now
		}
	default:
	}

	o.touch(now)
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the buyer contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Destination returns the delivery target.
func (o *Order) Destination() Destination {
	return o.destination
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Payment returns the payment method and status.
func (o *Order) Payment() Payment {
	return o.payment
}

// Subtotal returns the sum of all line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// ShippingCost returns the shipping cost.
func (o *Order) ShippingCost() kernel.Money {
	return o.shippingCost
}

// Total returns the order total. Always equals subtotal plus shipping cost.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// Responded returns the operational responded flag.
func (o *Order) Responded() bool {
	return o.responded
}

// ConfirmedBy returns the confirming actor, nil before confirmation.
func (o *Order) ConfirmedBy() *kernel.UUID {
	return o.confirmedBy
}

// ConfirmedAt returns when the order was confirmed, nil before confirmation.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// ExpediatedAt returns when the order was handed to the carrier, nil before expedition.
func (o *Order) ExpediatedAt() *time.Time {
	return o.expediatedAt
}

// ShippedAt returns the first carrier-reported shipping milestone, nil if unreached.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns the first carrier-reported delivery milestone, nil if unreached.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ReturnedAt returns the first carrier-reported return milestone, nil if unreached.
func (o *Order) ReturnedAt() *time.Time {
	return o.returnedAt
}

// Cancellation returns the cancellation metadata, nil while the order is active.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

// CarrierOrderID returns the carrier's order identifier, empty before expedition.
func (o *Order) CarrierOrderID() string {
	return o.carrierOrderID
}

// TrackingNumber returns the carrier tracking number, empty before expedition.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// EcotrackStatus returns the last raw carrier status, empty before expedition.
func (o *Order) EcotrackStatus() string {
	return o.ecotrackStatus
}

// Version returns the optimistic-concurrency version the aggregate was loaded with.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns when the order was created at checkout.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}
