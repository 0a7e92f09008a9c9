package archive

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrArchivedOrderIsNotConstructed is returned when an ArchivedOrder was not
	// created through SnapshotOrder or RestoreArchivedOrder.
	ErrArchivedOrderIsNotConstructed = errors.New("ArchivedOrder must be created via SnapshotOrder constructor")

	// ErrAlreadyArchived is returned when an archive record already exists for
	// the original order. The archive store is append-only and keeps exactly
	// one snapshot per terminated order.
	ErrAlreadyArchived = errors.New("order is already archived")
)

// ArchivedOrder is the immutable historical snapshot of a terminated order.
// It copies every field needed to answer historical queries without depending
// on the live order or the referenced wilaya, commune, or product records,
// which may later be mutated or deleted.
//
// The archive is the historical source of truth for terminated orders; the
// live order remains only as a cancelled status marker.
type ArchivedOrder struct {
	id              kernel.UUID
	originalOrderID kernel.UUID

	customerName  string
	customerPhone string
	customerEmail string

	wilayaID     int
	wilayaName   string
	communeID    int
	communeName  string
	address      string
	deliveryMode order.DeliveryMode

	subtotal     kernel.Money
	shippingCost kernel.Money
	total        kernel.Money

	paymentMethod order.PaymentMethod
	paymentStatus order.PaymentStatus

	statusAtArchival order.Status

	reason     order.CancellationReason
	notes      string
	archivedBy kernel.UUID
	archivedAt time.Time

	orderCreatedAt time.Time

	items []*ArchivedItem

	isConstructed bool
}

// SnapshotOrder builds the archive snapshot of an order at the instant of
// termination. All destination names, prices, and variant selections are
// copied as they are now, and one ArchivedItem is built per live line item.
//
// The snapshot records the order's status before termination; the caller
// flips the live order to cancelled in the same transaction.
func SnapshotOrder(
	o *order.Order,
	reason order.CancellationReason,
	notes string,
	archivedBy kernel.UUID,
	archivedAt time.Time,
) (*ArchivedOrder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := reason.Validate(); err != nil {
		return nil, err
	}
	if err := archivedBy.Validate(); err != nil {
		return nil, err
	}
	if archivedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("archivedAt")
	}

	items := make([]*ArchivedItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		archivedItem, err := snapshotItem(item)
		if err != nil {
			return nil, err
		}
		items = append(items, archivedItem)
	}

	return &ArchivedOrder{
		id:               kernel.NewUUID(),
		originalOrderID:  o.ID(),
		customerName:     o.Customer().Name(),
		customerPhone:    o.Customer().Phone(),
		customerEmail:    o.Customer().Email(),
		wilayaID:         o.Destination().WilayaID(),
		wilayaName:       o.Destination().WilayaName(),
		communeID:        o.Destination().CommuneID(),
		communeName:      o.Destination().CommuneName(),
		address:          o.Destination().Address(),
		deliveryMode:     o.Destination().Mode(),
		subtotal:         o.Subtotal(),
		shippingCost:     o.ShippingCost(),
		total:            o.Total(),
		paymentMethod:    o.Payment().Method(),
		paymentStatus:    o.Payment().Status(),
		statusAtArchival: o.Status(),
		reason:           reason,
		notes:            notes,
		archivedBy:       archivedBy,
		archivedAt:       archivedAt,
		orderCreatedAt:   o.CreatedAt(),
		items:            items,
		isConstructed:    true,
	}, nil
}

// RestoreArchivedOrderParams carries the persisted state of an archived order.
type RestoreArchivedOrderParams struct {
	ID              kernel.UUID
	OriginalOrderID kernel.UUID

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	WilayaID     int
	WilayaName   string
	CommuneID    int
	CommuneName  string
	Address      string
	DeliveryMode order.DeliveryMode

	Subtotal     kernel.Money
	ShippingCost kernel.Money
	Total        kernel.Money

	PaymentMethod order.PaymentMethod
	PaymentStatus order.PaymentStatus

	StatusAtArchival order.Status

	Reason     order.CancellationReason
	Notes      string
	ArchivedBy kernel.UUID
	ArchivedAt time.Time

	OrderCreatedAt time.Time

	Items []*ArchivedItem
}

// RestoreArchivedOrder reconstructs an archived order from persistence.
func RestoreArchivedOrder(params RestoreArchivedOrderParams) (*ArchivedOrder, error) {
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}
	if err := params.OriginalOrderID.Validate(); err != nil {
		return nil, err
	}
	if err := params.Reason.Validate(); err != nil {
		return nil, err
	}

	return &ArchivedOrder{
		id:               params.ID,
		originalOrderID:  params.OriginalOrderID,
		customerName:     params.CustomerName,
		customerPhone:    params.CustomerPhone,
		customerEmail:    params.CustomerEmail,
		wilayaID:         params.WilayaID,
		wilayaName:       params.WilayaName,
		communeID:        params.CommuneID,
		communeName:      params.CommuneName,
		address:          params.Address,
		deliveryMode:     params.DeliveryMode,
		subtotal:         params.Subtotal,
		shippingCost:     params.ShippingCost,
		total:            params.Total,
		paymentMethod:    params.PaymentMethod,
		paymentStatus:    params.PaymentStatus,
		statusAtArchival: params.StatusAtArchival,
		reason:           params.Reason,
		notes:            params.Notes,
		archivedBy:       params.ArchivedBy,
		archivedAt:       params.ArchivedAt,
		orderCreatedAt:   params.OrderCreatedAt,
		items:            params.Items,
		isConstructed:    true,
	}, nil
}

// Validate ensures the archived order was created through a factory method.
func (a *ArchivedOrder) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrArchivedOrderIsNotConstructed
	}
	return nil
}

// ID returns the archive record's own identifier.
func (a *ArchivedOrder) ID() kernel.UUID {
	return a.id
}

// OriginalOrderID returns the identifier of the order this snapshot was taken from.
func (a *ArchivedOrder) OriginalOrderID() kernel.UUID {
	return a.originalOrderID
}

// CustomerName returns the buyer name snapshot.
func (a *ArchivedOrder) CustomerName() string {
	return a.customerName
}

// CustomerPhone returns the buyer phone snapshot.
func (a *ArchivedOrder) CustomerPhone() string {
	return a.customerPhone
}

// CustomerEmail returns the buyer email snapshot, possibly empty.
func (a *ArchivedOrder) CustomerEmail() string {
	return a.customerEmail
}

// WilayaID returns the destination wilaya reference.
func (a *ArchivedOrder) WilayaID() int {
	return a.wilayaID
}

// WilayaName returns the wilaya name captured at archival time.
func (a *ArchivedOrder) WilayaName() string {
	return a.wilayaName
}

// CommuneID returns the destination commune reference.
func (a *ArchivedOrder) CommuneID() int {
	return a.communeID
}

// CommuneName returns the commune name captured at archival time.
func (a *ArchivedOrder) CommuneName() string {
	return a.communeName
}

// Address returns the street address snapshot.
func (a *ArchivedOrder) Address() string {
	return a.address
}

// DeliveryMode returns the delivery mode snapshot.
func (a *ArchivedOrder) DeliveryMode() order.DeliveryMode {
	return a.deliveryMode
}

// Subtotal returns the order subtotal at archival time.
func (a *ArchivedOrder) Subtotal() kernel.Money {
	return a.subtotal
}

// ShippingCost returns the shipping cost at archival time.
func (a *ArchivedOrder) ShippingCost() kernel.Money {
	return a.shippingCost
}

// Total returns the order total at archival time.
func (a *ArchivedOrder) Total() kernel.Money {
	return a.total
}

// PaymentMethod returns the payment method snapshot.
func (a *ArchivedOrder) PaymentMethod() order.PaymentMethod {
	return a.paymentMethod
}

// PaymentStatus returns the payment status snapshot.
func (a *ArchivedOrder) PaymentStatus() order.PaymentStatus {
	return a.paymentStatus
}

// StatusAtArchival returns the fulfillment status the order held before termination.
func (a *ArchivedOrder) StatusAtArchival() order.Status {
	return a.statusAtArchival
}

// Reason returns the termination reason.
func (a *ArchivedOrder) Reason() order.CancellationReason {
	return a.reason
}

// Notes returns the operator's free-text notes.
func (a *ArchivedOrder) Notes() string {
	return a.notes
}

// ArchivedBy returns the actor who terminated the order.
func (a *ArchivedOrder) ArchivedBy() kernel.UUID {
	return a.archivedBy
}

// ArchivedAt returns when the snapshot was taken.
func (a *ArchivedOrder) ArchivedAt() time.Time {
	return a.archivedAt
}

// OrderCreatedAt returns when the original order was created at checkout.
func (a *ArchivedOrder) OrderCreatedAt() time.Time {
	return a.orderCreatedAt
}

// Items returns the archived line items.
func (a *ArchivedOrder) Items() []*ArchivedItem {
	return a.items
}
