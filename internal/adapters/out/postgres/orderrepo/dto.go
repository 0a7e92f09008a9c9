// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its canonical token so listing queries can filter by the
// same vocabulary the API uses. Version backs the optimistic concurrency check
// in Update.
type OrderDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	WilayaID     int
	WilayaName   string
	CommuneID    int
	CommuneName  string
	Address      string
	DeliveryMode string
	CarrierZone  int

	Subtotal     float64
	ShippingCost float64
	Total        float64

	PaymentMethod string
	PaymentStatus string

	Status    string `gorm:"index"`
	Responded bool

	ConfirmedBy *uuid.UUID `gorm:"type:uuid"`
	ConfirmedAt *time.Time

	ExpediatedAt *time.Time
	ShippedAt    *time.Time
	DeliveredAt  *time.Time
	ReturnedAt   *time.Time

	CancellationReason *string
	CancellationNotes  string
	CancelledBy        *uuid.UUID `gorm:"type:uuid"`
	CancelledAt        *time.Time

	CarrierOrderID string `gorm:"index"`
	TrackingNumber string
	EcotrackStatus string

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item. Items are written once at
// order creation and never mutated afterwards.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	Size      string
	Color     string
	UnitPrice float64
	Quantity  int
}

// TableName specifies the database table name for line item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerName:   aggregate.Customer().Name(),
		CustomerPhone:  aggregate.Customer().Phone(),
		CustomerEmail:  aggregate.Customer().Email(),
		WilayaID:       aggregate.Destination().WilayaID(),
		WilayaName:     aggregate.Destination().WilayaName(),
		CommuneID:      aggregate.Destination().CommuneID(),
		CommuneName:    aggregate.Destination().CommuneName(),
		Address:        aggregate.Destination().Address(),
		DeliveryMode:   aggregate.Destination().Mode().String(),
		CarrierZone:    aggregate.Destination().CarrierZone(),
		Subtotal:       aggregate.Subtotal().Amount(),
		ShippingCost:   aggregate.ShippingCost().Amount(),
		Total:          aggregate.Total().Amount(),
		PaymentMethod:  aggregate.Payment().Method().String(),
		PaymentStatus:  aggregate.Payment().Status().String(),
		Status:         aggregate.Status().String(),
		Responded:      aggregate.Responded(),
		ConfirmedAt:    aggregate.ConfirmedAt(),
		ExpediatedAt:   aggregate.ExpediatedAt(),
		ShippedAt:      aggregate.ShippedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		ReturnedAt:     aggregate.ReturnedAt(),
		CarrierOrderID: aggregate.CarrierOrderID(),
		TrackingNumber: aggregate.TrackingNumber(),
		EcotrackStatus: aggregate.EcotrackStatus(),
		Version:        aggregate.Version(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}

	if confirmedBy := aggregate.ConfirmedBy(); confirmedBy != nil {
		raw := confirmedBy.Bytes()
		dto.ConfirmedBy = &raw
	}

	if cancellation := aggregate.Cancellation(); cancellation != nil {
		reason := cancellation.Reason().String()
		cancelledBy := cancellation.CancelledBy().Bytes()
		cancelledAt := cancellation.CancelledAt()
		dto.CancellationReason = &reason
		dto.CancellationNotes = cancellation.Notes()
		dto.CancelledBy = &cancelledBy
		dto.CancelledAt = &cancelledAt
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Size:      item.Size(),
			Color:     item.Color(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
		})
	}

	return dto
}

// toDomain converts a database row back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	mode, err := order.DeliveryModeFromString(dto.DeliveryMode)
	if err != nil {
		return nil, err
	}

	destination, err := order.NewDestination(
		dto.WilayaID, dto.WilayaName, dto.CommuneID, dto.CommuneName, dto.Address, mode, dto.CarrierZone)
	if err != nil {
		return nil, err
	}

	method, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	payment, err := order.NewPayment(method, paymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}

	params := order.RestoreOrderParams{
		ID:             id,
		Customer:       customer,
		Destination:    destination,
		Items:          items,
		Payment:        payment,
		ShippingCost:   shippingCost,
		Status:         status,
		Responded:      dto.Responded,
		ConfirmedAt:    dto.ConfirmedAt,
		ExpediatedAt:   dto.ExpediatedAt,
		ShippedAt:      dto.ShippedAt,
		DeliveredAt:    dto.DeliveredAt,
		ReturnedAt:     dto.ReturnedAt,
		CarrierOrderID: dto.CarrierOrderID,
		TrackingNumber: dto.TrackingNumber,
		EcotrackStatus: dto.EcotrackStatus,
		Version:        dto.Version,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}

	if dto.ConfirmedBy != nil {
		confirmedBy, idErr := kernel.UUIDFromBytes((*dto.ConfirmedBy)[:])
		if idErr != nil {
			return nil, idErr
		}
		params.ConfirmedBy = &confirmedBy
	}

	if dto.CancellationReason != nil && dto.CancelledBy != nil && dto.CancelledAt != nil {
		reason, reasonErr := order.ReasonFromString(*dto.CancellationReason)
		if reasonErr != nil {
			return nil, reasonErr
		}
		cancelledBy, idErr := kernel.UUIDFromBytes((*dto.CancelledBy)[:])
		if idErr != nil {
			return nil, idErr
		}
		cancellation, cancelErr := order.NewCancellation(reason, dto.CancellationNotes, cancelledBy, *dto.CancelledAt)
		if cancelErr != nil {
			return nil, cancelErr
		}
		params.Cancellation = &cancellation
	}

	return order.RestoreOrder(params)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, dto.Name, dto.Size, dto.Color, unitPrice, dto.Quantity)
}
