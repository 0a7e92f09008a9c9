// Package archiverepo provides data transfer objects and mapping functions
// for the append-only archive store. Rows are inserted once at termination
// time and never updated.
package archiverepo

import (
	"time"

	"fulfillment/internal/core/domain/model/archive"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ArchivedOrderDTO represents the database structure for archive snapshots.
// OriginalOrderID carries a unique constraint: the archive keeps exactly one
// snapshot per terminated order, and the constraint is what turns a duplicate
// termination into archive.ErrAlreadyArchived.
type ArchivedOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginalOrderID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	WilayaID    int
	WilayaName  string
	CommuneID   int
	CommuneName string
	Address     string
	DeliveryMode string

	Subtotal     float64
	ShippingCost float64
	Total        float64

	PaymentMethod string
	PaymentStatus string

	StatusAtArchival string

	Reason     string `gorm:"index"`
	Notes      string
	ArchivedBy uuid.UUID `gorm:"type:uuid"`
	ArchivedAt time.Time

	OrderCreatedAt time.Time

	Items []ArchivedItemDTO `gorm:"foreignKey:ArchivedOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for archive rows.
func (ArchivedOrderDTO) TableName() string {
	return "archived_orders"
}

// ArchivedItemDTO represents one archived line item row.
type ArchivedItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ArchivedOrderID uuid.UUID `gorm:"type:uuid;index"`
	ProductID       uuid.UUID `gorm:"type:uuid"`
	Name            string
	Size            string
	Color           string
	UnitPrice       float64
	Quantity        int
	TotalPrice      float64
}

// TableName specifies the database table name for archived line item rows.
func (ArchivedItemDTO) TableName() string {
	return "archived_order_items"
}

// fromDomain converts an archive snapshot to its database representation.
func fromDomain(snapshot *archive.ArchivedOrder) ArchivedOrderDTO {
	dto := ArchivedOrderDTO{
		ID:               snapshot.ID().Bytes(),
		OriginalOrderID:  snapshot.OriginalOrderID().Bytes(),
		CustomerName:     snapshot.CustomerName(),
		CustomerPhone:    snapshot.CustomerPhone(),
		CustomerEmail:    snapshot.CustomerEmail(),
		WilayaID:         snapshot.WilayaID(),
		WilayaName:       snapshot.WilayaName(),
		CommuneID:        snapshot.CommuneID(),
		CommuneName:      snapshot.CommuneName(),
		Address:          snapshot.Address(),
		DeliveryMode:     snapshot.DeliveryMode().String(),
		Subtotal:         snapshot.Subtotal().Amount(),
		ShippingCost:     snapshot.ShippingCost().Amount(),
		Total:            snapshot.Total().Amount(),
		PaymentMethod:    snapshot.PaymentMethod().String(),
		PaymentStatus:    snapshot.PaymentStatus().String(),
		StatusAtArchival: snapshot.StatusAtArchival().String(),
		Reason:           snapshot.Reason().String(),
		Notes:            snapshot.Notes(),
		ArchivedBy:       snapshot.ArchivedBy().Bytes(),
		ArchivedAt:       snapshot.ArchivedAt(),
		OrderCreatedAt:   snapshot.OrderCreatedAt(),
	}

	for _, item := range snapshot.Items() {
		dto.Items = append(dto.Items, ArchivedItemDTO{
			ID:              item.ID().Bytes(),
			ArchivedOrderID: snapshot.ID().Bytes(),
			ProductID:       item.ProductID().Bytes(),
			Name:            item.Name(),
			Size:            item.Size(),
			Color:           item.Color(),
			UnitPrice:       item.UnitPrice().Amount(),
			Quantity:        item.Quantity(),
			TotalPrice:      item.TotalPrice().Amount(),
		})
	}

	return dto
}

// toDomain converts a database row back to an archive snapshot.
func toDomain(dto ArchivedOrderDTO) (*archive.ArchivedOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	originalOrderID, err := kernel.UUIDFromBytes(dto.OriginalOrderID[:])
	if err != nil {
		return nil, err
	}
	archivedBy, err := kernel.UUIDFromBytes(dto.ArchivedBy[:])
	if err != nil {
		return nil, err
	}

	mode, err := order.DeliveryModeFromString(dto.DeliveryMode)
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
	statusAtArchival, err := order.StatusFromString(dto.StatusAtArchival)
	if err != nil {
		return nil, err
	}
	reason, err := order.ReasonFromString(dto.Reason)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*archive.ArchivedItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return archive.RestoreArchivedOrder(archive.RestoreArchivedOrderParams{
		ID:               id,
		OriginalOrderID:  originalOrderID,
		CustomerName:     dto.CustomerName,
		CustomerPhone:    dto.CustomerPhone,
		CustomerEmail:    dto.CustomerEmail,
		WilayaID:         dto.WilayaID,
		WilayaName:       dto.WilayaName,
		CommuneID:        dto.CommuneID,
		CommuneName:      dto.CommuneName,
		Address:          dto.Address,
		DeliveryMode:     mode,
		Subtotal:         subtotal,
		ShippingCost:     shippingCost,
		Total:            total,
		PaymentMethod:    method,
		PaymentStatus:    paymentStatus,
		StatusAtArchival: statusAtArchival,
		Reason:           reason,
		Notes:            dto.Notes,
		ArchivedBy:       archivedBy,
		ArchivedAt:       dto.ArchivedAt,
		OrderCreatedAt:   dto.OrderCreatedAt,
		Items:            items,
	})
}

func itemToDomain(dto ArchivedItemDTO) (*archive.ArchivedItem, error) {
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
	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return archive.RestoreArchivedItem(id, productID, dto.Name, dto.Size, dto.Color, unitPrice, dto.Quantity, totalPrice)
}
