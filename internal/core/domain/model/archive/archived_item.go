package archive

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrArchivedItemIsNotConstructed is returned when an ArchivedItem was not
// created through a factory method.
var ErrArchivedItemIsNotConstructed = errors.New("ArchivedItem must be created via snapshot or RestoreArchivedItem")

// ArchivedItem is the immutable snapshot of one line item, copying the price,
// quantity, and variant selection and carrying the computed line total.
type ArchivedItem struct {
	id         kernel.UUID
	productID  kernel.UUID
	name       string
	size       string
	color      string
	unitPrice  kernel.Money
	quantity   int
	totalPrice kernel.Money

	isConstructed bool
}

// snapshotItem copies a live line item into its archived form, computing
// totalPrice as unit price times quantity.
func snapshotItem(item *order.Item) (*ArchivedItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	return &ArchivedItem{
		id:            kernel.NewUUID(),
		productID:     item.ProductID(),
		name:          item.Name(),
		size:          item.Size(),
		color:         item.Color(),
		unitPrice:     item.UnitPrice(),
		quantity:      item.Quantity(),
		totalPrice:    item.LineTotal(),
		isConstructed: true,
	}, nil
}

// RestoreArchivedItem reconstructs an archived line item from persistence.
func RestoreArchivedItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	size string,
	color string,
	unitPrice kernel.Money,
	quantity int,
	totalPrice kernel.Money,
) (*ArchivedItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &ArchivedItem{
		id:            id,
		productID:     productID,
		name:          name,
		size:          size,
		color:         color,
		unitPrice:     unitPrice,
		quantity:      quantity,
		totalPrice:    totalPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created through a factory method.
func (i *ArchivedItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrArchivedItemIsNotConstructed
	}
	return nil
}

// ID returns the archived item's own identifier.
func (i *ArchivedItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product.
func (i *ArchivedItem) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i *ArchivedItem) Name() string {
	return i.name
}

// Size returns the selected size variant, possibly empty.
func (i *ArchivedItem) Size() string {
	return i.size
}

// Color returns the selected color variant, possibly empty.
func (i *ArchivedItem) Color() string {
	return i.color
}

// UnitPrice returns the price snapshot per unit.
func (i *ArchivedItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i *ArchivedItem) Quantity() int {
	return i.quantity
}

// TotalPrice returns the computed line total captured at archival time.
func (i *ArchivedItem) TotalPrice() kernel.Money {
	return i.totalPrice
}
