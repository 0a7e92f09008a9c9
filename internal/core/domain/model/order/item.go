package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item owned exclusively by its Order. It carries the product
// reference plus denormalized name, price, and variant selection so the line
// stays meaningful after the product record changes, and is deleted together
// with its order.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	name      string
	size      string
	color     string
	unitPrice kernel.Money
	quantity  int

	isConstructed bool
}

// NewItem creates a line item. The product reference, the denormalized name,
// and a positive quantity are required; size and color may be empty for
// products without variants.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	size string,
	color string,
	unitPrice kernel.Money,
	quantity int,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return &Item{
		id:            id,
		productID:     productID,
		name:          name,
		size:          size,
		color:         color,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a line item from persistence.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	size string,
	color string,
	unitPrice kernel.Money,
	quantity int,
) (*Item, error) {
	return NewItem(id, productID, name, size, color, unitPrice, quantity)
}

// Validate ensures the item was created through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i *Item) Name() string {
	return i.name
}

// Size returns the selected size variant, possibly empty.
func (i *Item) Size() string {
	return i.size
}

// Color returns the selected color variant, possibly empty.
func (i *Item) Color() string {
	return i.color
}

// UnitPrice returns the price snapshot per unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// LineTotal returns the computed line total: unit price times quantity.
func (i *Item) LineTotal() kernel.Money {
	return i.unitPrice.MultiplyByQuantity(i.quantity)
}
