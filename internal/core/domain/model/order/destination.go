package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when a Destination was not
// created through the NewDestination constructor.
var ErrDestinationIsNotConstructed = errors.New("Destination must be created via NewDestination constructor")

// DeliveryMode selects how the carrier delivers: to the customer's door or to
// a carrier desk for pickup.
type DeliveryMode int

const (
	// DeliveryModeUnknown represents an invalid or undefined mode.
	DeliveryModeUnknown DeliveryMode = iota

	// DeliveryHome delivers to the customer's address.
	DeliveryHome

	// DeliveryDesk delivers to a carrier pickup desk.
	DeliveryDesk
)

func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		DeliveryHome: "home",
		DeliveryDesk: "desk",
	}
}

// DeliveryModeFromString resolves a delivery mode token.
func DeliveryModeFromString(s string) (DeliveryMode, error) {
	for mode, token := range getDeliveryModeStrings() {
		if token == s {
			return mode, nil
		}
	}
	return DeliveryModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryMode",
		fmt.Errorf("%q is not a valid delivery mode", s),
	)
}

// Validate checks that the mode is one of the known values.
func (m DeliveryMode) Validate() error {
	if _, ok := getDeliveryModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deliveryMode", fmt.Errorf("%d is not a valid delivery mode", m))
	}
	return nil
}

// String returns the canonical token of the mode, or "unknown".
func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Destination is a value object describing where an order ships: a wilaya and
// commune reference with name snapshots taken at checkout, the street address
// text, the delivery mode, and the carrier's zone code for the wilaya.
//
// The name snapshots are denormalized on purpose: the archive must be able to
// answer historical queries even if the referenced wilaya or commune record is
// later renamed or deleted.
type Destination struct {
	wilayaID    int
	wilayaName  string
	communeID   int
	communeName string
	address     string
	mode        DeliveryMode

	// carrierZone is the carrier's identifier for the wilaya.
	// Zero means the carrier has no mapping and expedition is impossible.
	carrierZone int

	guard guard.ConstructorGuard
}

// NewDestination creates a destination value. The wilaya and commune
// references, their name snapshots, the address, and a valid delivery mode
// are all required. carrierZone may be zero for wilayas the carrier does not
// serve.
func NewDestination(
	wilayaID int,
	wilayaName string,
	communeID int,
	communeName string,
	address string,
	mode DeliveryMode,
	carrierZone int,
) (Destination, error) {
	if wilayaID <= 0 {
		return Destination{}, errs.NewValueIsInvalidErrorWithCause(
			"wilayaID", fmt.Errorf("%d is not greater than 0", wilayaID))
	}
	if wilayaName == "" {
		return Destination{}, errs.NewValueIsRequiredError("wilayaName")
	}
	if communeID <= 0 {
		return Destination{}, errs.NewValueIsInvalidErrorWithCause(
			"communeID", fmt.Errorf("%d is not greater than 0", communeID))
	}
	if communeName == "" {
		return Destination{}, errs.NewValueIsRequiredError("communeName")
	}
	if address == "" {
		return Destination{}, errs.NewValueIsRequiredError("address")
	}
	if err := mode.Validate(); err != nil {
		return Destination{}, err
	}
	if carrierZone < 0 {
		return Destination{}, errs.NewValueIsInvalidErrorWithCause(
			"carrierZone", fmt.Errorf("%d is negative", carrierZone))
	}

	return Destination{
		wilayaID:    wilayaID,
		wilayaName:  wilayaName,
		communeID:   communeID,
		communeName: communeName,
		address:     address,
		mode:        mode,
		carrierZone: carrierZone,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the destination was created through the constructor.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// WilayaID returns the wilaya reference.
func (d Destination) WilayaID() int {
	return d.wilayaID
}

// WilayaName returns the wilaya name snapshot taken at checkout.
func (d Destination) WilayaName() string {
	return d.wilayaName
}

// CommuneID returns the commune reference.
func (d Destination) CommuneID() int {
	return d.communeID
}

// CommuneName returns the commune name snapshot taken at checkout.
func (d Destination) CommuneName() string {
	return d.communeName
}

// Address returns the street address text.
func (d Destination) Address() string {
	return d.address
}

// Mode returns the delivery mode.
func (d Destination) Mode() DeliveryMode {
	return d.mode
}

// CarrierZone returns the carrier's zone code for the wilaya, zero if unmapped.
func (d Destination) CarrierZone() int {
	return d.carrierZone
}

// HasCarrierMapping reports whether the carrier recognizes the destination wilaya.
func (d Destination) HasCarrierMapping() bool {
	return d.carrierZone > 0
}
