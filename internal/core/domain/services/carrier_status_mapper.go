package services

import (
	"fulfillment/internal/core/domain/model/order"
)

// CarrierStatusMapper translates the carrier's raw status vocabulary into the
// internal fulfillment status enum. The mapping is total: every known carrier
// code maps to exactly one internal status, and unknown codes map to
// order.Unknown, which the reconciler treats as "record the raw value, change
// nothing else". A new carrier code must never crash a sync run.
type CarrierStatusMapper struct{}

// NewCarrierStatusMapper creates the mapper. It is stateless and safe to share.
func NewCarrierStatusMapper() CarrierStatusMapper {
	return CarrierStatusMapper{}
}

// carrierStatusTable is the full vocabulary the carrier is known to emit.
func carrierStatusTable() map[string]order.Status {
	return map[string]order.Status{
		// Parcel registered, still at the seller or carrier intake.
		"en_preparation": order.Sent,
		"upload":         order.Sent,

		// Parcel moving through the carrier network.
		"vers_wilaya":  order.Shipped,
		"centre":       order.Shipped,
		"transit":      order.Shipped,
		"vers_station": order.Shipped,

		// Courier has the parcel for a delivery attempt. A failed attempt
		// leaves the parcel with the courier for a retry.
		"en_livraison":       order.OutForDelivery,
		"sorti_en_livraison": order.OutForDelivery,
		"echec_livraison":    order.OutForDelivery,

		// Terminal outcomes.
		"livre": order.Delivered,

		"retour_transit": order.Returned,
		"retourne":       order.Returned,
		"retour_recu":    order.Returned,
	}
}

// Map returns the internal status for a raw carrier code, or order.Unknown
// for codes outside the known vocabulary.
func (m CarrierStatusMapper) Map(externalCode string) order.Status {
	if status, ok := carrierStatusTable()[externalCode]; ok {
		return status
	}
	return order.Unknown
}
