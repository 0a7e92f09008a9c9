// Package services provides domain services for logic that does not naturally
// belong to a single aggregate root.
//
// The package includes:
//   - CarrierStatusMapper: A pure translation from the carrier's status
//     vocabulary into the internal fulfillment status enum
//
// Domain services are stateless; they take domain values in and return domain
// values out, with no I/O.
package services
