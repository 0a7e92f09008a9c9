// Package order provides domain entities and business logic for the order
// fulfillment lifecycle. It implements the Order aggregate root with its line
// items, destination, payment axis, and the fulfillment status state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, money totals, and lifecycle
//   - Item: A line item owned exclusively by its order
//   - Status: A state machine that enforces valid fulfillment transitions
//   - Customer, Destination, Payment: Value objects describing the buyer and delivery target
//
// Key business rules:
//   - Total always equals subtotal plus shipping cost
//   - Confirmation is only possible from the pending status and cannot be repeated
//   - Cancellation is only reachable from pending, confirmed, or pre-sent
//   - Expedition requires a confirmed order, no prior carrier handoff, and a
//     carrier-recognized destination zone
//   - Carrier-reported milestones never overwrite an already recorded date
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
