// Package order provides the Order aggregate root, its lifecycle Status and the
// Pancake entities it contains.
//
// The package includes:
//   - Order: a delivery request tied to a building and room, holding pancakes
//   - Status: a state machine that enforces valid lifecycle transitions
//   - Pancake: an immutable snapshot of ingredient names
//
// Key business rules:
//   - Building and room never change after creation
//   - Pancakes can be added or removed only while the order is a Draft
//   - Status follows Draft -> Completed -> Prepared -> delivered, or Draft -> Canceled
//   - Delivered and canceled orders leave the live registry; no terminal record is kept
//
// Order carries its own exclusive lock. The order service holds it for the whole of
// every mutating operation so that two operations on one order never interleave.
package order
