// Package services provides domain services that orchestrate business rules
// spanning more than one entity.
//
// The package includes:
//   - PancakeKitchen: builds a pancake from resolved ingredient names, adds it to
//     a draft order and enforces the maximum order size
package services
