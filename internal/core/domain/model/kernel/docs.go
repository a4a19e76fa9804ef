// Package kernel provides the shared value objects of the pancake delivery core.
//
// The package includes:
//   - UUID: a 128-bit random identifier used by every entity
//   - IntegerRange: an inclusive, non-negative interval of room numbers
//   - IDName: an (id, name) pair returned by catalog listings
//   - The catalog limits and the name rule shared by ingredients and recipes
//
// All values are immutable and safe for concurrent use.
package kernel
