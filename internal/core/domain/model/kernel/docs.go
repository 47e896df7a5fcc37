// Package kernel provides the shared domain primitives of the storefront.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Role: The closed set of actor roles (buyer, admin)
//   - Actor: The authenticated identity on whose behalf a command runs
//
// These primitives are immutable and safe for concurrent use. Every aggregate
// package depends on kernel; kernel depends on no other domain package.
package kernel
