// Package services provides domain services that orchestrate business operations
// across several aggregates of the storefront.
//
// The package includes:
//   - Checkout: Turns a buyer's cart into an order and empties the cart
//   - RoleGate: Binds an actor's role and identity to the order triggers it may invoke
//
// Domain services hold no state; persistence and transactions are handled by
// the application layer around them.
package services
