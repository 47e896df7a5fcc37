// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the API; catalog, cart and settings
// are read with direct SQL, orders through the repository so that visibility
// and the status selector use the domain rules.
package queries
