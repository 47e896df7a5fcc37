// Package order provides the Order aggregate and the two-track status machine
// that drives the storefront order workflow.
//
// The package includes:
//   - Order: The aggregate root owning line items, status, files and version
//   - Status and Track: The retail and document-verification state machines
//   - Trigger and TransitionError: The named actions and their typed rejection
//   - UploadedFile: A document or report carried as a base64 data URI
//   - Event: Facts recorded by the aggregate for the outbox
//
// Key business rules:
//   - The track is chosen at checkout from the line items and never changes
//   - Retail orders move freely between non-terminal statuses by admin selection
//   - Service orders follow the document -> report -> payment -> download workflow
//   - Illegal transitions return *TransitionError and leave the order unchanged
//   - Every persisted mutation bumps the version by exactly one
package order
