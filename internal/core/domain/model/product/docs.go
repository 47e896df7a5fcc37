// Package product contains the catalog aggregate.
//
// A Product is created, edited and deleted by the admin only. Carts and orders
// never reference a Product directly: they hold a Snapshot taken when the item
// was added, so later catalog edits do not rewrite a buyer's cart line or a
// historical order.
//
// Products flagged IsService represent the document-verification service; any
// order containing one follows the service status track.
package product
