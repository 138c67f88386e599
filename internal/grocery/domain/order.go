// Package domain defines the grocery ordering domain types shared by the
// catalog, cart and ledger packages.
package domain

import "github.com/shopspring/decimal"

// CatalogItem is a purchasable product. Loaded once at startup and never
// mutated afterwards.
type CatalogItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CartEntry is one line of a cart: a catalog item snapshot plus a quantity.
// Quantity is always >= 1; an entry at zero is removed from the cart instead.
type CartEntry struct {
	Item     CatalogItem
	Quantity int
}

// Subtotal returns price * quantity, exact.
func (e CartEntry) Subtotal() decimal.Decimal {
	return e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	StatusReceived  OrderStatus = "received"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderItem is an immutable snapshot of a cart entry at placement time.
// Prices are copied so later catalog changes cannot rewrite order history.
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Order is a finalized order as persisted in the ledger. Immutable once
// written.
type Order struct {
	OrderID   string          `json:"order_id"`
	Timestamp string          `json:"timestamp"`
	Status    OrderStatus     `json:"status"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
}
