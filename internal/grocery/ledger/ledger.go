// Package ledger persists finalized orders.
//
// The store is a single JSON file holding the full order collection; every
// mutation re-reads the file, appends, and writes the whole collection back.
// That read-modify-write is a critical section: a per-ledger mutex serialises
// it so two sessions placing orders at the same time cannot drop each other's
// record.
//
// A missing or corrupt store file reads as an empty collection. That leniency
// is deliberate (the agent keeps taking orders instead of dying mid-call),
// but the corrupt case is logged so it can be told apart from "no orders yet".
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcmexdev/voicecart/internal/grocery/cart"
	"github.com/jcmexdev/voicecart/internal/grocery/domain"
)

// Ledger is the durable order store.
type Ledger struct {
	path string
	mu   sync.Mutex
}

// PlacementResult is the outcome of PlaceOrder. OrderID is set only when OK.
type PlacementResult struct {
	domain.Result
	OrderID string
}

// Open returns a ledger over the store file at path, creating an empty store
// if the file does not exist yet.
func Open(path string) (*Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ledger: create store dir: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("ledger: create store %q: %w", path, err)
		}
	}
	return &Ledger{path: path}, nil
}

// PlaceOrder converts the cart into an immutable order record, appends it to
// the store, and clears the cart. An empty cart is rejected before any side
// effect. Order ids are "ord_" + a UUID; timestamp-derived ids collide under
// rapid repeated placements.
func (l *Ledger) PlaceOrder(ctx context.Context, c *cart.Cart) (PlacementResult, error) {
	if c.Len() == 0 {
		return PlacementResult{Result: domain.Declined("Cannot place an empty order.")}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load(ctx)
	if err != nil {
		return PlacementResult{}, err
	}

	entries := c.Items()
	items := make([]domain.OrderItem, len(entries))
	for i, entry := range entries {
		items[i] = domain.OrderItem{
			ID:       entry.Item.ID,
			Name:     entry.Item.Name,
			Price:    entry.Item.Price,
			Quantity: entry.Quantity,
		}
	}

	order := domain.Order{
		OrderID:   "ord_" + uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    domain.StatusReceived,
		Items:     items,
		Total:     c.Total(),
	}

	orders = append(orders, order)
	if err := l.save(orders); err != nil {
		return PlacementResult{}, err
	}

	c.Clear()
	slog.InfoContext(ctx, "order placed", "order_id", order.OrderID, "items", len(items), "total", order.Total.String())

	return PlacementResult{
		Result:  domain.Accepted(fmt.Sprintf("Order placed successfully! Your order ID is %s.", order.OrderID)),
		OrderID: order.OrderID,
	}, nil
}

// OrderStatus reports the status of the order with the given id, or of the
// most recent order when orderID is empty. Misses come back as conversational
// text, not errors.
func (l *Ledger) OrderStatus(ctx context.Context, orderID string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load(ctx)
	if err != nil {
		return "", err
	}
	if len(orders) == 0 {
		return "No orders found.", nil
	}

	if orderID == "" {
		latest := orders[len(orders)-1]
		return fmt.Sprintf("Your latest order (%s) is currently: %s.", latest.OrderID, latest.Status), nil
	}

	for _, order := range orders {
		if order.OrderID == orderID {
			return fmt.Sprintf("Order %s is currently: %s.", orderID, order.Status), nil
		}
	}
	return fmt.Sprintf("Order %s not found.", orderID), nil
}

// Orders returns the full persisted collection, oldest first.
func (l *Ledger) Orders(ctx context.Context) ([]domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(ctx)
}

// load reads the whole collection. Callers must hold l.mu.
func (l *Ledger) load(ctx context.Context) ([]domain.Order, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger: read store %q: %w", l.path, err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		// Degraded store, not a fatal condition. Distinct from "no orders
		// yet" only in the logs.
		slog.WarnContext(ctx, "order store unreadable, treating as empty", "path", l.path, "error", err)
		return nil, nil
	}
	return orders, nil
}

// save writes the whole collection back. Callers must hold l.mu. A write
// failure propagates — silent data loss would be worse than a visible error.
func (l *Ledger) save(orders []domain.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("ledger: encode store: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("ledger: write store %q: %w", l.path, err)
	}
	return nil
}
