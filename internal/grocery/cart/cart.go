// Package cart implements the per-session shopping cart.
//
// A cart belongs to exactly one conversation session and is mutated by a
// single goroutine at a time, so it carries no locking of its own. Durable
// state lives in the ledger package; the cart is purely in-memory.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/voicecart/internal/grocery/catalog"
	"github.com/jcmexdev/voicecart/internal/grocery/domain"
)

// Cart maps item id -> entry. Insertion order is kept so summaries and order
// snapshots come out in the order the user added things.
type Cart struct {
	resolver *catalog.Resolver
	entries  map[string]*domain.CartEntry
	order    []string
}

// New creates an empty cart backed by the given resolver.
func New(resolver *catalog.Resolver) *Cart {
	return &Cart{
		resolver: resolver,
		entries:  make(map[string]*domain.CartEntry),
	}
}

// AddItem resolves name against the catalog and adds quantity of it to the
// cart, merging with an existing entry for the same item. Unknown names and
// non-positive quantities come back as declined results, never errors.
func (c *Cart) AddItem(name string, quantity int) domain.Result {
	if quantity < 1 {
		return domain.Declined("Quantity must be at least 1.")
	}

	item, ok := c.resolver.Resolve(name)
	if !ok {
		return domain.Declined(fmt.Sprintf("Sorry, I couldn't find %s in our catalog.", name))
	}

	if entry, exists := c.entries[item.ID]; exists {
		entry.Quantity += quantity
	} else {
		c.entries[item.ID] = &domain.CartEntry{Item: item, Quantity: quantity}
		c.order = append(c.order, item.ID)
	}
	return domain.Accepted(fmt.Sprintf("Added %d %s to your cart.", quantity, item.Name))
}

// RemoveItem resolves name and deletes the whole entry — partial-quantity
// removal is not supported.
func (c *Cart) RemoveItem(name string) domain.Result {
	item, ok := c.resolver.Resolve(name)
	if !ok {
		return domain.Declined(fmt.Sprintf("Could not find %s to remove.", name))
	}

	if _, exists := c.entries[item.ID]; !exists {
		return domain.Declined(fmt.Sprintf("%s is not in your cart.", item.Name))
	}

	delete(c.entries, item.ID)
	for i, id := range c.order {
		if id == item.ID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return domain.Accepted(fmt.Sprintf("Removed %s from your cart.", item.Name))
}

// Details renders the cart as conversational text, one line per entry with
// the line subtotal, then the total. Rounding happens only here, at display
// time — Total stays exact.
func (c *Cart) Details() string {
	if len(c.entries) == 0 {
		return "Your cart is empty."
	}

	details := "Here is what you have in your cart:\n"
	for _, entry := range c.Items() {
		details += fmt.Sprintf("- %dx %s ($%s)\n", entry.Quantity, entry.Item.Name, entry.Subtotal().StringFixed(2))
	}
	details += fmt.Sprintf("\nTotal: $%s", c.Total().StringFixed(2))
	return details
}

// Items returns a snapshot of the entries in insertion order.
func (c *Cart) Items() []domain.CartEntry {
	items := make([]domain.CartEntry, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.entries[id])
	}
	return items
}

// Total returns the exact sum of price * quantity over all entries.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c.entries {
		total = total.Add(entry.Subtotal())
	}
	return total
}

// Len returns the number of distinct items in the cart.
func (c *Cart) Len() int {
	return len(c.entries)
}

// Clear empties the cart. The catalog is untouched.
func (c *Cart) Clear() {
	c.entries = make(map[string]*domain.CartEntry)
	c.order = nil
}
