package ledger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/voicecart/internal/grocery/cart"
	"github.com/jcmexdev/voicecart/internal/grocery/catalog"
	"github.com/jcmexdev/voicecart/internal/grocery/domain"
)

func testResolver() *catalog.Resolver {
	return catalog.NewResolver([]domain.CatalogItem{
		{ID: "m1", Name: "Whole Milk", Price: decimal.RequireFromString("3.50")},
		{ID: "b1", Name: "Sourdough Bread", Price: decimal.RequireFromString("5.00")},
	})
}

func openTestLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	l, err := Open(path)
	require.NoError(t, err)
	return l, path
}

func TestOpen_CreatesEmptyStore(t *testing.T) {
	_, path := openTestLedger(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestPlaceOrder_EmptyCartRejectedBeforeAnySideEffect(t *testing.T) {
	l, path := openTestLedger(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	res, err := l.PlaceOrder(context.Background(), cart.New(testResolver()))
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "Cannot place an empty order.", res.Message)
	assert.Empty(t, res.OrderID)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPlaceOrder_AppendsRecordAndClearsCart(t *testing.T) {
	l, _ := openTestLedger(t)
	c := cart.New(testResolver())
	require.True(t, c.AddItem("whole milk", 2).OK)
	require.True(t, c.AddItem("bread", 1).OK)
	wantTotal := c.Total()

	res, err := l.PlaceOrder(context.Background(), c)
	require.NoError(t, err)
	require.True(t, res.OK)
	assert.True(t, strings.HasPrefix(res.OrderID, "ord_"))
	assert.Contains(t, res.Message, res.OrderID)

	orders, err := l.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, res.OrderID, order.OrderID)
	assert.Equal(t, domain.StatusReceived, order.Status)
	assert.True(t, order.Total.Equal(wantTotal))
	require.Len(t, order.Items, 2)
	assert.Equal(t, "m1", order.Items[0].ID)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// Cart cleared by successful placement.
	assert.Zero(t, c.Len())
	assert.Equal(t, "Your cart is empty.", c.Details())
}

func TestPlaceOrder_GeneratesDistinctIDs(t *testing.T) {
	l, _ := openTestLedger(t)
	seen := make(map[string]bool)

	for i := 0; i < 5; i++ {
		c := cart.New(testResolver())
		require.True(t, c.AddItem("bread", 1).OK)
		res, err := l.PlaceOrder(context.Background(), c)
		require.NoError(t, err)
		require.True(t, res.OK)
		assert.False(t, seen[res.OrderID], "duplicate id %s", res.OrderID)
		seen[res.OrderID] = true
	}
}

func TestOrderStatus_EmptyStore(t *testing.T) {
	l, _ := openTestLedger(t)

	msg, err := l.OrderStatus(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "No orders found.", msg)
}

func TestOrderStatus_NoArgumentReturnsLatest(t *testing.T) {
	l, _ := openTestLedger(t)

	var lastID string
	for i := 0; i < 3; i++ {
		c := cart.New(testResolver())
		require.True(t, c.AddItem("whole milk", 1).OK)
		res, err := l.PlaceOrder(context.Background(), c)
		require.NoError(t, err)
		lastID = res.OrderID
	}

	msg, err := l.OrderStatus(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Your latest order ("+lastID+") is currently: received.", msg)
}

func TestOrderStatus_ByIDAndMiss(t *testing.T) {
	l, _ := openTestLedger(t)
	c := cart.New(testResolver())
	require.True(t, c.AddItem("bread", 2).OK)
	res, err := l.PlaceOrder(context.Background(), c)
	require.NoError(t, err)

	msg, err := l.OrderStatus(context.Background(), res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "Order "+res.OrderID+" is currently: received.", msg)

	msg, err = l.OrderStatus(context.Background(), "ord_missing")
	require.NoError(t, err)
	assert.Equal(t, "Order ord_missing not found.", msg)
}

func TestLoad_CorruptStoreTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o644))

	l, err := Open(path)
	require.NoError(t, err)

	msg, err := l.OrderStatus(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "No orders found.", msg)

	// Placement over a corrupt store starts a fresh collection.
	c := cart.New(testResolver())
	require.True(t, c.AddItem("bread", 1).OK)
	res, err := l.PlaceOrder(context.Background(), c)
	require.NoError(t, err)
	require.True(t, res.OK)

	orders, err := l.Orders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestPlaceOrder_ConcurrentPlacementsBothSurvive(t *testing.T) {
	l, path := openTestLedger(t)

	const n = 8
	var wg sync.WaitGroup
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := cart.New(testResolver())
			require.True(t, c.AddItem("whole milk", 1).OK)
			res, err := l.PlaceOrder(context.Background(), c)
			assert.NoError(t, err)
			assert.True(t, res.OK)
			ids[i] = res.OrderID
		}(i)
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(data, &orders))
	require.Len(t, orders, n)

	stored := make(map[string]bool, n)
	for _, o := range orders {
		stored[o.OrderID] = true
	}
	for _, id := range ids {
		assert.True(t, stored[id], "order %s lost", id)
	}
}

func TestRoundTrip_TotalsSurviveReload(t *testing.T) {
	l, path := openTestLedger(t)
	c := cart.New(testResolver())
	require.True(t, c.AddItem("whole milk", 3).OK) // 10.50
	res, err := l.PlaceOrder(context.Background(), c)
	require.NoError(t, err)

	reloaded, err := Open(path)
	require.NoError(t, err)

	orders, err := reloaded.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, res.OrderID, orders[0].OrderID)
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("10.50")))
}
