package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/voicecart/internal/grocery/catalog"
	"github.com/jcmexdev/voicecart/internal/grocery/domain"
)

func newTestCart() *Cart {
	items := []domain.CatalogItem{
		{ID: "m1", Name: "Whole Milk", Price: decimal.RequireFromString("3.50")},
		{ID: "m2", Name: "Almond Milk", Price: decimal.RequireFromString("4.25")},
		{ID: "b1", Name: "Sourdough Bread", Price: decimal.RequireFromString("5.00")},
	}
	return New(catalog.NewResolver(items))
}

func TestAddItem_InsertsAndMergesQuantity(t *testing.T) {
	c := newTestCart()

	res := c.AddItem("whole milk", 2)
	require.True(t, res.OK)
	assert.Equal(t, "Added 2 Whole Milk to your cart.", res.Message)

	res = c.AddItem("Whole Milk", 3)
	require.True(t, res.OK)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItem_UnknownNameIsDeclined(t *testing.T) {
	c := newTestCart()

	res := c.AddItem("caviar", 1)
	assert.False(t, res.OK)
	assert.Equal(t, "Sorry, I couldn't find caviar in our catalog.", res.Message)
	assert.Zero(t, c.Len())
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	c := newTestCart()

	for _, qty := range []int{0, -1, -10} {
		res := c.AddItem("whole milk", qty)
		assert.False(t, res.OK, "quantity %d", qty)
		assert.Equal(t, "Quantity must be at least 1.", res.Message)
	}
	assert.Zero(t, c.Len())
}

func TestRemoveItem_DeletesWholeEntry(t *testing.T) {
	c := newTestCart()
	require.True(t, c.AddItem("whole milk", 4).OK)

	res := c.RemoveItem("whole milk")
	require.True(t, res.OK)
	assert.Equal(t, "Removed Whole Milk from your cart.", res.Message)
	assert.Zero(t, c.Len())
}

func TestRemoveItem_NotInCartLeavesCartUnchanged(t *testing.T) {
	c := newTestCart()
	require.True(t, c.AddItem("bread", 1).OK)

	res := c.RemoveItem("almond milk")
	assert.False(t, res.OK)
	assert.Equal(t, "Almond Milk is not in your cart.", res.Message)
	assert.Equal(t, 1, c.Len())
}

func TestRemoveItem_UnresolvedName(t *testing.T) {
	c := newTestCart()

	res := c.RemoveItem("caviar")
	assert.False(t, res.OK)
	assert.Equal(t, "Could not find caviar to remove.", res.Message)
}

func TestTotal_ExactAfterAddsAndRemoves(t *testing.T) {
	c := newTestCart()
	require.True(t, c.AddItem("whole milk", 2).OK)    // 7.00
	require.True(t, c.AddItem("almond milk", 1).OK)   // 4.25
	require.True(t, c.AddItem("bread", 3).OK)         // 15.00
	require.True(t, c.RemoveItem("almond milk").OK)   // -4.25

	assert.True(t, c.Total().Equal(decimal.RequireFromString("22.00")),
		"got %s", c.Total())
}

func TestDetails_MatchesTotalAndFormatsSubtotals(t *testing.T) {
	c := newTestCart()
	require.True(t, c.AddItem("whole milk", 2).OK)
	require.True(t, c.AddItem("bread", 1).OK)

	want := "Here is what you have in your cart:\n" +
		"- 2x Whole Milk ($7.00)\n" +
		"- 1x Sourdough Bread ($5.00)\n" +
		"\nTotal: $12.00"
	assert.Equal(t, want, c.Details())
}

func TestDetails_Empty(t *testing.T) {
	c := newTestCart()
	assert.Equal(t, "Your cart is empty.", c.Details())
}

func TestClear(t *testing.T) {
	c := newTestCart()
	require.True(t, c.AddItem("whole milk", 2).OK)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.True(t, c.Total().Equal(decimal.Zero))
	assert.Equal(t, "Your cart is empty.", c.Details())
}

func TestItems_SnapshotKeepsInsertionOrder(t *testing.T) {
	c := newTestCart()
	require.True(t, c.AddItem("bread", 1).OK)
	require.True(t, c.AddItem("whole milk", 2).OK)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b1", items[0].Item.ID)
	assert.Equal(t, "m1", items[1].Item.ID)
}
