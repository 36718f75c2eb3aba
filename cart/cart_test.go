package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wed-storefront/models"
)

func product(id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Currency: "EGP",
		Images:   []string{"/img/" + id + ".jpg"},
	}
}

func TestAddMergesLines(t *testing.T) {
	c := New()
	c.Add(product("a", 100))
	c.Add(product("b", 50))
	c.Add(product("a", 100))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "b", lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestLinesKeepFirstAddedOrder(t *testing.T) {
	c := New()
	c.Add(product("b", 50))
	c.Add(product("a", 100))
	c.Add(product("b", 50))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "b", lines[0].ProductID)
	assert.Equal(t, "a", lines[1].ProductID)
}

func TestRemoveDecrementsAndDeletesAtZero(t *testing.T) {
	c := New()
	c.Add(product("a", 100))
	c.Add(product("a", 100))

	c.Remove("a")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	c.Remove("a")
	assert.Empty(t, c.Lines())
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	c := New()
	c.Add(product("a", 100))
	before := c.Lines()

	c.Remove("missing")

	assert.Equal(t, before, c.Lines())
	assert.Equal(t, Totals{Count: 1, Subtotal: 100}, c.Totals())
}

func TestRemoveAllDeletesRegardlessOfQuantity(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.Add(product("a", 100))
	}
	c.Add(product("b", 50))

	c.RemoveAll("a")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "b", lines[0].ProductID)
}

func TestTotalsRecomputedEachCall(t *testing.T) {
	c := New()
	c.Add(product("a", 100))
	assert.Equal(t, Totals{Count: 1, Subtotal: 100}, c.Totals())

	c.Add(product("b", 50))
	c.Add(product("b", 50))
	assert.Equal(t, Totals{Count: 3, Subtotal: 200}, c.Totals())

	c.Remove("a")
	assert.Equal(t, Totals{Count: 2, Subtotal: 100}, c.Totals())

	c.Clear()
	assert.Equal(t, Totals{Count: 0, Subtotal: 0}, c.Totals())
	assert.Empty(t, c.Lines())
}

func TestQuantityNeverNegative(t *testing.T) {
	c := New()
	c.Add(product("a", 100))
	for i := 0; i < 10; i++ {
		c.Remove("a")
	}

	assert.Empty(t, c.Lines())
	assert.Equal(t, Totals{}, c.Totals())
}

func TestZeroPriceProductAccepted(t *testing.T) {
	c := New()
	c.Add(product("free", 0))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 0.0, lines[0].Price)
	assert.Equal(t, Totals{Count: 1, Subtotal: 0}, c.Totals())
}

func TestSnapshotUnaffectedByLaterCatalogEdits(t *testing.T) {
	p := product("a", 100)
	c := New()
	c.Add(p)

	// Simulate an admin price change after the line was captured.
	p.Price = 999
	p.Name = "Renamed"

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 100.0, lines[0].Price)
	assert.Equal(t, "Product a", lines[0].Name)
	assert.Equal(t, Totals{Count: 1, Subtotal: 100}, c.Totals())
}

func TestSnapshotCapturesPrimaryImage(t *testing.T) {
	c := New()
	c.Add(models.Product{ID: "a", Images: []string{"/img/1.jpg", "/img/2.jpg"}})
	c.Add(models.Product{ID: "b"})

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "/img/1.jpg", lines[0].Image)
	assert.Equal(t, "", lines[1].Image)
}
