package cart

import (
	"testing"
	"time"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleCart() domain.Cart {
	return domain.Cart{
		ID: 1,
		Items: []domain.CartItem{
			{ID: 3, Product: domain.ProductSummary{ID: 10, Name: "Mug", Price: "9.99"}, Quantity: 2},
			{ID: 4, Product: domain.ProductSummary{ID: 11, Name: "Plate", Price: "4.50"}, Quantity: 1},
		},
	}
}

func TestRenderListsEveryItem(t *testing.T) {
	t.Parallel()

	out := Render(sampleCart())

	assert.Contains(t, out, "Your Cart")
	assert.Contains(t, out, "items: 3")
	assert.Contains(t, out, "Mug")
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "Plate")
	assert.Contains(t, out, "Total: 24.48")
}

func TestRenderEmptyCart(t *testing.T) {
	t.Parallel()

	out := Render(domain.Cart{})

	assert.Contains(t, out, "Your cart is empty.")
	assert.NotContains(t, out, "Total:")
}

func TestRenderSkipsTotalOnUnparseablePrice(t *testing.T) {
	t.Parallel()

	cart := domain.Cart{
		Items: []domain.CartItem{
			{ID: 1, Product: domain.ProductSummary{Name: "Mystery", Price: "n/a"}, Quantity: 1},
		},
	}

	out := Render(cart)
	assert.Contains(t, out, "Mystery")
	assert.NotContains(t, out, "Total:")
}

func TestRenderOrdersListsStatusAndTotal(t *testing.T) {
	t.Parallel()

	orders := []domain.Order{
		{ID: 1, Status: domain.OrderStatusPending, Total: "24.48", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Status: domain.OrderStatusCancelled, Total: "4.50", CreatedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
	}

	out := RenderOrders(orders)
	assert.Contains(t, out, "orders: 2")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "cancelled")
	assert.Contains(t, out, "2026-08-01")
}

func TestRenderOrdersEmpty(t *testing.T) {
	t.Parallel()

	assert.Contains(t, RenderOrders(nil), "No orders yet.")
}

func TestRenderOrderShowsItemsAndTotal(t *testing.T) {
	t.Parallel()

	order := domain.Order{
		ID:     7,
		Status: domain.OrderStatusShipped,
		Items: []domain.OrderItem{
			{ID: 1, Product: domain.ProductSummary{Name: "Mug"}, Quantity: 2, Price: "9.99"},
		},
		Total:     "19.98",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	out := RenderOrder(order)
	assert.Contains(t, out, "Order #7")
	assert.Contains(t, out, "status:")
	assert.Contains(t, out, "shipped")
	assert.Contains(t, out, "Mug")
	assert.Contains(t, out, "Total: 19.98")
}
