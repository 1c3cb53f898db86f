package cart

import (
	"fmt"
	"strconv"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func Render(cart domain.Cart) string {
	return renderView(cart, newStyles())
}

func renderView(cart domain.Cart, s styles) string {
	lines := []string{
		s.title.Render("Your Cart"),
		s.header.Render(fmt.Sprintf("items: %d", cart.TotalQuantity())),
	}

	if cart.IsEmpty() {
		lines = append(lines, s.empty.Render("Your cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, item := range cart.Items {
		lines = append(lines, renderItem(item, s))
	}

	if total, ok := cartTotal(cart); ok {
		lines = append(lines, s.section.Render(s.total.Render(fmt.Sprintf("Total: %.2f", total))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderItem(item domain.CartItem, s styles) string {
	name := s.item.Render(item.Product.Name)
	qty := s.quantity.Render(fmt.Sprintf("x%d", item.Quantity))
	price := s.price.Render(item.Product.Price)
	meta := s.status.Render(fmt.Sprintf("item %d", item.ID))

	return fmt.Sprintf("%s %s  %s  %s", name, qty, price, meta)
}

// cartTotal sums line prices for display only; the server stays
// authoritative for any amount that matters.
func cartTotal(cart domain.Cart) (float64, bool) {
	total := 0.0
	for _, item := range cart.Items {
		price, err := strconv.ParseFloat(item.Product.Price, 64)
		if err != nil {
			return 0, false
		}
		total += price * float64(item.Quantity)
	}
	return total, true
}
