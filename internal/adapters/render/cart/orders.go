package cart

import (
	"fmt"
	"time"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func RenderOrders(orders []domain.Order) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Your Orders"),
		s.header.Render(fmt.Sprintf("orders: %d", len(orders))),
	}

	if len(orders) == 0 {
		lines = append(lines, s.empty.Render("No orders yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, order := range orders {
		lines = append(lines, renderOrderLine(order, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderOrder(order domain.Order) string {
	s := newStyles()

	lines := []string{
		s.title.Render(fmt.Sprintf("Order #%d", order.ID)),
		s.header.Render(fmt.Sprintf("placed %s", order.CreatedAt.Format(time.RFC1123))),
		statusLine(order, s),
	}

	for _, item := range order.Items {
		name := s.item.Render(item.Product.Name)
		qty := s.quantity.Render(fmt.Sprintf("x%d", item.Quantity))
		price := s.price.Render(item.Price)
		lines = append(lines, fmt.Sprintf("%s %s  %s", name, qty, price))
	}

	if order.Total != "" {
		lines = append(lines, s.section.Render(s.total.Render("Total: "+order.Total)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderOrderLine(order domain.Order, s styles) string {
	id := s.item.Render(fmt.Sprintf("#%d", order.ID))
	status := statusLabel(order, s)
	total := s.price.Render(order.Total)
	placed := s.status.Render(order.CreatedAt.Format("2006-01-02"))

	return fmt.Sprintf("%s %s  %s  %s", id, status, total, placed)
}

func statusLine(order domain.Order, s styles) string {
	return "status: " + statusLabel(order, s)
}

func statusLabel(order domain.Order, s styles) string {
	if order.Status == domain.OrderStatusCancelled {
		return s.warning.Render(string(order.Status))
	}
	return s.status.Render(string(order.Status))
}
