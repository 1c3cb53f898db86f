package catalog

import (
	"fmt"
	"strings"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func RenderProducts(products []domain.Product) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Products"),
		s.header.Render(fmt.Sprintf("products: %d", len(products))),
	}

	if len(products) == 0 {
		lines = append(lines, s.empty.Render("No products matched."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, product := range products {
		lines = append(lines, renderProductLine(product, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderProduct(product domain.Product) string {
	s := newStyles()

	lines := []string{
		s.name.Render(product.Name),
		s.price.Render(product.Price),
	}
	if product.Category != "" {
		lines = append(lines, s.meta.Render("category: "+product.Category))
	}
	lines = append(lines, s.meta.Render(fmt.Sprintf("stock: %d", product.Stock)))
	if product.Rating > 0 {
		lines = append(lines, s.meta.Render(fmt.Sprintf("rating: %.1f", product.Rating)))
	}
	if product.Description != "" {
		lines = append(lines, s.section.Render(s.detail.Render(product.Description)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderReviews(reviews []domain.Review) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Reviews"),
		s.header.Render(fmt.Sprintf("reviews: %d", len(reviews))),
	}

	if len(reviews) == 0 {
		lines = append(lines, s.empty.Render("No reviews yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, review := range reviews {
		stars := strings.Repeat("*", review.Rating)
		head := fmt.Sprintf("%s %s", s.name.Render(review.User), s.price.Render(stars))
		lines = append(lines, head, s.detail.Render(review.Comment))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderCategories(categories []domain.Category) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Categories"),
	}

	if len(categories) == 0 {
		lines = append(lines, s.empty.Render("No categories."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, category := range categories {
		lines = append(lines, fmt.Sprintf("%s %s", s.name.Render(category.Name), s.meta.Render(category.Slug)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProductLine(product domain.Product, s styles) string {
	parts := []string{
		s.name.Render(product.Name),
		s.price.Render(product.Price),
		s.meta.Render(fmt.Sprintf("id %d", product.ID)),
	}
	if product.IsFeatured {
		parts = append(parts, s.badge.Render("featured"))
	}
	if product.Stock == 0 {
		parts = append(parts, s.badge.Render("out of stock"))
	}

	return strings.Join(parts, "  ")
}
