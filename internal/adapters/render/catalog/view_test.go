package catalog

import (
	"testing"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderProductsListsEachProduct(t *testing.T) {
	t.Parallel()

	products := []domain.Product{
		{ID: 1, Name: "Mug", Price: "9.99", Stock: 3},
		{ID: 2, Name: "Plate", Price: "4.50", Stock: 0, IsFeatured: true},
	}

	out := RenderProducts(products)
	assert.Contains(t, out, "products: 2")
	assert.Contains(t, out, "Mug")
	assert.Contains(t, out, "Plate")
	assert.Contains(t, out, "featured")
	assert.Contains(t, out, "out of stock")
}

func TestRenderProductsEmpty(t *testing.T) {
	t.Parallel()

	assert.Contains(t, RenderProducts(nil), "No products matched.")
}

func TestRenderProductShowsDetail(t *testing.T) {
	t.Parallel()

	product := domain.Product{
		ID:          1,
		Name:        "Mug",
		Description: "A sturdy mug.",
		Price:       "9.99",
		Category:    "kitchen",
		Stock:       3,
		Rating:      4.5,
	}

	out := RenderProduct(product)
	assert.Contains(t, out, "Mug")
	assert.Contains(t, out, "category: kitchen")
	assert.Contains(t, out, "stock: 3")
	assert.Contains(t, out, "rating: 4.5")
	assert.Contains(t, out, "A sturdy mug.")
}

func TestRenderReviewsShowsStars(t *testing.T) {
	t.Parallel()

	reviews := []domain.Review{
		{ID: 1, User: "sam", Rating: 3, Comment: "Decent."},
	}

	out := RenderReviews(reviews)
	assert.Contains(t, out, "reviews: 1")
	assert.Contains(t, out, "sam")
	assert.Contains(t, out, "***")
	assert.Contains(t, out, "Decent.")
}

func TestRenderReviewsEmpty(t *testing.T) {
	t.Parallel()

	assert.Contains(t, RenderReviews(nil), "No reviews yet.")
}

func TestRenderCategories(t *testing.T) {
	t.Parallel()

	categories := []domain.Category{
		{ID: 1, Name: "Kitchen", Slug: "kitchen"},
	}

	out := RenderCategories(categories)
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "Kitchen")
	assert.Contains(t, out, "kitchen")

	assert.Contains(t, RenderCategories(nil), "No categories.")
}
