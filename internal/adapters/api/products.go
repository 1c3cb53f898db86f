package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
)

type ProductService struct {
	client *Client
}

var _ ports.ProductAPI = (*ProductService)(nil)

func NewProductService(client *Client) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.MinPrice != "" {
		query.Set("min_price", filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		query.Set("max_price", filter.MaxPrice)
	}
	if filter.Ordering != "" {
		query.Set("ordering", filter.Ordering)
	}

	var payload []productSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/",
		query:  query,
		authed: true,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return productsToDomain(payload), nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (domain.Product, error) {
	var payload productSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/products/%d/", id),
		authed: true,
	}, &payload)
	if err != nil {
		return domain.Product{}, err
	}

	return payload.toDomain(), nil
}

func (s *ProductService) Featured(ctx context.Context) ([]domain.Product, error) {
	var payload []productSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/featured/",
		authed: true,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return productsToDomain(payload), nil
}

func (s *ProductService) Reviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	var payload []reviewSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/products/%d/reviews/", productID),
		authed: true,
	}, &payload)
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(payload))
	for _, entry := range payload {
		reviews = append(reviews, entry.toDomain())
	}
	return reviews, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]domain.Category, error) {
	var payload []categorySchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/categories/",
		authed: true,
	}, &payload)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(payload))
	for _, entry := range payload {
		categories = append(categories, domain.Category(entry))
	}
	return categories, nil
}

type productSchema struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	IsFeatured  bool    `json:"is_featured"`
	Rating      float64 `json:"rating"`
}

func (p productSchema) toDomain() domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Image:       p.Image,
		IsFeatured:  p.IsFeatured,
		Rating:      p.Rating,
	}
}

func productsToDomain(payload []productSchema) []domain.Product {
	products := make([]domain.Product, 0, len(payload))
	for _, entry := range payload {
		products = append(products, entry.toDomain())
	}
	return products
}

type reviewSchema struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product"`
	User      string    `json:"user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (r reviewSchema) toDomain() domain.Review {
	return domain.Review{
		ID:        r.ID,
		ProductID: r.ProductID,
		User:      r.User,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

type categorySchema struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
