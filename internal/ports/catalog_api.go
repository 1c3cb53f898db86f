package ports

import (
	"context"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
)

type ProductAPI interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Reviews(ctx context.Context, productID int64) ([]domain.Review, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
