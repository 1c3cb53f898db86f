package ports

import (
	"context"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
)

// CartAPI is the stateless wrapper over the server cart resource. Each
// call is exactly one HTTP request; failures propagate unchanged.
type CartAPI interface {
	Get(ctx context.Context) (domain.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) error
	UpdateItem(ctx context.Context, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, itemID int64) error
	Clear(ctx context.Context) error
	Checkout(ctx context.Context) (domain.Order, error)
}
