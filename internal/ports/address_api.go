package ports

import (
	"context"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
)

type AddressAPI interface {
	List(ctx context.Context) ([]domain.Address, error)
	Create(ctx context.Context, addr domain.Address) (domain.Address, error)
	Update(ctx context.Context, addr domain.Address) (domain.Address, error)
	Delete(ctx context.Context, id int64) error
}
