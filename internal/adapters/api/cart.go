package api

import (
	"context"
	"net/http"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
)

type CartService struct {
	client *Client
}

var _ ports.CartAPI = (*CartService)(nil)

func NewCartService(client *Client) *CartService {
	return &CartService{client: client}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateItemRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type removeItemRequest struct {
	ItemID int64 `json:"item_id"`
}

func (s *CartService) Get(ctx context.Context) (domain.Cart, error) {
	var payload cartSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/cart/my_cart/",
		authed: true,
	}, &payload)
	if err != nil {
		return domain.Cart{}, err
	}

	return payload.toDomain(), nil
}

func (s *CartService) AddItem(ctx context.Context, productID int64, quantity int) error {
	return s.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/cart/add_item/",
		body:   addItemRequest{ProductID: productID, Quantity: quantity},
		authed: true,
	}, nil)
}

func (s *CartService) UpdateItem(ctx context.Context, itemID int64, quantity int) error {
	return s.client.do(ctx, request{
		method: http.MethodPatch,
		path:   "/cart/update_item/",
		body:   updateItemRequest{ItemID: itemID, Quantity: quantity},
		authed: true,
	}, nil)
}

func (s *CartService) RemoveItem(ctx context.Context, itemID int64) error {
	return s.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/remove_item/",
		body:   removeItemRequest{ItemID: itemID},
		authed: true,
	}, nil)
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/clear/",
		authed: true,
	}, nil)
}

func (s *CartService) Checkout(ctx context.Context) (domain.Order, error) {
	var payload orderSchema
	err := s.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/cart/checkout/",
		authed: true,
	}, &payload)
	if err != nil {
		return domain.Order{}, err
	}

	return payload.toDomain(), nil
}

type cartItemSchema struct {
	ID       int64                `json:"id"`
	Product  productSummarySchema `json:"product"`
	Quantity int                  `json:"quantity"`
}

type cartSchema struct {
	ID    int64            `json:"id"`
	Items []cartItemSchema `json:"items"`
}

type productSummarySchema struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

func (c cartSchema) toDomain() domain.Cart {
	items := make([]domain.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, domain.CartItem{
			ID:       item.ID,
			Product:  domain.ProductSummary(item.Product),
			Quantity: item.Quantity,
		})
	}
	return domain.Cart{ID: c.ID, Items: items}
}
