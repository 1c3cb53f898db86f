package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
)

type OrderService struct {
	client *Client
}

var _ ports.OrderAPI = (*OrderService)(nil)

func NewOrderService(client *Client) *OrderService {
	return &OrderService{client: client}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	var payload []orderSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/orders/",
		authed: true,
	}, &payload)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(payload))
	for _, entry := range payload {
		orders = append(orders, entry.toDomain())
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (domain.Order, error) {
	var payload orderSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/orders/%d/", id),
		authed: true,
	}, &payload)
	if err != nil {
		return domain.Order{}, err
	}

	return payload.toDomain(), nil
}

func (s *OrderService) Cancel(ctx context.Context, id int64) (domain.Order, error) {
	var payload orderSchema
	err := s.client.do(ctx, request{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/orders/%d/cancel/", id),
		authed: true,
	}, &payload)
	if err != nil {
		return domain.Order{}, err
	}

	return payload.toDomain(), nil
}

type orderItemSchema struct {
	ID       int64                `json:"id"`
	Product  productSummarySchema `json:"product"`
	Quantity int                  `json:"quantity"`
	Price    string               `json:"price"`
}

type orderSchema struct {
	ID        int64             `json:"id"`
	Status    string            `json:"status"`
	Items     []orderItemSchema `json:"items"`
	Total     string            `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
}

func (o orderSchema) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, domain.OrderItem{
			ID:       item.ID,
			Product:  domain.ProductSummary(item.Product),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return domain.Order{
		ID:        o.ID,
		Status:    domain.OrderStatus(o.Status),
		Items:     items,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}
