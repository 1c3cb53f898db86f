package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
)

type AddressService struct {
	client *Client
}

var _ ports.AddressAPI = (*AddressService)(nil)

func NewAddressService(client *Client) *AddressService {
	return &AddressService{client: client}
}

func (s *AddressService) List(ctx context.Context) ([]domain.Address, error) {
	var payload []addressSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/addresses/",
		authed: true,
	}, &payload)
	if err != nil {
		return nil, err
	}

	addresses := make([]domain.Address, 0, len(payload))
	for _, entry := range payload {
		addresses = append(addresses, entry.toDomain())
	}
	return addresses, nil
}

func (s *AddressService) Create(ctx context.Context, addr domain.Address) (domain.Address, error) {
	var payload addressSchema
	err := s.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/addresses/",
		body:   toAddressSchema(addr),
		authed: true,
	}, &payload)
	if err != nil {
		return domain.Address{}, err
	}

	return payload.toDomain(), nil
}

func (s *AddressService) Update(ctx context.Context, addr domain.Address) (domain.Address, error) {
	if addr.ID == 0 {
		return domain.Address{}, errors.New("address id is required")
	}

	var payload addressSchema
	err := s.client.do(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/addresses/%d/", addr.ID),
		body:   toAddressSchema(addr),
		authed: true,
	}, &payload)
	if err != nil {
		return domain.Address{}, err
	}

	return payload.toDomain(), nil
}

func (s *AddressService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/addresses/%d/", id),
		authed: true,
	}, nil)
}

type addressSchema struct {
	ID         int64  `json:"id,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"is_default"`
}

func toAddressSchema(addr domain.Address) addressSchema {
	return addressSchema{
		ID:         addr.ID,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		State:      addr.State,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
		IsDefault:  addr.IsDefault,
	}
}

func (a addressSchema) toDomain() domain.Address {
	return domain.Address{
		ID:         a.ID,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsDefault:  a.IsDefault,
	}
}
