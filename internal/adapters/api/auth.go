package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
)

type AuthService struct {
	client *Client
}

var _ ports.AuthAPI = (*AuthService)(nil)

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (domain.UserProfile, error) {
	var payload userSchema
	err := s.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/register/",
		body: registerRequest{
			Username:        reg.Username,
			Email:           reg.Email,
			Password:        reg.Password,
			PasswordConfirm: reg.PasswordConfirm,
			FirstName:       reg.FirstName,
			LastName:        reg.LastName,
		},
	}, &payload)
	if err != nil {
		return domain.UserProfile{}, err
	}

	return payload.toDomain(), nil
}

func (s *AuthService) ObtainToken(ctx context.Context, creds domain.LoginCredentials) (domain.Credential, error) {
	var payload tokenResponse
	err := s.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/token/",
		body:   tokenRequest{Username: creds.Username, Password: creds.Password},
	}, &payload)
	if err != nil {
		return domain.Credential{}, err
	}
	if payload.Access == "" {
		return domain.Credential{}, fmt.Errorf("token response missing access token")
	}

	return domain.Credential{AccessToken: payload.Access, RefreshToken: payload.Refresh}, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	var payload tokenResponse
	err := s.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/token/refresh/",
		body:   refreshRequest{Refresh: refreshToken},
	}, &payload)
	if err != nil {
		return "", err
	}
	if payload.Access == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}

	return payload.Access, nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (domain.UserProfile, error) {
	var payload userSchema
	err := s.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/users/me/",
		authed: true,
	}, &payload)
	if err != nil {
		return domain.UserProfile{}, err
	}

	return payload.toDomain(), nil
}

type userSchema struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (u userSchema) toDomain() domain.UserProfile {
	return domain.UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
