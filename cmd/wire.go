package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ObaroAwowede/Shopify-frontend/internal/adapters/api"
	chainstore "github.com/ObaroAwowede/Shopify-frontend/internal/adapters/creds/chain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/application"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	baseURLKey     = "api.base_url"
	baseURLEnvVar  = "SHOPFRONT_API_URL"
	defaultBaseURL = "http://localhost:8000/api"
)

type app struct {
	session   *application.Session
	cart      *application.CartSynchronizer
	products  ports.ProductAPI
	orders    ports.OrderAPI
	addresses ports.AddressAPI
	logger    zerolog.Logger
	now       func() time.Time
}

func wireApp() (*app, error) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := viper.New()
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	if err := cfg.BindEnv(baseURLKey, baseURLEnvVar); err != nil {
		return nil, fmt.Errorf("bind api url env: %w", err)
	}

	credStore, err := chainstore.NewEnvFirstWithFileFallback(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	client, err := api.NewClient(api.Config{
		BaseURL:     cfg.GetString(baseURLKey),
		HTTPClient:  http.DefaultClient,
		Credentials: credStore,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	session := application.NewSession(api.NewAuthService(client), credStore, ports.SystemClock{}, logger)
	// The client refreshes through the session on a 401; the session in
	// turn authenticates through the client, hence the late wiring.
	client.SetRefresher(session.Refresh)

	return &app{
		session:   session,
		cart:      application.NewCartSynchronizer(session, api.NewCartService(client), logger),
		products:  api.NewProductService(client),
		orders:    api.NewOrderService(client),
		addresses: api.NewAddressService(client),
		logger:    logger,
		now:       time.Now,
	}, nil
}
