package application

import (
	"context"
	"sync"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
	"github.com/ObaroAwowede/Shopify-frontend/internal/ports"
	"github.com/rs/zerolog"
)

const signInMessage = "Please sign in to manage your cart."

// CartSynchronizer holds the authoritative in-memory cart snapshot and
// keeps it consistent with the server: every mutation is followed by a
// refetch of the canonical cart before the operation reports back.
// Operations are serialized; two concurrent mutations never interleave
// their mutate/refetch windows.
type CartSynchronizer struct {
	session *Session
	api     ports.CartAPI
	logger  zerolog.Logger

	mu       sync.Mutex
	snapshot *domain.Cart
}

func NewCartSynchronizer(session *Session, api ports.CartAPI, logger zerolog.Logger) *CartSynchronizer {
	return &CartSynchronizer{
		session: session,
		api:     api,
		logger:  logger,
	}
}

// Cart returns the current snapshot, fetching it when the session just
// became authenticated. Unauthenticated callers get an empty cart; the
// snapshot is discarded the moment the session is no longer
// authenticated.
func (c *CartSynchronizer) Cart(ctx context.Context) (domain.Cart, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.IsAuthenticated() {
		c.snapshot = nil
		return domain.Cart{}, domain.ErrNotAuthenticated
	}

	if c.snapshot == nil {
		if err := c.resyncLocked(ctx); err != nil {
			return domain.Cart{}, err
		}
	}

	return *c.snapshot, nil
}

// Refresh forces a refetch of the canonical cart. Failures are logged
// and swallowed so background refetches never interrupt the caller.
func (c *CartSynchronizer) Refresh(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.IsAuthenticated() {
		c.snapshot = nil
		return
	}

	if err := c.resyncLocked(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("cart refetch failed")
	}
}

func (c *CartSynchronizer) AddItem(ctx context.Context, productID int64, quantity int) Result {
	if quantity < 1 {
		quantity = 1
	}
	return c.mutate(ctx, func(ctx context.Context) error {
		return c.api.AddItem(ctx, productID, quantity)
	})
}

// UpdateItem sets an item's quantity. Quantities below one are the
// caller's problem to route to RemoveItem; this component passes the
// request through untouched.
func (c *CartSynchronizer) UpdateItem(ctx context.Context, itemID int64, quantity int) Result {
	return c.mutate(ctx, func(ctx context.Context) error {
		return c.api.UpdateItem(ctx, itemID, quantity)
	})
}

func (c *CartSynchronizer) RemoveItem(ctx context.Context, itemID int64) Result {
	return c.mutate(ctx, func(ctx context.Context) error {
		return c.api.RemoveItem(ctx, itemID)
	})
}

func (c *CartSynchronizer) Clear(ctx context.Context) Result {
	return c.mutate(ctx, func(ctx context.Context) error {
		return c.api.Clear(ctx)
	})
}

// Checkout converts the cart into an order and implicitly empties it.
func (c *CartSynchronizer) Checkout(ctx context.Context) CheckoutResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.IsAuthenticated() {
		c.snapshot = nil
		return CheckoutResult{Success: false, Error: signInMessage}
	}

	order, err := c.api.Checkout(ctx)
	if err != nil {
		return CheckoutResult{Success: false, Error: ErrorMessage(err)}
	}

	if err := c.resyncLocked(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("cart refetch after checkout failed")
	}

	return CheckoutResult{Success: true, OrderID: order.ID}
}

// mutate is the shared perform-remote-effect-then-resync combinator.
// While unauthenticated it is a no-op: no network call, a friendly
// failure result, never a panic.
func (c *CartSynchronizer) mutate(ctx context.Context, op func(context.Context) error) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.IsAuthenticated() {
		c.snapshot = nil
		return failureResult(signInMessage)
	}

	if err := op(ctx); err != nil {
		return failureResult(ErrorMessage(err))
	}

	if err := c.resyncLocked(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("cart refetch after mutation failed")
	}

	return okResult()
}

func (c *CartSynchronizer) resyncLocked(ctx context.Context) error {
	cart, err := c.api.Get(ctx)
	if err != nil {
		return err
	}
	c.snapshot = &cart
	return nil
}
