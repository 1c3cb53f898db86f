package application

import (
	"context"
	"errors"
	"sync"

	"github.com/ObaroAwowede/Shopify-frontend/internal/domain"
)

type fakeAuthAPI struct {
	mu    sync.Mutex
	calls []string

	registerFn func(domain.Registration) (domain.UserProfile, error)
	obtainFn   func(domain.LoginCredentials) (domain.Credential, error)
	refreshFn  func(string) (string, error)
	currentFn  func() (domain.UserProfile, error)
}

func (f *fakeAuthAPI) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAuthAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAuthAPI) Register(_ context.Context, reg domain.Registration) (domain.UserProfile, error) {
	f.record("register")
	if f.registerFn == nil {
		return domain.UserProfile{}, errors.New("register not stubbed")
	}
	return f.registerFn(reg)
}

func (f *fakeAuthAPI) ObtainToken(_ context.Context, creds domain.LoginCredentials) (domain.Credential, error) {
	f.record("obtain_token")
	if f.obtainFn == nil {
		return domain.Credential{}, errors.New("obtain token not stubbed")
	}
	return f.obtainFn(creds)
}

func (f *fakeAuthAPI) RefreshToken(_ context.Context, refreshToken string) (string, error) {
	f.record("refresh_token")
	if f.refreshFn == nil {
		return "", errors.New("refresh not stubbed")
	}
	return f.refreshFn(refreshToken)
}

func (f *fakeAuthAPI) CurrentUser(_ context.Context) (domain.UserProfile, error) {
	f.record("current_user")
	if f.currentFn == nil {
		return domain.UserProfile{}, errors.New("current user not stubbed")
	}
	return f.currentFn()
}

type memCredStore struct {
	mu   sync.Mutex
	cred domain.Credential
}

func (m *memCredStore) Get(_ context.Context) (domain.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cred, nil
}

func (m *memCredStore) Set(_ context.Context, cred domain.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = cred
	return nil
}

func (m *memCredStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = domain.Credential{}
	return nil
}

// fakeCartAPI mimics the server cart resource in memory and records
// every call so ordering and no-op invariants can be asserted.
type fakeCartAPI struct {
	mu     sync.Mutex
	calls  []string
	nextID int64
	cart   domain.Cart
	orders int64

	failOn  string
	failErr error
}

func newFakeCartAPI() *fakeCartAPI {
	return &fakeCartAPI{nextID: 1}
}

// failNextCall makes the next call with the given name fail once.
func (f *fakeCartAPI) failNextCall(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn = name
	f.failErr = err
}

func (f *fakeCartAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if f.failErr != nil && f.failOn == name {
		err := f.failErr
		f.failOn = ""
		f.failErr = nil
		return err
	}
	return nil
}

func (f *fakeCartAPI) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeCartAPI) Get(_ context.Context) (domain.Cart, error) {
	if err := f.record("get"); err != nil {
		return domain.Cart{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	items := append([]domain.CartItem(nil), f.cart.Items...)
	return domain.Cart{ID: f.cart.ID, Items: items}, nil
}

func (f *fakeCartAPI) AddItem(_ context.Context, productID int64, quantity int) error {
	if err := f.record("add_item"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cart.Items {
		if f.cart.Items[i].Product.ID == productID {
			f.cart.Items[i].Quantity += quantity
			return nil
		}
	}
	f.cart.Items = append(f.cart.Items, domain.CartItem{
		ID:       f.nextID,
		Product:  domain.ProductSummary{ID: productID},
		Quantity: quantity,
	})
	f.nextID++
	return nil
}

func (f *fakeCartAPI) UpdateItem(_ context.Context, itemID int64, quantity int) error {
	if err := f.record("update_item"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cart.Items {
		if f.cart.Items[i].ID == itemID {
			f.cart.Items[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCartAPI) RemoveItem(_ context.Context, itemID int64) error {
	if err := f.record("remove_item"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cart.Items {
		if f.cart.Items[i].ID == itemID {
			f.cart.Items = append(f.cart.Items[:i], f.cart.Items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCartAPI) Clear(_ context.Context) error {
	if err := f.record("clear"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cart.Items = nil
	return nil
}

func (f *fakeCartAPI) Checkout(_ context.Context) (domain.Order, error) {
	if err := f.record("checkout"); err != nil {
		return domain.Order{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.cart.Items) == 0 {
		return domain.Order{}, &domain.RequestError{StatusCode: 400, Detail: "Cart is empty"}
	}
	f.orders++
	f.cart.Items = nil
	return domain.Order{ID: f.orders, Status: domain.OrderStatusPending}, nil
}
