package cart

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avaldez/nookstop-backend/pkg/config"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Service exposes cart read/mutate operations. Mutations against the same
// user are serialized so concurrent requests never interleave a load/save
// cycle.
type Service interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, userID string, input AddItemInput) (*Cart, error)
	UpdateQuantity(ctx context.Context, userID string, sku string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID string, sku string) (*Cart, error)
	Clear(ctx context.Context, userID string) error
}

// AddItemInput captures the payload for adding a product to the cart.
type AddItemInput struct {
	SKU      string
	Name     string
	Price    decimal.Decimal
	Quantity int
	ImageURL string
}

type service struct {
	store       Store
	maxQuantity int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService builds a cart service on top of the provided store.
func NewService(store Store, cfg config.CartConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	maxQty := cfg.MaxQuantity
	if maxQty <= 0 {
		maxQty = 99
	}
	return &service{
		store:       store,
		maxQuantity: maxQty,
		locks:       map[string]*sync.Mutex{},
	}, nil
}

// userLock returns the mutex guarding a single user's cart.
func (s *service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// Get returns the current cart snapshot for the user.
func (s *service) Get(ctx context.Context, userID string) (*Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return cart, nil
}

// AddItem appends a new line item, or bumps the quantity when the SKU is
// already present.
func (s *service) AddItem(ctx context.Context, userID string, input AddItemInput) (*Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if strings.TrimSpace(input.SKU) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sku is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	qty := input.Quantity
	if qty <= 0 {
		qty = 1
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	if idx := cart.indexOf(input.SKU); idx >= 0 {
		cart.Items[idx].Quantity = s.clampQuantity(cart.Items[idx].Quantity + qty)
	} else {
		cart.Items = append(cart.Items, LineItem{
			SKU:      input.SKU,
			Name:     input.Name,
			Price:    input.Price.Round(2),
			Quantity: s.clampQuantity(qty),
			ImageURL: input.ImageURL,
		})
	}
	cart.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}

// UpdateQuantity sets the quantity for an existing line item.
func (s *service) UpdateQuantity(ctx context.Context, userID string, sku string, quantity int) (*Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if strings.TrimSpace(sku) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sku is required")
	}
	if quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	idx := cart.indexOf(sku)
	if idx < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not in cart")
	}

	cart.Items[idx].Quantity = s.clampQuantity(quantity)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}

// RemoveItem deletes a line item by SKU.
func (s *service) RemoveItem(ctx context.Context, userID string, sku string) (*Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if strings.TrimSpace(sku) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sku is required")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	idx := cart.indexOf(sku)
	if idx < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not in cart")
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}

// Clear removes every item from the user's cart.
func (s *service) Clear(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) clampQuantity(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > s.maxQuantity {
		return s.maxQuantity
	}
	return qty
}
