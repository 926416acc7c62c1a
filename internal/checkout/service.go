package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/avaldez/nookstop-backend/internal/cart"
	"github.com/avaldez/nookstop-backend/internal/orders"
	"github.com/avaldez/nookstop-backend/pkg/db/models"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxRate is the flat sales tax applied to every checkout.
var TaxRate = decimal.RequireFromString("0.0775")

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartReader interface {
	Get(ctx context.Context, userID string) (*cart.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// Service executes checkout orchestration.
type Service interface {
	Execute(ctx context.Context, userID uuid.UUID) (*Receipt, error)
}

// Receipt summarizes a completed checkout.
type Receipt struct {
	OrderID   uuid.UUID       `json:"order_id"`
	OrderDate time.Time       `json:"order_date"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

type service struct {
	tx         txRunner
	cartSvc    cartReader
	ordersRepo orders.Repository
	now        func() time.Time
}

// NewService builds the checkout service.
func NewService(tx txRunner, cartSvc cartReader, ordersRepo orders.Repository) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if cartSvc == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{
		tx:         tx,
		cartSvc:    cartSvc,
		ordersRepo: ordersRepo,
		now:        time.Now,
	}, nil
}

// Execute converts the user's cart into a persisted order. The order row and
// its line items commit in one transaction; the cart is cleared only after the
// commit succeeds, so a failed checkout leaves the cart intact.
func (s *service) Execute(ctx context.Context, userID uuid.UUID) (*Receipt, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	snapshot, err := s.cartSvc.Get(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart contains no items")
	}

	subtotal := snapshot.Subtotal().Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(tax)

	order := &models.Order{
		ID:        uuid.New(),
		UserID:    userID,
		OrderDate: s.now().UTC(),
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
	}

	items := make([]models.OrderItem, len(snapshot.Items))
	for i, line := range snapshot.Items {
		items[i] = models.OrderItem{
			ID:       uuid.New(),
			OrderID:  order.ID,
			SKU:      line.SKU,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.ordersRepo.WithTx(tx)
		if _, err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
		}
		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Cart clear happens outside the transaction. Worst case a crash here
	// leaves a stale cart behind, never a lost order.
	if err := s.cartSvc.Clear(ctx, userID.String()); err != nil {
		return nil, err
	}

	return &Receipt{
		OrderID:   order.ID,
		OrderDate: order.OrderDate,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		ItemCount: snapshot.ItemCount(),
	}, nil
}
