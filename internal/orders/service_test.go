package orders

import (
	"context"
	"testing"
	"time"

	"github.com/avaldez/nookstop-backend/pkg/db/models"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestHistoryNoOrders(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubOrdersRepo{})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.History(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestHistoryRejectsNilUser(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubOrdersRepo{})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.History(context.Background(), uuid.Nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHistoryFormatsOrders(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	orderID := uuid.New()
	repo := &stubOrdersRepo{
		orders: []models.Order{
			{
				ID:        orderID,
				UserID:    userID,
				OrderDate: time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC),
				Subtotal:  decimal.RequireFromString("20.00"),
				Tax:       decimal.RequireFromString("1.55"),
				Total:     decimal.RequireFromString("21.55"),
			},
		},
		items: []models.OrderItem{
			{ID: uuid.New(), OrderID: orderID, SKU: "bell-bag", Name: "Bell Bag", Price: decimal.RequireFromString("10.00"), Quantity: 2},
		},
	}

	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	got, err := svc.History(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(got.Orders))
	}

	view := got.Orders[0]
	if view.Date != "6/15/2025" {
		t.Fatalf("unexpected date label %q", view.Date)
	}
	if view.Subtotal != "$20.00" || view.Tax != "$1.55" || view.Total != "$21.55" {
		t.Fatalf("unexpected money labels: %q %q %q", view.Subtotal, view.Tax, view.Total)
	}
	if len(view.Items) != 1 || view.Items[0].Price != "$10.00" {
		t.Fatalf("unexpected items: %+v", view.Items)
	}
}

type stubOrdersRepo struct {
	orders []models.Order
	items  []models.OrderItem
}

func (s *stubOrdersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubOrdersRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	return order, nil
}

func (s *stubOrdersRepo) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	return nil
}

func (s *stubOrdersRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var matched []models.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

func (s *stubOrdersRepo) FindItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]models.OrderItem, error) {
	var matched []models.OrderItem
	for _, item := range s.items {
		for _, id := range orderIDs {
			if item.OrderID == id {
				matched = append(matched, item)
			}
		}
	}
	return matched, nil
}
