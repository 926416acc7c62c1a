package orders

import (
	"context"
	"fmt"

	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
	"github.com/avaldez/nookstop-backend/pkg/money"
	"github.com/google/uuid"
)

// Service reads order history for display.
type Service interface {
	History(ctx context.Context, userID uuid.UUID) (*HistoryView, error)
}

type service struct {
	repo Repository
}

// NewService builds the order history service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

// History returns the user's orders newest-first with items attached in a
// single batch lookup. A user with no orders gets a not-found error so the
// client can render its empty state.
func (s *service) History(ctx context.Context, userID uuid.UUID) (*HistoryView, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	if len(records) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no orders found")
	}

	orderIDs := make([]uuid.UUID, len(records))
	for i, record := range records {
		orderIDs[i] = record.ID
	}

	items, err := s.repo.FindItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order items")
	}

	itemsByOrder := map[uuid.UUID][]ItemView{}
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], ItemView{
			SKU:      item.SKU,
			Name:     item.Name,
			Price:    money.FormatUSD(item.Price),
			Quantity: item.Quantity,
		})
	}

	view := &HistoryView{Orders: make([]OrderView, len(records))}
	for i, record := range records {
		view.Orders[i] = OrderView{
			ID:       record.ID,
			Date:     money.FormatOrderDate(record.OrderDate),
			Subtotal: money.FormatUSD(record.Subtotal),
			Tax:      money.FormatUSD(record.Tax),
			Total:    money.FormatUSD(record.Total),
			Items:    itemsByOrder[record.ID],
		}
	}
	return view, nil
}
