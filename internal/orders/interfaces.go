package orders

import (
	"context"

	"github.com/avaldez/nookstop-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes order persistence operations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	FindItemsByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) ([]models.OrderItem, error)
}
