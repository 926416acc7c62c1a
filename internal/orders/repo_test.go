package orders

import (
	"context"
	"testing"
	"time"

	"github.com/avaldez/nookstop-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  order_date DATETIME NOT NULL,
  subtotal TEXT NOT NULL,
  tax TEXT NOT NULL,
  total TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  sku TEXT NOT NULL,
  name TEXT NOT NULL,
  price TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`

	require.NoError(t, db.Exec(orders).Error)
	require.NoError(t, db.Exec(orderItems).Error)

	return db
}

func seedOrder(t *testing.T, db *gorm.DB, userID uuid.UUID, placedAt time.Time, total string) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:        uuid.New(),
		UserID:    userID,
		OrderDate: placedAt,
		Subtotal:  decimal.RequireFromString(total),
		Tax:       decimal.Zero,
		Total:     decimal.RequireFromString(total),
	}
	require.NoError(t, db.Omit("Items").Create(order).Error)
	return order
}

func TestRepositoryListByUserOrdersNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	older := seedOrder(t, db, userID, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), "10.00")
	newer := seedOrder(t, db, userID, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), "20.00")
	seedOrder(t, db, uuid.New(), time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC), "30.00")

	got, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestRepositoryListByUserEmpty(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	got, err := repo.ListByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepositoryFindItemsByOrderIDs(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	first := seedOrder(t, db, userID, time.Now().UTC(), "15.00")
	second := seedOrder(t, db, userID, time.Now().UTC(), "25.00")

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: first.ID, SKU: "bell-bag", Name: "Bell Bag", Price: decimal.RequireFromString("5.00"), Quantity: 3},
		{ID: uuid.New(), OrderID: second.ID, SKU: "net", Name: "Net", Price: decimal.RequireFromString("25.00"), Quantity: 1},
	}
	require.NoError(t, repo.CreateOrderItems(ctx, items))

	got, err := repo.FindItemsByOrderIDs(ctx, []uuid.UUID{first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.FindItemsByOrderIDs(ctx, []uuid.UUID{first.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bell-bag", got[0].SKU)

	got, err = repo.FindItemsByOrderIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepositoryCreateOrderWithItems(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := &models.Order{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		OrderDate: time.Now().UTC(),
		Subtotal:  decimal.RequireFromString("20.00"),
		Tax:       decimal.RequireFromString("1.55"),
		Total:     decimal.RequireFromString("21.55"),
	}

	created, err := repo.CreateOrder(ctx, order)
	require.NoError(t, err)
	require.NotNil(t, created)

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, SKU: "leaf-umbrella", Name: "Leaf Umbrella", Price: decimal.RequireFromString("10.00"), Quantity: 2},
	}
	require.NoError(t, repo.CreateOrderItems(ctx, items))

	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
