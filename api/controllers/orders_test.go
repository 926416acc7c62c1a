package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	orderssvc "github.com/avaldez/nookstop-backend/internal/orders"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
)

type stubOrdersService struct {
	historyFn func(ctx context.Context, userID uuid.UUID) (*orderssvc.HistoryView, error)
}

func (s *stubOrdersService) History(ctx context.Context, userID uuid.UUID) (*orderssvc.HistoryView, error) {
	return s.historyFn(ctx, userID)
}

func TestOrderHistory(t *testing.T) {
	userID := uuid.New()
	svc := &stubOrdersService{
		historyFn: func(ctx context.Context, gotUser uuid.UUID) (*orderssvc.HistoryView, error) {
			if gotUser != userID {
				t.Fatalf("unexpected user %s", gotUser)
			}
			return &orderssvc.HistoryView{Orders: []orderssvc.OrderView{{
				ID:       uuid.New(),
				Date:     "6/15/2025",
				Subtotal: "$20.00",
				Tax:      "$1.55",
				Total:    "$21.55",
			}}}, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v1/orders", "", userID)
	resp := httptest.NewRecorder()
	OrderHistory(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data orderssvc.HistoryView `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Orders) != 1 || envelope.Data.Orders[0].Total != "$21.55" {
		t.Fatalf("unexpected history %+v", envelope.Data)
	}
}

func TestOrderHistoryEmpty(t *testing.T) {
	svc := &stubOrdersService{
		historyFn: func(ctx context.Context, userID uuid.UUID) (*orderssvc.HistoryView, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no orders found")
		},
	}

	req := authedRequest(http.MethodGet, "/api/v1/orders", "", uuid.New())
	resp := httptest.NewRecorder()
	OrderHistory(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
