package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avaldez/nookstop-backend/api/middleware"
	cartsvc "github.com/avaldez/nookstop-backend/internal/cart"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
)

type stubCartService struct {
	getFn    func(ctx context.Context, userID string) (*cartsvc.Cart, error)
	addFn    func(ctx context.Context, userID string, input cartsvc.AddItemInput) (*cartsvc.Cart, error)
	updateFn func(ctx context.Context, userID, sku string, quantity int) (*cartsvc.Cart, error)
	removeFn func(ctx context.Context, userID, sku string) (*cartsvc.Cart, error)
}

func (s *stubCartService) Get(ctx context.Context, userID string) (*cartsvc.Cart, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID)
	}
	return &cartsvc.Cart{}, nil
}

func (s *stubCartService) AddItem(ctx context.Context, userID string, input cartsvc.AddItemInput) (*cartsvc.Cart, error) {
	if s.addFn != nil {
		return s.addFn(ctx, userID, input)
	}
	return &cartsvc.Cart{}, nil
}

func (s *stubCartService) UpdateQuantity(ctx context.Context, userID, sku string, quantity int) (*cartsvc.Cart, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, userID, sku, quantity)
	}
	return &cartsvc.Cart{}, nil
}

func (s *stubCartService) RemoveItem(ctx context.Context, userID, sku string) (*cartsvc.Cart, error) {
	if s.removeFn != nil {
		return s.removeFn(ctx, userID, sku)
	}
	return &cartsvc.Cart{}, nil
}

func (s *stubCartService) Clear(ctx context.Context, userID string) error {
	return nil
}

func authedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := middleware.WithUserID(req.Context(), userID.String())
	ctx = middleware.WithAccessID(ctx, uuid.NewString())
	return req.WithContext(ctx)
}

func withSKU(req *http.Request, sku string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("sku", sku)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCartAddItem(t *testing.T) {
	userID := uuid.New()
	var captured cartsvc.AddItemInput
	svc := &stubCartService{
		addFn: func(ctx context.Context, gotUser string, input cartsvc.AddItemInput) (*cartsvc.Cart, error) {
			if gotUser != userID.String() {
				t.Fatalf("unexpected user %s", gotUser)
			}
			captured = input
			return &cartsvc.Cart{Items: []cartsvc.LineItem{{SKU: input.SKU, Name: input.Name, Price: input.Price, Quantity: 2}}}, nil
		},
	}

	body := `{"sku":"3619","name":"Wooden Chair","price":"1600","quantity":2}`
	req := authedRequest(http.MethodPost, "/api/v1/cart/items", body, userID)
	resp := httptest.NewRecorder()
	CartAddItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.SKU != "3619" || captured.Quantity != 2 {
		t.Fatalf("unexpected input %+v", captured)
	}
	if !captured.Price.Equal(decimal.NewFromInt(1600)) {
		t.Fatalf("unexpected price %s", captured.Price)
	}

	var envelope struct {
		Data cartsvc.Cart `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", envelope.Data)
	}
}

func TestCartAddItemRejectsBadPayload(t *testing.T) {
	svc := &stubCartService{
		addFn: func(ctx context.Context, userID string, input cartsvc.AddItemInput) (*cartsvc.Cart, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	req := authedRequest(http.MethodPost, "/api/v1/cart/items", `{"name":"No SKU"}`, uuid.New())
	resp := httptest.NewRecorder()
	CartAddItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemRequiresUserContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	CartAddItem(&stubCartService{}, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartUpdateItem(t *testing.T) {
	userID := uuid.New()
	svc := &stubCartService{
		updateFn: func(ctx context.Context, gotUser, sku string, quantity int) (*cartsvc.Cart, error) {
			if sku != "3619" || quantity != 5 {
				t.Fatalf("unexpected args sku=%s qty=%d", sku, quantity)
			}
			return &cartsvc.Cart{Items: []cartsvc.LineItem{{SKU: sku, Quantity: quantity}}}, nil
		},
	}

	req := withSKU(authedRequest(http.MethodPut, "/api/v1/cart/items/3619", `{"quantity":5}`, userID), "3619")
	resp := httptest.NewRecorder()
	CartUpdateItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCartUpdateItemMissingLine(t *testing.T) {
	svc := &stubCartService{
		updateFn: func(ctx context.Context, userID, sku string, quantity int) (*cartsvc.Cart, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not in cart")
		},
	}

	req := withSKU(authedRequest(http.MethodPut, "/api/v1/cart/items/ghost", `{"quantity":1}`, uuid.New()), "ghost")
	resp := httptest.NewRecorder()
	CartUpdateItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected error code %s", envelope.Error.Code)
	}
}

func TestCartRemoveItem(t *testing.T) {
	removed := false
	svc := &stubCartService{
		removeFn: func(ctx context.Context, userID, sku string) (*cartsvc.Cart, error) {
			removed = true
			return &cartsvc.Cart{}, nil
		},
	}

	req := withSKU(authedRequest(http.MethodDelete, "/api/v1/cart/items/3619", "", uuid.New()), "3619")
	resp := httptest.NewRecorder()
	CartRemoveItem(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !removed {
		t.Fatal("expected service call")
	}
}
