package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	catalogsvc "github.com/avaldez/nookstop-backend/internal/catalog"
)

type stubCatalogService struct {
	menuFn      func(ctx context.Context) (*catalogsvc.Menu, error)
	traitsFn    func(ctx context.Context) (*catalogsvc.VillagerTraits, error)
	villagersFn func(ctx context.Context, filter catalogsvc.VillagerFilter, page int) (*catalogsvc.Page[catalogsvc.Villager], error)
	furnitureFn func(ctx context.Context, category string, page int) (*catalogsvc.Page[catalogsvc.FurnitureItem], error)
}

func (s *stubCatalogService) Menu(ctx context.Context) (*catalogsvc.Menu, error) {
	return s.menuFn(ctx)
}

func (s *stubCatalogService) VillagerTraits(ctx context.Context) (*catalogsvc.VillagerTraits, error) {
	return s.traitsFn(ctx)
}

func (s *stubCatalogService) ListVillagers(ctx context.Context, filter catalogsvc.VillagerFilter, page int) (*catalogsvc.Page[catalogsvc.Villager], error) {
	return s.villagersFn(ctx, filter, page)
}

func (s *stubCatalogService) ListFurniture(ctx context.Context, category string, page int) (*catalogsvc.Page[catalogsvc.FurnitureItem], error) {
	return s.furnitureFn(ctx, category, page)
}

func (s *stubCatalogService) FindVillager(ctx context.Context, name string) (*catalogsvc.Villager, error) {
	return nil, nil
}

func withCategory(req *http.Request, category string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("category", category)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestCatalogFurniture(t *testing.T) {
	svc := &stubCatalogService{
		furnitureFn: func(ctx context.Context, category string, page int) (*catalogsvc.Page[catalogsvc.FurnitureItem], error) {
			if category != "wooden" || page != 2 {
				t.Fatalf("unexpected args category=%s page=%d", category, page)
			}
			return &catalogsvc.Page[catalogsvc.FurnitureItem]{
				Items:       []catalogsvc.FurnitureItem{{SKU: "3619", Name: "Wooden Chair", Price: 1600}},
				CurrentPage: 2,
				TotalPages:  3,
				TotalItems:  25,
			}, nil
		},
	}

	req := withCategory(httptest.NewRequest(http.MethodGet, "/api/v1/catalog/furniture/wooden?page=2", nil), "wooden")
	resp := httptest.NewRecorder()
	CatalogFurniture(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data catalogsvc.Page[catalogsvc.FurnitureItem] `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.CurrentPage != 2 || len(envelope.Data.Items) != 1 {
		t.Fatalf("unexpected page %+v", envelope.Data)
	}
}

func TestCatalogVillagersForwardsFilter(t *testing.T) {
	svc := &stubCatalogService{
		villagersFn: func(ctx context.Context, filter catalogsvc.VillagerFilter, page int) (*catalogsvc.Page[catalogsvc.Villager], error) {
			if filter.Species != "Cat" || filter.Personality != "Smug" || filter.Sign != "Gemini" {
				t.Fatalf("unexpected filter %+v", filter)
			}
			return &catalogsvc.Page[catalogsvc.Villager]{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/villagers?species=Cat&personality=Smug&sign=Gemini", nil)
	resp := httptest.NewRecorder()
	CatalogVillagers(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestCatalogMenu(t *testing.T) {
	svc := &stubCatalogService{
		menuFn: func(ctx context.Context) (*catalogsvc.Menu, error) {
			return &catalogsvc.Menu{Concepts: []string{"Ranch"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/menu", nil)
	resp := httptest.NewRecorder()
	CatalogMenu(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data catalogsvc.Menu `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Concepts) != 1 || envelope.Data.Concepts[0] != "Ranch" {
		t.Fatalf("unexpected menu %+v", envelope.Data)
	}
}
