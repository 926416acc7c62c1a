package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/avaldez/nookstop-backend/api/middleware"
	authsvc "github.com/avaldez/nookstop-backend/internal/auth"
	"github.com/avaldez/nookstop-backend/internal/users"
	pkgerrors "github.com/avaldez/nookstop-backend/pkg/errors"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, req authsvc.RegisterRequest) (*authsvc.LoginResponse, error)
	loginFn    func(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error)
	refreshFn  func(ctx context.Context, req authsvc.RefreshRequest) (*authsvc.RefreshResponse, error)
	logoutFn   func(ctx context.Context, userID uuid.UUID, accessID string) error
	updateFn   func(ctx context.Context, userID uuid.UUID, req authsvc.UpdateAccountRequest) (*users.UserDTO, error)
}

func (s *stubAuthService) Register(ctx context.Context, req authsvc.RegisterRequest) (*authsvc.LoginResponse, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) Refresh(ctx context.Context, req authsvc.RefreshRequest) (*authsvc.RefreshResponse, error) {
	return s.refreshFn(ctx, req)
}

func (s *stubAuthService) Logout(ctx context.Context, userID uuid.UUID, accessID string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, userID, accessID)
	}
	return nil
}

func (s *stubAuthService) UpdateAccount(ctx context.Context, userID uuid.UUID, req authsvc.UpdateAccountRequest) (*users.UserDTO, error) {
	return s.updateFn(ctx, userID, req)
}

func TestAuthRegister(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(ctx context.Context, req authsvc.RegisterRequest) (*authsvc.LoginResponse, error) {
			if req.Username != "isabelle" {
				t.Fatalf("unexpected username %s", req.Username)
			}
			return &authsvc.LoginResponse{AccessToken: "token", RefreshToken: "refresh"}, nil
		},
	}

	body := `{"username":"isabelle","password":"dodo-airlines","villager":"Isabelle"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	AuthRegister(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data authsvc.LoginResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.AccessToken != "token" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestAuthRegisterRejectsShortPassword(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(ctx context.Context, req authsvc.RegisterRequest) (*authsvc.LoginResponse, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	body := `{"username":"isabelle","password":"short","villager":"Isabelle"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	resp := httptest.NewRecorder()
	AuthRegister(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}

	body := `{"username":"isabelle","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	AuthLogin(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthLogout(t *testing.T) {
	userID := uuid.New()
	var gotAccessID string
	svc := &stubAuthService{
		logoutFn: func(ctx context.Context, gotUser uuid.UUID, accessID string) error {
			if gotUser != userID {
				t.Fatalf("unexpected user %s", gotUser)
			}
			gotAccessID = accessID
			return nil
		},
	}

	req := authedRequest(http.MethodPost, "/api/v1/auth/logout", "", userID)
	resp := httptest.NewRecorder()
	AuthLogout(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotAccessID == "" {
		t.Fatal("expected access id to be forwarded")
	}
}

func TestAuthLogoutMissingSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
	resp := httptest.NewRecorder()
	AuthLogout(&stubAuthService{}, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAccountUpdate(t *testing.T) {
	userID := uuid.New()
	svc := &stubAuthService{
		updateFn: func(ctx context.Context, gotUser uuid.UUID, req authsvc.UpdateAccountRequest) (*users.UserDTO, error) {
			if req.Villager == nil || *req.Villager != "Tom Nook" {
				t.Fatalf("unexpected request %+v", req)
			}
			return &users.UserDTO{ID: gotUser, Villager: "Tom Nook"}, nil
		},
	}

	req := authedRequest(http.MethodPut, "/api/v1/account", `{"villager":"Tom Nook"}`, userID)
	resp := httptest.NewRecorder()
	AccountUpdate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data users.UserDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Villager != "Tom Nook" {
		t.Fatalf("unexpected user %+v", envelope.Data)
	}
}
