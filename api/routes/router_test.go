package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/velora-labs/storefront-backend/api/controllers"
	authsvc "github.com/velora-labs/storefront-backend/internal/auth"
	cartsvc "github.com/velora-labs/storefront-backend/internal/cart"
	"github.com/velora-labs/storefront-backend/internal/users"
	pkgAuth "github.com/velora-labs/storefront-backend/pkg/auth"
	"github.com/velora-labs/storefront-backend/pkg/config"
	"github.com/velora-labs/storefront-backend/pkg/enums"
	"github.com/velora-labs/storefront-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return &authsvc.LoginResponse{}, nil
}

func (stubAuthService) AdminLogin(ctx context.Context, req authsvc.LoginRequest) (*authsvc.AdminLoginResponse, error) {
	return &authsvc.AdminLoginResponse{}, nil
}

func (stubAuthService) Register(ctx context.Context, req authsvc.RegisterRequest) (*authsvc.RegisterResponse, error) {
	return &authsvc.RegisterResponse{}, nil
}

func (stubAuthService) Profile(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID}, nil
}

func (stubAuthService) ListUsers(ctx context.Context) ([]users.UserDTO, error) {
	return []users.UserDTO{}, nil
}

type stubCartRoutes struct{}

func (stubCartRoutes) Get(ctx context.Context, ownerKey string) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.ItemDTO{}}, nil
}

func (stubCartRoutes) Add(ctx context.Context, ownerKey string, productID uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.ItemDTO{}}, nil
}

func (stubCartRoutes) Increment(ctx context.Context, ownerKey string, productID uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.ItemDTO{}}, nil
}

func (stubCartRoutes) Decrement(ctx context.Context, ownerKey string, productID uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.ItemDTO{}}, nil
}

func (stubCartRoutes) Remove(ctx context.Context, ownerKey string, productID uuid.UUID) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.ItemDTO{}}, nil
}

func (stubCartRoutes) Clear(ctx context.Context, ownerKey string) (*cartsvc.CartDTO, error) {
	return &cartsvc.CartDTO{Items: []cartsvc.ItemDTO{}}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "secret",
			Issuer:            "storefront",
			ExpirationMinutes: 60,
		},
		Cart: config.CartConfig{OwnerMode: "user", SessionTTL: time.Hour},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		map[string]controllers.Pinger{"db": stubPinger{}},
		nil,
		Services{
			Auth: stubAuthService{},
			Cart: stubCartRoutes{},
		},
	)
}

func buildToken(t *testing.T, cfg *config.Config, role enums.Role) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestProfileRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	customer := httptest.NewRequest(http.MethodGet, "/api/user/all", nil)
	customer.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.RoleUser))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, customer)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/user/all", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.RoleAdmin))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestCartRequiresAuthInUserMode(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	anonymous := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, anonymous)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous cart got %d", resp.Code)
	}

	signedIn := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	signedIn.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.RoleUser))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, signedIn)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for signed-in cart got %d", resp.Code)
	}
}

func TestPublicReadsDoNotRequireAuth(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code == http.StatusUnauthorized || resp.Code == http.StatusForbidden {
		t.Fatalf("admin login should be reachable without a token, got %d", resp.Code)
	}
}
