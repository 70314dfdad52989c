package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/ledgercore/internal/adapter/http/handler"
	apimiddleware "github.com/iho/ledgercore/internal/adapter/http/middleware"
	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/usecase"
)

type ledgerServiceStub struct {
	depositFn func(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
}

func (s *ledgerServiceStub) Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error) {
	if s.depositFn != nil {
		return s.depositFn(ctx, input)
	}
	return &domain.Transaction{ID: "tx-1", Status: domain.TransactionStatusPosted}, nil
}

func (s *ledgerServiceStub) Withdraw(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: "tx-1"}, nil
}

func (s *ledgerServiceStub) ConfirmTransaction(ctx context.Context, input usecase.ConfirmInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: input.TransactionID}, nil
}

func (s *ledgerServiceStub) Reverse(ctx context.Context, input usecase.ReverseInput) (*domain.Transaction, error) {
	return &domain.Transaction{ID: "rev-1"}, nil
}

func (s *ledgerServiceStub) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return &domain.Transaction{ID: id}, nil
}

func (s *ledgerServiceStub) GetBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	return &domain.Balance{AccountID: accountID, Amount: decimal.Zero, HoldAmount: decimal.Zero}, nil
}

type stubIdempotencyStore struct {
	checked bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checked = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

func newRouterConfig(modifiers ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		LedgerHandler: handler.NewLedgerHandler(&ledgerServiceStub{}),
		HealthHandler: handler.NewHealthHandler(nil, nil),
		Logger:        zerolog.Nop(),
	}

	for _, modify := range modifiers {
		modify(&cfg)
	}

	return cfg
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_DepositRouteDispatches(t *testing.T) {
	router := NewRouter(newRouterConfig())

	body := strings.NewReader(`{"account_id":"acc-1","amount":"100","business_ref_id":"ref-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/deposit", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_GetTransactionRouteDispatches(t *testing.T) {
	router := NewRouter(newRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/tx-42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if !strings.Contains(rec.Body.String(), "tx-42") {
		t.Fatalf("expected transaction ID in response, got %s", rec.Body.String())
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
		cfg.IdempotencyTTL = time.Minute
	}))

	body := strings.NewReader(`{"account_id":"acc-1","amount":"100","business_ref_id":"ref-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/deposit", body)
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !store.checked {
		t.Fatalf("expected idempotency store to be consulted")
	}
}
