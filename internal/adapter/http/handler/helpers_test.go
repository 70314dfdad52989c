package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgercore/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"balance not found", domain.ErrBalanceNotFound, http.StatusNotFound},
		{"transaction not found", domain.ErrTransactionNotFound, http.StatusNotFound},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"business ref required", domain.ErrBusinessRefRequired, http.StatusBadRequest},
		{"insufficient balance", &domain.InsufficientBalanceError{
			AccountID: "acc-1",
			Requested: decimal.NewFromInt(100),
			Available: decimal.NewFromInt(10),
		}, http.StatusUnprocessableEntity},
		{"invalid state", &domain.InvalidTransactionStateError{Reason: "already reversed"}, http.StatusUnprocessableEntity},
		{"version conflict", domain.ErrConcurrencyConflict, http.StatusConflict},
		{"data integrity", &domain.DataIntegrityError{Detail: "posted without entries"}, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
