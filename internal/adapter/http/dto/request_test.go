package dto

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDepositRequest_ToUseCaseInput(t *testing.T) {
	req := DepositRequest{
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(250),
		Description:   "trade settlement",
		BusinessRefID: "ref-1",
	}

	input := req.ToUseCaseInput()

	if input.AccountID != "acc-1" || input.BusinessRefID != "ref-1" {
		t.Fatalf("unexpected input: %+v", input)
	}
	if !input.Amount.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected amount 250, got %s", input.Amount)
	}
	if input.Description != "trade settlement" {
		t.Fatalf("unexpected description: %s", input.Description)
	}
}

func TestConfirmTransactionRequest_ToUseCaseInput(t *testing.T) {
	req := ConfirmTransactionRequest{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(75),
	}

	input := req.ToUseCaseInput("tx-9")

	if input.TransactionID != "tx-9" || input.AccountID != "acc-1" {
		t.Fatalf("unexpected input: %+v", input)
	}
}

func TestReverseTransactionRequest_ToUseCaseInput(t *testing.T) {
	req := ReverseTransactionRequest{Reason: "trade bust"}

	input := req.ToUseCaseInput("tx-9")

	if input.OriginalTransactionID != "tx-9" || input.Reason != "trade bust" {
		t.Fatalf("unexpected input: %+v", input)
	}
}
