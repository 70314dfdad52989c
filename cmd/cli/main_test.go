package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestOrGeneratedRef(t *testing.T) {
	if got := orGeneratedRef("ref-1"); got != "ref-1" {
		t.Fatalf("expected supplied ref to win, got %q", got)
	}

	generated := orGeneratedRef("")
	if !strings.HasPrefix(generated, "cli-") || len(generated) <= len("cli-") {
		t.Fatalf("expected generated ref, got %q", generated)
	}

	if orGeneratedRef("") == orGeneratedRef("") {
		t.Fatalf("expected generated refs to be unique")
	}
}

func TestDepositCmd_PostsRequest(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ledger/deposit" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"tx-1","status":"POSTED"}`))
	}))
	defer server.Close()

	origURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = origURL }()

	cmd := depositCmd()
	cmd.SetArgs([]string{"acc-1", "100", "--ref", "ref-1"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if captured["account_id"] != "acc-1" || captured["amount"] != "100" || captured["business_ref_id"] != "ref-1" {
		t.Fatalf("unexpected request payload: %+v", captured)
	}

	if !strings.Contains(out, "tx-1") {
		t.Fatalf("expected transaction ID in output, got %q", out)
	}
}

func TestReverseCmd_ErrorResponseSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"failed to reverse transaction"}`))
	}))
	defer server.Close()

	origURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = origURL }()

	cmd := reverseCmd()
	cmd.SetArgs([]string{"tx-1", "--reason", "trade bust"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error for 422 response")
	}
	if !strings.Contains(err.Error(), "status 422") {
		t.Fatalf("expected status in error, got %v", err)
	}
}
