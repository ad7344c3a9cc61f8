package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := rootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestLedgerConsistencyCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ledger/consistency" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"consistent":true}`))
	}))
	defer server.Close()

	out, err := runCommand(t, "--url", server.URL, "ledger", "consistency")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	if !strings.Contains(out, `"consistent": true`) {
		t.Fatalf("expected pretty-printed response, got %q", out)
	}
}

func TestTransferCommandSendsPayload(t *testing.T) {
	var captured map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/transfers" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"transaction_id":"` + captured["transaction_id"] + `","status":"completed"}`))
	}))
	defer server.Close()

	out, err := runCommand(t, "--url", server.URL,
		"transfer", "--from", "a1", "--to", "a2", "--amount", "10.00")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	if captured["source_account_id"] != "a1" || captured["destination_account_id"] != "a2" {
		t.Fatalf("expected account ids forwarded, got %v", captured)
	}

	if captured["transaction_id"] == "" {
		t.Fatal("expected a transaction id to be generated")
	}

	if !strings.Contains(out, "completed") {
		t.Fatalf("expected status in output, got %q", out)
	}
}

func TestTransferCommandRequiresFlags(t *testing.T) {
	if _, err := runCommand(t, "transfer"); err == nil {
		t.Fatal("expected error when required flags are missing")
	}
}

func TestErrorStatusReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"insufficient_funds"}`))
	}))
	defer server.Close()

	out, err := runCommand(t, "--url", server.URL, "account", "balance", "some-id")
	if err == nil {
		t.Fatal("expected error for 4xx response")
	}

	if !strings.Contains(out, "insufficient_funds") {
		t.Fatalf("expected error body printed, got %q", out)
	}
}
