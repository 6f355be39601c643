package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFilterClient_SaveFilter(t *testing.T) {
	var got FilterPayload
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	userID := "user123"
	client := NewFilterClient(srv.URL)
	err := client.SaveFilter(context.Background(), FilterPayload{
		JobID:      "100200",
		ClientName: "Jane Doe",
		UserID:     &userID,
	})
	if err != nil {
		t.Fatalf("SaveFilter() error = %v", err)
	}

	if gotPath != "/savefilter" {
		t.Errorf("expected POST to /savefilter, got %s", gotPath)
	}
	if got.JobID != "100200" || got.ClientName != "Jane Doe" {
		t.Errorf("unexpected payload %+v", got)
	}
	if got.UserID == nil || *got.UserID != "user123" {
		t.Errorf("expected userId user123, got %v", got.UserID)
	}
}

func TestFilterClient_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewFilterClient(srv.URL)
	err := client.SaveFilter(context.Background(), FilterPayload{JobID: "100200"})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestFilterClient_DisabledWhenUnconfigured(t *testing.T) {
	client := NewFilterClient("")
	if client.Enabled() {
		t.Error("client with empty base URL should be disabled")
	}
	if err := client.SaveFilter(context.Background(), FilterPayload{}); err != nil {
		t.Errorf("disabled client should no-op, got %v", err)
	}

	var nilClient *FilterClient
	if nilClient.Enabled() {
		t.Error("nil client should be disabled")
	}
}
