package scraper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchListings_SendsDetailedRealtorRequest(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"properties": [
				{"mlsNumber": "26001716", "price": 1149900, "address": "939 Chateau, Windsor"}
			],
			"broker": {"agency": "Alex & Simon - Courtiers Immobiliers"},
			"scrapedAt": "2026-09-01T06:00:00Z"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.FetchListings(context.Background(), "Alexandre Brosseau")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if received["realtorName"] != "Alexandre Brosseau" {
		t.Fatalf("expected realtorName in request, got %v", received)
	}
	if received["detailed"] != true {
		t.Fatalf("expected detailed=true in request, got %v", received)
	}

	if len(result.Properties) != 1 {
		t.Fatalf("expected 1 property, got %d", len(result.Properties))
	}
	if result.Properties[0].MLSNumber != "26001716" {
		t.Fatalf("unexpected mls %s", result.Properties[0].MLSNumber)
	}
	if result.Properties[0].Price != "1149900" {
		t.Fatalf("expected numeric price coerced to string, got %q", result.Properties[0].Price)
	}
	if result.ScrapedAt != "2026-09-01T06:00:00Z" {
		t.Fatalf("unexpected scrapedAt %s", result.ScrapedAt)
	}
}

func TestFetchListings_NonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.FetchListings(context.Background(), "Alexandre Brosseau"); err == nil {
		t.Fatalf("expected error for 503 response")
	}
}

func TestFetchListings_UnreachableServerIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.FetchListings(context.Background(), "Alexandre Brosseau"); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestFetchListings_MalformedResponseIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties": [`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.FetchListings(context.Background(), "Alexandre Brosseau"); err == nil {
		t.Fatalf("expected decode error")
	}
}
