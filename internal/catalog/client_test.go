package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"Band","popularityScore":0.4,"weight":1.2,"images":{"rose":"r","yellow":"y"}}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	products, err := client.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}
	if products[0].Name != "Band" {
		t.Errorf("Name = %q", products[0].Name)
	}
	if products[0].DefaultColor() != "rose" {
		t.Errorf("DefaultColor = %q, want rose", products[0].DefaultColor())
	}
}

func TestFetchProductsEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Error("expected error for empty catalog, got nil")
	}
}

func TestFetchProductsMalformedRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"No Images","popularityScore":0.4,"weight":1.2,"images":{}}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Error("expected error for record without images, got nil")
	}
}

func TestFetchProductsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Error("expected error for HTTP 502, got nil")
	}
}
