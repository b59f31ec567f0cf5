package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetBasic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	client := NewClient(DefaultOptions())
	body, contentType, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(body) != "payload" {
		t.Errorf("body = %q", body)
	}
	if contentType != "image/png" {
		t.Errorf("content type = %q", contentType)
	}
}

func TestGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := NewClient(DefaultOptions())
	_, _, err := client.Get(context.Background(), server.URL+"/missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(DefaultOptions())
	_, _, err := client.Get(context.Background(), server.URL)
	if !errors.Is(err, ErrServerError) {
		t.Fatalf("expected ErrServerError, got %v", err)
	}
}

func TestGetStatusClassification(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusForbidden, ErrForbidden},
		{http.StatusUnauthorized, ErrUnauthorized},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.code)
		}))

		client := NewClient(DefaultOptions())
		_, _, err := client.Get(context.Background(), server.URL)
		server.Close()

		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: expected %v, got %v", tt.code, tt.want, err)
		}
	}
}

func TestGetTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: 50 * time.Millisecond})
	_, _, err := client.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestGetConnectionRefused(t *testing.T) {
	// Grab an address nothing is listening on.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(DefaultOptions())
	_, _, err := client.Get(context.Background(), url)
	if err == nil {
		t.Fatal("expected connection error")
	}
}

func TestGetContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(DefaultOptions())
	_, _, err := client.Get(ctx, server.URL)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
