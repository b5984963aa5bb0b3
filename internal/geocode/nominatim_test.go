package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverse(t *testing.T) {
	var gotPath, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Query().Get("format") != "jsonv2" {
			t.Errorf("format = %q", r.URL.Query().Get("format"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name": "Jung-gu, Seoul, South Korea"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "geoquiz-mcp/test")
	addr, err := c.Reverse(context.Background(), 37.57, 126.98)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if addr != "Jung-gu, Seoul, South Korea" {
		t.Errorf("address = %q", addr)
	}
	if gotPath != "/reverse" {
		t.Errorf("path = %q", gotPath)
	}
	if gotUA != "geoquiz-mcp/test" {
		t.Errorf("user agent = %q", gotUA)
	}
}

func TestReverse_NothingNameable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "geoquiz-mcp/test")
	addr, err := c.Reverse(context.Background(), 0, -160)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if addr != "" {
		t.Errorf("expected empty address for open ocean, got %q", addr)
	}
}

func TestReverse_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "geoquiz-mcp/test")
	if _, err := c.Reverse(context.Background(), 37.57, 126.98); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestReverse_ContextCanceled(t *testing.T) {
	c := New("http://127.0.0.1:0", "geoquiz-mcp/test")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Reverse(ctx, 37.57, 126.98); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
