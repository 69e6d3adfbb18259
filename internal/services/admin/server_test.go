package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{HTTPAddr: "  "}); err == nil {
		t.Fatal("expected error for blank http address")
	}
}

func TestNewServerSeedsStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seed bool
		want string
	}{
		{name: "seeded", seed: true, want: "Showing 8 of 8"},
		{name: "empty", seed: false, want: "Showing 0 of 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server, err := NewServer(Config{HTTPAddr: "127.0.0.1:0", Seed: tc.seed})
			if err != nil {
				t.Fatalf("new server: %v", err)
			}
			t.Cleanup(server.Close)

			req := httptest.NewRequest(http.MethodGet, "http://example.com/managers/table", nil)
			recorder := httptest.NewRecorder()
			server.httpServer.Handler.ServeHTTP(recorder, req)

			if recorder.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
			}
			assertContains(t, recorder.Body.String(), tc.want)
		})
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{HTTPAddr: "127.0.0.1:0", Seed: true})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServerNilSafe(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	server.Close()
}
