package web

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNewServerRequiresAddr(t *testing.T) {
	if _, err := NewServer(Config{}, http.NewServeMux()); err == nil {
		t.Fatal("expected missing address error")
	}
}

func TestNewServerRequiresHandler(t *testing.T) {
	if _, err := NewServer(Config{HTTPAddr: "localhost:0"}, nil); err == nil {
		t.Fatal("expected missing handler error")
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	server, err := NewServer(Config{HTTPAddr: "localhost:0"}, http.NewServeMux())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	// Give the listener a moment before asking it to stop.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestListenAndServeNilServer(t *testing.T) {
	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected nil server error")
	}
}
