package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/todo-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cfg  config.ServerConfig
		want string
	}{
		{config.ServerConfig{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{config.ServerConfig{Host: "0.0.0.0", Port: 8080}, "0.0.0.0:8080"},
		{config.ServerConfig{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		// A nil logger is replaced with a discarding one.
		s := adapthttp.NewServer(tt.cfg, http.NotFoundHandler(), nil)
		if got := s.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}

func TestServer_StartFailsOnBadAddress(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: -1}, http.NotFoundHandler(), discardLogger())
	if err := s.Start(); err == nil {
		t.Fatal("Start() returned nil for an invalid port")
	}
}

func TestServer_ShutdownDrainsInFlightRequest(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error: %v", err)
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		<-release
		_, _ = io.WriteString(w, `{"ok":true}`)
	})
	s := adapthttp.NewServer(config.ServerConfig{WriteTimeout: 5 * time.Second}, handler, discardLogger())

	serveErr := make(chan error, 1)
	go func() { serveErr <- s.Serve(ln) }()

	type result struct {
		body string
		err  error
	}
	got := make(chan result, 1)
	go func() {
		req, _ := http.NewRequest(http.MethodDelete, "http://"+ln.Addr().String()+"/", http.NoBody)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			got <- result{err: err}
			return
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		got <- result{body: string(b), err: err}
	}()

	<-entered
	shutdownErr := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- s.Shutdown(ctx)
	}()

	// Shutdown must wait for the request still holding its handler.
	select {
	case err := <-shutdownErr:
		t.Fatalf("Shutdown returned before the in-flight request finished: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	r := <-got
	if r.err != nil || r.body != `{"ok":true}` {
		t.Errorf("in-flight response = %q, %v; want the full body", r.body, r.err)
	}
	if err := <-shutdownErr; err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
	if err := <-serveErr; err != nil {
		t.Errorf("Serve() error after shutdown: %v", err)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error: %v", err)
	}
	s := adapthttp.NewServer(config.ServerConfig{}, http.NotFoundHandler(), discardLogger())

	serveErr := make(chan error, 1)
	go func() { serveErr <- s.Serve(ln) }()

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-serveErr; err != nil {
		t.Fatalf("Serve() error after shutdown: %v", err)
	}
}
