package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/BloggingApp/blog-store/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func started(s *Server) func() bool {
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.httpServer != nil
	}
}

func TestShutdownBeforeRun(t *testing.T) {
	assert.NoError(t, New().Shutdown(context.Background()))
}

func TestRunAndShutdown(t *testing.T) {
	srv := New()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(config.ServerConfig{
			Port:           "0",
			Handler:        http.NotFoundHandler(),
			MaxHeaderBytes: 1 << 20,
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
		})
	}()

	require.Eventually(t, started(srv), time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunInvalidPort(t *testing.T) {
	err := New().Run(config.ServerConfig{Port: "not-a-port", Handler: http.NotFoundHandler()})
	assert.Error(t, err)
}
