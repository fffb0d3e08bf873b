package bootstrap_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-storefront/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStartHTTPServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hookRan := false

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.StartHTTPServer(ctx, http.NotFoundHandler(), bootstrap.ServerConfig{
			Port:            "0",
			ShutdownTimeout: time.Second,
		}, zap.NewNop(), func(context.Context) { hookRan = true })
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.True(t, hookRan)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
