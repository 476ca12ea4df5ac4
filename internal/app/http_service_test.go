package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	handlershared "github.com/minishop-next/internal/http/handlers/shared"
)

func TestHTTPServiceStopSignalsStreams(t *testing.T) {
	svc := NewHTTPService("127.0.0.1:0", http.NotFoundHandler())
	done := handlershared.ShutdownSignal(svc.server.BaseContext(nil))
	if done == nil {
		t.Fatalf("request base context should carry a shutdown signal")
	}
	select {
	case <-done:
		t.Fatalf("shutdown signal fired before stop")
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := svc.Stop(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("stop should signal open streams")
	}
}
