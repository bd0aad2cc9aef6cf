package httputil

import (
	"net/http"
	"testing"
	"time"
)

func TestLLMClientHasNoTimeoutByDefault(t *testing.T) {
	client := NewOptimizedClient(LLMClientConfig(0))

	if client.Timeout != 0 {
		t.Errorf("expected no client timeout, got %v", client.Timeout)
	}
	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", client.Transport)
	}
	if transport.ResponseHeaderTimeout != 0 {
		t.Errorf("expected no header timeout, got %v", transport.ResponseHeaderTimeout)
	}
}

func TestLLMClientHonoursTimeout(t *testing.T) {
	client := NewOptimizedClient(LLMClientConfig(15 * time.Second))

	if client.Timeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", client.Timeout)
	}
}

func TestNilConfigUsesDefaults(t *testing.T) {
	client := NewOptimizedClient(nil)

	if client.Timeout != DefaultClientConfig().ResponseTimeout {
		t.Errorf("expected default timeout, got %v", client.Timeout)
	}
}
