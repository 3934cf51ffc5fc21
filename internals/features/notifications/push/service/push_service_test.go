package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bytedance/sonic"

	"orquestra_backend/internals/configs"
)

func TestSendToTokensBatches(t *testing.T) {
	var mu sync.Mutex
	var batches [][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var msg ExpoMessage
		if err := sonic.Unmarshal(body, &msg); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		mu.Lock()
		batches = append(batches, msg.To)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	old := configs.PushGatewayURL
	configs.PushGatewayURL = srv.URL
	defer func() { configs.PushGatewayURL = old }()

	tokens := make([]string, 250)
	for i := range tokens {
		tokens[i] = "ExponentPushToken[x]"
	}
	if err := SendToTokens(tokens, "t", "b", nil); err != nil {
		t.Fatalf("SendToTokens: %v", err)
	}

	if len(batches) != 3 {
		t.Fatalf("expected 3 batches for 250 tokens, got %d", len(batches))
	}
	sizes := []int{len(batches[0]), len(batches[1]), len(batches[2])}
	if sizes[0] != 100 || sizes[1] != 100 || sizes[2] != 50 {
		t.Errorf("batch sizes = %v, want [100 100 50]", sizes)
	}
}

func TestSendToTokensEmpty(t *testing.T) {
	if err := SendToTokens(nil, "t", "b", nil); err != nil {
		t.Fatalf("empty token list should be a no-op, got %v", err)
	}
}

func TestSendToTokensGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	old := configs.PushGatewayURL
	configs.PushGatewayURL = srv.URL
	defer func() { configs.PushGatewayURL = old }()

	if err := SendToTokens([]string{"tok"}, "t", "b", nil); err == nil {
		t.Fatal("expected an error when the gateway rejects the batch")
	}
}
