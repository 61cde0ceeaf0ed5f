package paygate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchSubmissions(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes wrapper payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/accounts/ACC-001/payments", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"payments":[{"id":"sub-1","amount":450.5,"status":"approved"}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "sk-test", 5*time.Second)
		payload, err := client.FetchSubmissions(ctx, "ACC-001")
		require.NoError(t, err)

		wrapper, ok := payload.(map[string]any)
		require.True(t, ok)
		payments, ok := wrapper["payments"].([]any)
		require.True(t, ok)
		assert.Len(t, payments, 1)
	})

	t.Run("Decodes bare array payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"sub-1"},{"id":"sub-2"}]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "sk-test", 5*time.Second)
		payload, err := client.FetchSubmissions(ctx, "ACC-001")
		require.NoError(t, err)

		items, ok := payload.([]any)
		require.True(t, ok)
		assert.Len(t, items, 2)
	})

	t.Run("Non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream maintenance", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(server.URL, "sk-test", 5*time.Second)
		_, err := client.FetchSubmissions(ctx, "ACC-001")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("Malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"payments": [`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "sk-test", 5*time.Second)
		_, err := client.FetchSubmissions(ctx, "ACC-001")
		assert.Error(t, err)
	})

	t.Run("Unreachable gateway", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "sk-test", 500*time.Millisecond)
		_, err := client.FetchSubmissions(ctx, "ACC-001")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unreachable")
	})
}
