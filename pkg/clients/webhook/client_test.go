package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/config"
)

func TestPostDigest(t *testing.T) {
	var got Digest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(config.DigestConfig{WebhookURL: server.URL, Timeout: time.Second})
	sent := Digest{
		Kind:            "breed_ranking",
		ManagementLevel: "medium",
		GeneratedAt:     time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
		Text:            "1. Saanen",
	}

	require.NoError(t, client.PostDigest(context.Background(), sent))
	assert.Equal(t, sent, got)
}

func TestPostDigest_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream unavailable"}`))
	}))
	defer server.Close()

	err := NewClient(config.DigestConfig{WebhookURL: server.URL}).PostDigest(context.Background(), Digest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}
