package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clawpic/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSend(t *testing.T) {
	var gotPath, gotAuth string
	var payload map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, "test-token")

	err := h.Send(context.Background(), domain.RelayMessage{
		Channel:  "#art",
		Caption:  "Check it!",
		MediaURL: "https://x/1.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "/message", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, map[string]string{
		"action":  "send",
		"channel": "#art",
		"message": "Check it!",
		"media":   "https://x/1.jpg",
	}, payload)
}

func TestHTTPSendWithoutToken(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, "")

	err := h.Send(context.Background(), domain.RelayMessage{Channel: "#art", Caption: "c", MediaURL: "https://x/1.jpg"})
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
}

func TestHTTPSendGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("channel not found"))
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, "")

	err := h.Send(context.Background(), domain.RelayMessage{Channel: "#nope", Caption: "c", MediaURL: "https://x/1.jpg"})

	var relayErr *domain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, "http", relayErr.Transport)
	assert.Equal(t, "channel not found", relayErr.Detail)
}

func TestHTTPSendConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	h := NewHTTP(srv.URL, "")

	err := h.Send(context.Background(), domain.RelayMessage{Channel: "#art", Caption: "c", MediaURL: "https://x/1.jpg"})

	var relayErr *domain.RelayError
	require.ErrorAs(t, err, &relayErr)
	assert.Equal(t, "http", relayErr.Transport)
}
