package rates

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(ts.URL, time.Second)
	require.NoError(t, err)
	return client
}

func TestConvertSendsQuery(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "UGX", r.URL.Query().Get("to"))
		assert.Equal(t, "100", r.URL.Query().Get("amount"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "result": 370000}`))
	})

	conv := client.Convert(context.Background(), 100, "USD", "UGX")
	assert.Equal(t, StatusConverted, conv.Status)
	assert.Equal(t, 370000.0, conv.Result)
	assert.NoError(t, conv.Err)
}

func TestConvertOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Status
	}{
		{name: "missing result", status: http.StatusOK, body: `{"success": false}`, want: StatusNoResult},
		{name: "null result", status: http.StatusOK, body: `{"result": null}`, want: StatusNoResult},
		{name: "non numeric result", status: http.StatusOK, body: `{"result": "lots"}`, want: StatusFailed},
		{name: "malformed json", status: http.StatusOK, body: `{"result":`, want: StatusFailed},
		{name: "null body", status: http.StatusOK, body: `null`, want: StatusFailed},
		{name: "server error", status: http.StatusBadGateway, body: `{"result": 1}`, want: StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			conv := client.Convert(context.Background(), 1, "USD", "KES")
			assert.Equal(t, tt.want, conv.Status)
			assert.Error(t, conv.Err)
		})
	}
}

func TestConvertTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	client, err := NewClient(ts.URL, 50*time.Millisecond)
	require.NoError(t, err)

	conv := client.Convert(context.Background(), 1, "USD", "UGX")
	assert.Equal(t, StatusFailed, conv.Status)
	assert.ErrorIs(t, conv.Err, ErrFetch)
}

func TestConvertRejectsInfiniteAmount(t *testing.T) {
	called := false
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{"result": null}`))
	})

	conv := client.Convert(context.Background(), math.Inf(1), "USD", "KES")
	assert.Equal(t, StatusFailed, conv.Status)
	assert.ErrorIs(t, conv.Err, ErrFetch)
	assert.False(t, called, "out of range amounts must not reach the service")
}

func TestConvertUnreachable(t *testing.T) {
	client, err := NewClient("http://127.0.0.1:1", time.Second)
	require.NoError(t, err)

	conv := client.Convert(context.Background(), 1, "USD", "UGX")
	assert.Equal(t, StatusFailed, conv.Status)
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", time.Second)
	assert.Error(t, err)

	client, err := NewClient("https://api.exchangerate.host/", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://api.exchangerate.host", client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
