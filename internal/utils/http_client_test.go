package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:3333", 5*time.Second)
	require.NotNil(t, c)
	require.NotNil(t, c.Client)

	assert.Equal(t, "http://127.0.0.1:3333", c.BaseURL)
	assert.Equal(t, 5*time.Second, c.GetClient().Timeout)

	other := NewHTTPClient("http://127.0.0.1:3333", 0)
	assert.NotSame(t, c.Client, other.Client)
	assert.Zero(t, other.GetClient().Timeout)
}

func TestRequestWithContext_ForwardsTraceID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(TraceIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)

	ctx := WithTraceID(context.Background(), "trace-1")
	_, err := c.RequestWithContext(ctx).Get("/v2/admin/info")
	require.NoError(t, err)
	assert.Equal(t, "trace-1", got)

	_, err = c.RequestWithContext(context.Background()).Get("/v2/admin/info")
	require.NoError(t, err)
	assert.Empty(t, got)
}
