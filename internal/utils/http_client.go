package utils

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the REST client used to talk to the wallet daemon.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A non-positive timeout
// leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// RequestWithContext starts a request bound to ctx. A trace id stored in ctx is forwarded in
// the [TraceIDHeader] header.
func (c *HTTPClient) RequestWithContext(ctx context.Context) *resty.Request {
	req := c.R().SetContext(ctx)
	if traceID, ok := GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return req
}
