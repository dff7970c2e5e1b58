package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client to expose all of
// its methods directly while leaving room for application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/api/memory-pages")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a new HTTPClient with a default-configured
// underlying resty.Client. Each call returns an independent instance with
// its own configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
