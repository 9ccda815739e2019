package customHttpClient

import (
	"net/http"

	"fdalabel-api/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetPooledClient returns an http client that reuses upstream connections.
// openFDA calls are bursty when a tool caller fans out, so keeping the pool
// warm matters more than the individual request latency.
func GetPooledClient() *http.Client {
	return &http.Client{
		Transport: customTransport,
		Timeout:   config.OpenFDARequestTimeout,
	}
}
