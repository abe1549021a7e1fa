package network

import (
	"net/http"
	"time"
)

// ClientFactory hands out HTTP clients for upstream calls. It exists so
// tests can swap in a recording client without touching the services.
type ClientFactory struct {
	testHTTPClient *http.Client // For testing only
}

// NewClientFactory creates a new client factory.
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// NewClientFactoryForTest creates a client factory that always returns the
// given http.Client. This is only for use in tests.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{testHTTPClient: client}
}

// NewHTTPClient creates an http.Client bounded by timeout.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}
	return &http.Client{Timeout: timeout}
}
