package client

import (
	internalhttp "github.com/scriptura-io/scriptura-client/internal/http"
)

// NewTestClient creates a new blocking client against the given base URL,
// bypassing the config validation in pkg/bibleclient.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, "test-key"),
	}

	client.initializeResourceClients()

	return client
}

// NewTestAsyncClient creates a new asynchronous client against the given
// base URL.
func NewTestAsyncClient(baseURL string) *AsyncClient {
	return newAsyncFromClient(NewTestClient(baseURL))
}
