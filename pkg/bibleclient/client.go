package bibleclient

import (
	"strings"

	"github.com/scriptura-io/scriptura-client/internal/client"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// DefaultBaseURL is the public API endpoint used when Config.BaseURL is
// empty.
const DefaultBaseURL = "https://api.scriptura.io"

// New creates a new blocking API client. The returned client owns its
// connection pool; call Close when done with it.
func New(config *scriptura.Config) (scriptura.Client, error) {
	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	return client.New(normalized), nil
}

// NewAsync creates a new asynchronous API client whose methods return
// futures. It owns a connection pool separate from any blocking client.
func NewAsync(config *scriptura.Config) (scriptura.AsyncClient, error) {
	normalized, err := normalize(config)
	if err != nil {
		return nil, err
	}

	return client.NewAsync(normalized), nil
}

// NewWithKey creates a new blocking client with just an API key.
func NewWithKey(apiKey string) (scriptura.Client, error) {
	return New(&scriptura.Config{APIKey: apiKey})
}

// NewAsyncWithKey creates a new asynchronous client with just an API key.
func NewAsyncWithKey(apiKey string) (scriptura.AsyncClient, error) {
	return NewAsync(&scriptura.Config{APIKey: apiKey})
}

// normalize validates the config and returns a copy with the base URL
// normalized: trailing slash trimmed, "https://" assumed when no scheme is
// present, default endpoint filled in.
func normalize(config *scriptura.Config) (*scriptura.Config, error) {
	if config == nil {
		return nil, scriptura.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, scriptura.ErrAPIKeyRequired
	}

	normalized := *config

	baseURL := strings.TrimSuffix(normalized.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	normalized.BaseURL = baseURL

	return &normalized, nil
}
