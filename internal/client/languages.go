package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/scriptura-io/scriptura-client/internal/http"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// LanguagesClient implements scriptura.LanguagesClient.
type LanguagesClient struct {
	httpClient *internalhttp.Client
}

// NewLanguagesClient creates a new languages client.
func NewLanguagesClient(httpClient *internalhttp.Client) *LanguagesClient {
	return &LanguagesClient{
		httpClient: httpClient,
	}
}

// List implements scriptura.LanguagesClient.List.
func (c *LanguagesClient) List(ctx context.Context, opts *scriptura.LanguageListOptions) (scriptura.Result[scriptura.PaginatedResponse[scriptura.Language]], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/languages", opts.ToValues())
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.Language]](), fmt.Errorf("listing languages: %w", err)
	}

	return decodeList[scriptura.Language](resp, "languages")
}

// Get implements scriptura.LanguagesClient.Get.
func (c *LanguagesClient) Get(ctx context.Context, tag string) (scriptura.Result[scriptura.Language], error) {
	path := "/v1/languages/" + tag

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.Language](), fmt.Errorf("getting language: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.Language](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceLanguage,
			Identifier: tag,
			Message:    fmt.Sprintf("language %s not found", tag),
		}), nil
	}

	return decodeRecord[scriptura.Language](resp, "language")
}
