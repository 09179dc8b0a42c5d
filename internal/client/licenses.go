package client

import (
	"context"
	"fmt"

	internalhttp "github.com/scriptura-io/scriptura-client/internal/http"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// LicensesClient implements scriptura.LicensesClient.
type LicensesClient struct {
	httpClient *internalhttp.Client
}

// NewLicensesClient creates a new licenses client.
func NewLicensesClient(httpClient *internalhttp.Client) *LicensesClient {
	return &LicensesClient{
		httpClient: httpClient,
	}
}

// List implements scriptura.LicensesClient.List.
func (c *LicensesClient) List(ctx context.Context, opts *scriptura.LicenseListOptions) (scriptura.Result[scriptura.PaginatedResponse[scriptura.License]], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/licenses", opts.ToValues())
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.License]](), fmt.Errorf("listing licenses: %w", err)
	}

	return decodeList[scriptura.License](resp, "licenses")
}
