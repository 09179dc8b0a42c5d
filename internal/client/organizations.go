package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/scriptura-io/scriptura-client/internal/http"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// OrganizationsClient implements scriptura.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *internalhttp.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *internalhttp.Client) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
	}
}

// List implements scriptura.OrganizationsClient.List. The AcceptLanguage
// option travels as a request header and localizes the response's text
// fields.
func (c *OrganizationsClient) List(ctx context.Context, opts *scriptura.OrganizationListOptions) (scriptura.Result[scriptura.PaginatedResponse[scriptura.Organization]], error) {
	req := &internalhttp.Request{
		Method: http.MethodGet,
		Path:   "/v1/organizations",
		Query:  opts.ToValues(),
	}

	if opts != nil && opts.AcceptLanguage != "" {
		req.Headers = http.Header{"Accept-Language": []string{opts.AcceptLanguage}}
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.Organization]](), fmt.Errorf("listing organizations: %w", err)
	}

	return decodeList[scriptura.Organization](resp, "organizations")
}

// Get implements scriptura.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context, organizationID string) (scriptura.Result[scriptura.Organization], error) {
	path := "/v1/organizations/" + organizationID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.Organization](), fmt.Errorf("getting organization: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.Organization](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceOrganization,
			Identifier: organizationID,
			Message:    fmt.Sprintf("organization %s not found", organizationID),
		}), nil
	}

	return decodeRecord[scriptura.Organization](resp, "organization")
}

// ListBibles implements scriptura.OrganizationsClient.ListBibles.
func (c *OrganizationsClient) ListBibles(ctx context.Context, organizationID string) (scriptura.Result[scriptura.PaginatedResponse[scriptura.BibleVersion]], error) {
	path := "/v1/organizations/" + organizationID + "/bibles"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.BibleVersion]](), fmt.Errorf("listing organization Bibles: %w", err)
	}

	return decodeList[scriptura.BibleVersion](resp, "organization Bibles")
}
