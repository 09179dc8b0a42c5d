// Package client contains the concrete resource clients and the blocking and
// asynchronous facades over them. Consumers construct clients through
// pkg/bibleclient rather than importing this package directly.
package client

import (
	internalhttp "github.com/scriptura-io/scriptura-client/internal/http"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// Client implements the scriptura.Client interface.
type Client struct {
	httpClient *internalhttp.Client

	// Resource clients
	bibles        scriptura.BiblesClient
	languages     scriptura.LanguagesClient
	organizations scriptura.OrganizationsClient
	licenses      scriptura.LicensesClient
	votd          scriptura.VerseOfTheDayClient
}

// buildHTTPClientOptions builds transport options from config.
func buildHTTPClientOptions(config *scriptura.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.Timeout))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(*config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a new blocking API client. The config must already be
// validated and its base URL normalized; pkg/bibleclient takes care of both.
func New(config *scriptura.Config) *Client {
	httpClient := internalhttp.NewClient(config.BaseURL, config.APIKey, buildHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
	}

	client.initializeResourceClients()

	return client
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.bibles = NewBiblesClient(c.httpClient)
	c.languages = NewLanguagesClient(c.httpClient)
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.licenses = NewLicensesClient(c.httpClient)
	c.votd = NewVerseOfTheDayClient(c.httpClient)
}

// Bibles implements scriptura.Client.Bibles.
func (c *Client) Bibles() scriptura.BiblesClient {
	return c.bibles
}

// Languages implements scriptura.Client.Languages.
func (c *Client) Languages() scriptura.LanguagesClient {
	return c.languages
}

// Organizations implements scriptura.Client.Organizations.
func (c *Client) Organizations() scriptura.OrganizationsClient {
	return c.organizations
}

// Licenses implements scriptura.Client.Licenses.
func (c *Client) Licenses() scriptura.LicensesClient {
	return c.licenses
}

// VerseOfTheDay implements scriptura.Client.VerseOfTheDay.
func (c *Client) VerseOfTheDay() scriptura.VerseOfTheDayClient {
	return c.votd
}

// Close implements scriptura.Client.Close. It is safe to call more than
// once; the connection pool is torn down exactly once.
func (c *Client) Close() error {
	return c.httpClient.Close()
}
