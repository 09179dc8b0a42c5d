package client

import (
	"context"

	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// AsyncClient implements the scriptura.AsyncClient interface. The endpoint
// and status-mapping logic lives once, in the blocking resource clients;
// every async method is a thin wrapper that runs the same call on its own
// goroutine and hands back a Future. The request starts immediately and is
// cancelled through the ctx given to the method.
type AsyncClient struct {
	inner *Client

	bibles        scriptura.AsyncBiblesClient
	languages     scriptura.AsyncLanguagesClient
	organizations scriptura.AsyncOrganizationsClient
	licenses      scriptura.AsyncLicensesClient
	votd          scriptura.AsyncVerseOfTheDayClient
}

// NewAsync creates a new asynchronous API client with its own connection
// pool. As with New, the config must already be validated and normalized.
func NewAsync(config *scriptura.Config) *AsyncClient {
	return newAsyncFromClient(New(config))
}

func newAsyncFromClient(inner *Client) *AsyncClient {
	return &AsyncClient{
		inner:         inner,
		bibles:        &asyncBiblesClient{inner: inner.bibles},
		languages:     &asyncLanguagesClient{inner: inner.languages},
		organizations: &asyncOrganizationsClient{inner: inner.organizations},
		licenses:      &asyncLicensesClient{inner: inner.licenses},
		votd:          &asyncVerseOfTheDayClient{inner: inner.votd},
	}
}

// Bibles implements scriptura.AsyncClient.Bibles.
func (c *AsyncClient) Bibles() scriptura.AsyncBiblesClient {
	return c.bibles
}

// Languages implements scriptura.AsyncClient.Languages.
func (c *AsyncClient) Languages() scriptura.AsyncLanguagesClient {
	return c.languages
}

// Organizations implements scriptura.AsyncClient.Organizations.
func (c *AsyncClient) Organizations() scriptura.AsyncOrganizationsClient {
	return c.organizations
}

// Licenses implements scriptura.AsyncClient.Licenses.
func (c *AsyncClient) Licenses() scriptura.AsyncLicensesClient {
	return c.licenses
}

// VerseOfTheDay implements scriptura.AsyncClient.VerseOfTheDay.
func (c *AsyncClient) VerseOfTheDay() scriptura.AsyncVerseOfTheDayClient {
	return c.votd
}

// Close implements scriptura.AsyncClient.Close. Calls already in flight keep
// their connection; new calls fail fast.
func (c *AsyncClient) Close() error {
	return c.inner.Close()
}

type asyncBiblesClient struct {
	inner scriptura.BiblesClient
}

func (c *asyncBiblesClient) ListVersions(ctx context.Context, opts *scriptura.VersionListOptions) *scriptura.Future[scriptura.PaginatedResponse[scriptura.BibleVersion]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.BibleVersion]], error) {
		return c.inner.ListVersions(ctx, opts)
	})
}

func (c *asyncBiblesClient) GetVersion(ctx context.Context, bibleID int) *scriptura.Future[scriptura.BibleVersion] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.BibleVersion], error) {
		return c.inner.GetVersion(ctx, bibleID)
	})
}

func (c *asyncBiblesClient) ListBooks(ctx context.Context, bibleID int) *scriptura.Future[scriptura.PaginatedResponse[scriptura.Book]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.Book]], error) {
		return c.inner.ListBooks(ctx, bibleID)
	})
}

func (c *asyncBiblesClient) GetBook(ctx context.Context, bibleID int, book string) *scriptura.Future[scriptura.Book] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.Book], error) {
		return c.inner.GetBook(ctx, bibleID, book)
	})
}

func (c *asyncBiblesClient) ListChapters(ctx context.Context, bibleID int, book string) *scriptura.Future[scriptura.PaginatedResponse[scriptura.Chapter]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.Chapter]], error) {
		return c.inner.ListChapters(ctx, bibleID, book)
	})
}

func (c *asyncBiblesClient) GetChapter(ctx context.Context, bibleID int, book string, chapter int) *scriptura.Future[scriptura.Chapter] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.Chapter], error) {
		return c.inner.GetChapter(ctx, bibleID, book, chapter)
	})
}

func (c *asyncBiblesClient) ListVerses(ctx context.Context, bibleID int, book string, chapter int) *scriptura.Future[scriptura.PaginatedResponse[scriptura.Verse]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.Verse]], error) {
		return c.inner.ListVerses(ctx, bibleID, book, chapter)
	})
}

func (c *asyncBiblesClient) GetVerse(ctx context.Context, bibleID int, book string, chapter, verse int) *scriptura.Future[scriptura.Verse] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.Verse], error) {
		return c.inner.GetVerse(ctx, bibleID, book, chapter, verse)
	})
}

func (c *asyncBiblesClient) GetPassage(ctx context.Context, bibleID int, usfm string, opts *scriptura.PassageOptions) *scriptura.Future[scriptura.Passage] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.Passage], error) {
		return c.inner.GetPassage(ctx, bibleID, usfm, opts)
	})
}

type asyncLanguagesClient struct {
	inner scriptura.LanguagesClient
}

func (c *asyncLanguagesClient) List(ctx context.Context, opts *scriptura.LanguageListOptions) *scriptura.Future[scriptura.PaginatedResponse[scriptura.Language]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.Language]], error) {
		return c.inner.List(ctx, opts)
	})
}

func (c *asyncLanguagesClient) Get(ctx context.Context, tag string) *scriptura.Future[scriptura.Language] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.Language], error) {
		return c.inner.Get(ctx, tag)
	})
}

type asyncOrganizationsClient struct {
	inner scriptura.OrganizationsClient
}

func (c *asyncOrganizationsClient) List(ctx context.Context, opts *scriptura.OrganizationListOptions) *scriptura.Future[scriptura.PaginatedResponse[scriptura.Organization]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.Organization]], error) {
		return c.inner.List(ctx, opts)
	})
}

func (c *asyncOrganizationsClient) Get(ctx context.Context, organizationID string) *scriptura.Future[scriptura.Organization] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.Organization], error) {
		return c.inner.Get(ctx, organizationID)
	})
}

func (c *asyncOrganizationsClient) ListBibles(ctx context.Context, organizationID string) *scriptura.Future[scriptura.PaginatedResponse[scriptura.BibleVersion]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.BibleVersion]], error) {
		return c.inner.ListBibles(ctx, organizationID)
	})
}

type asyncLicensesClient struct {
	inner scriptura.LicensesClient
}

func (c *asyncLicensesClient) List(ctx context.Context, opts *scriptura.LicenseListOptions) *scriptura.Future[scriptura.PaginatedResponse[scriptura.License]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.License]], error) {
		return c.inner.List(ctx, opts)
	})
}

type asyncVerseOfTheDayClient struct {
	inner scriptura.VerseOfTheDayClient
}

func (c *asyncVerseOfTheDayClient) List(ctx context.Context) *scriptura.Future[scriptura.PaginatedResponse[scriptura.VerseOfTheDay]] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.PaginatedResponse[scriptura.VerseOfTheDay]], error) {
		return c.inner.List(ctx)
	})
}

func (c *asyncVerseOfTheDayClient) Get(ctx context.Context, day int) *scriptura.Future[scriptura.VerseOfTheDay] {
	return scriptura.NewFuture(func() (scriptura.Result[scriptura.VerseOfTheDay], error) {
		return c.inner.Get(ctx, day)
	})
}
