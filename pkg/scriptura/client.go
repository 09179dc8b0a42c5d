package scriptura

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// BiblesClient provides access to Bible versions and their books, chapters,
// verses, and passages.
type BiblesClient interface {
	ListVersions(ctx context.Context, opts *VersionListOptions) (Result[PaginatedResponse[BibleVersion]], error)
	GetVersion(ctx context.Context, bibleID int) (Result[BibleVersion], error)
	ListBooks(ctx context.Context, bibleID int) (Result[PaginatedResponse[Book]], error)
	GetBook(ctx context.Context, bibleID int, book string) (Result[Book], error)
	ListChapters(ctx context.Context, bibleID int, book string) (Result[PaginatedResponse[Chapter]], error)
	GetChapter(ctx context.Context, bibleID int, book string, chapter int) (Result[Chapter], error)
	ListVerses(ctx context.Context, bibleID int, book string, chapter int) (Result[PaginatedResponse[Verse]], error)
	GetVerse(ctx context.Context, bibleID int, book string, chapter, verse int) (Result[Verse], error)
	GetPassage(ctx context.Context, bibleID int, usfm string, opts *PassageOptions) (Result[Passage], error)
}

// LanguagesClient provides access to the language catalog.
type LanguagesClient interface {
	List(ctx context.Context, opts *LanguageListOptions) (Result[PaginatedResponse[Language]], error)
	Get(ctx context.Context, tag string) (Result[Language], error)
}

// OrganizationsClient provides access to Bible publishers.
type OrganizationsClient interface {
	List(ctx context.Context, opts *OrganizationListOptions) (Result[PaginatedResponse[Organization]], error)
	Get(ctx context.Context, organizationID string) (Result[Organization], error)
	ListBibles(ctx context.Context, organizationID string) (Result[PaginatedResponse[BibleVersion]], error)
}

// LicensesClient provides access to content licenses.
type LicensesClient interface {
	List(ctx context.Context, opts *LicenseListOptions) (Result[PaginatedResponse[License]], error)
}

// VerseOfTheDayClient provides access to verse-of-the-day records.
type VerseOfTheDayClient interface {
	List(ctx context.Context) (Result[PaginatedResponse[VerseOfTheDay]], error)
	Get(ctx context.Context, day int) (Result[VerseOfTheDay], error)
}

// Client is the blocking facade over all resource clients. Close is
// idempotent; every method called after Close fails fast with
// ErrClientClosed on the transport channel.
type Client interface {
	Bibles() BiblesClient
	Languages() LanguagesClient
	Organizations() OrganizationsClient
	Licenses() LicensesClient
	VerseOfTheDay() VerseOfTheDayClient

	Close() error
}

// AsyncBiblesClient mirrors BiblesClient with Future-returning methods.
type AsyncBiblesClient interface {
	ListVersions(ctx context.Context, opts *VersionListOptions) *Future[PaginatedResponse[BibleVersion]]
	GetVersion(ctx context.Context, bibleID int) *Future[BibleVersion]
	ListBooks(ctx context.Context, bibleID int) *Future[PaginatedResponse[Book]]
	GetBook(ctx context.Context, bibleID int, book string) *Future[Book]
	ListChapters(ctx context.Context, bibleID int, book string) *Future[PaginatedResponse[Chapter]]
	GetChapter(ctx context.Context, bibleID int, book string, chapter int) *Future[Chapter]
	ListVerses(ctx context.Context, bibleID int, book string, chapter int) *Future[PaginatedResponse[Verse]]
	GetVerse(ctx context.Context, bibleID int, book string, chapter, verse int) *Future[Verse]
	GetPassage(ctx context.Context, bibleID int, usfm string, opts *PassageOptions) *Future[Passage]
}

// AsyncLanguagesClient mirrors LanguagesClient with Future-returning methods.
type AsyncLanguagesClient interface {
	List(ctx context.Context, opts *LanguageListOptions) *Future[PaginatedResponse[Language]]
	Get(ctx context.Context, tag string) *Future[Language]
}

// AsyncOrganizationsClient mirrors OrganizationsClient with Future-returning
// methods.
type AsyncOrganizationsClient interface {
	List(ctx context.Context, opts *OrganizationListOptions) *Future[PaginatedResponse[Organization]]
	Get(ctx context.Context, organizationID string) *Future[Organization]
	ListBibles(ctx context.Context, organizationID string) *Future[PaginatedResponse[BibleVersion]]
}

// AsyncLicensesClient mirrors LicensesClient with Future-returning methods.
type AsyncLicensesClient interface {
	List(ctx context.Context, opts *LicenseListOptions) *Future[PaginatedResponse[License]]
}

// AsyncVerseOfTheDayClient mirrors VerseOfTheDayClient with Future-returning
// methods.
type AsyncVerseOfTheDayClient interface {
	List(ctx context.Context) *Future[PaginatedResponse[VerseOfTheDay]]
	Get(ctx context.Context, day int) *Future[VerseOfTheDay]
}

// AsyncClient is the non-blocking facade. Each method starts its request
// immediately and returns a Future; Future.Wait is the only suspension
// point. An AsyncClient owns its own connection pool and is not
// interchangeable with a blocking Client within one call graph.
type AsyncClient interface {
	Bibles() AsyncBiblesClient
	Languages() AsyncLanguagesClient
	Organizations() AsyncOrganizationsClient
	Licenses() AsyncLicensesClient
	VerseOfTheDay() AsyncVerseOfTheDayClient

	Close() error
}

// Config represents client configuration for building a Client or
// AsyncClient.
//
// # Retries
//
// RetryMax defaults to zero: a failed request surfaces immediately and the
// library never re-sends on its own, so observable latency and idempotency
// match a single round trip. Callers that want transparent retries for
// transient failures can opt in via RetryMax/RetryWaitMin/RetryWaitMax.
//
// # Timeouts
//
// Timeout is a fixed per-instance ceiling applied to every request;
// exceeding it surfaces as *NetworkError. Use the context passed to each
// method for per-call deadlines.
type Config struct {
	// APIKey: required. Sent with every request as the X-App-Key header.
	APIKey string

	// BaseURL: base URL for the API. Defaults to the public endpoint. A
	// trailing slash is trimmed and "https://" is assumed when no scheme is
	// present.
	BaseURL string

	// Timeout: per-request timeout. Defaults to 30 seconds.
	Timeout time.Duration

	// RetryMax: maximum number of retries for transient failures. Zero
	// disables retrying entirely (the default).
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// Debug: enables request/response logging through Logger. Without a
	// Logger this has no effect; the library is silent by default.
	Debug bool
	// Logger: optional structured logger used by the transport layer.
	Logger *zerolog.Logger
}
