package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/scriptura-io/scriptura-client/internal/http"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// BiblesClient implements scriptura.BiblesClient.
type BiblesClient struct {
	httpClient *internalhttp.Client
}

// NewBiblesClient creates a new bibles client.
func NewBiblesClient(httpClient *internalhttp.Client) *BiblesClient {
	return &BiblesClient{
		httpClient: httpClient,
	}
}

// ListVersions implements scriptura.BiblesClient.ListVersions.
func (c *BiblesClient) ListVersions(ctx context.Context, opts *scriptura.VersionListOptions) (scriptura.Result[scriptura.PaginatedResponse[scriptura.BibleVersion]], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/bibles", opts.ToValues())
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.BibleVersion]](), fmt.Errorf("listing Bible versions: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		return scriptura.Err[scriptura.PaginatedResponse[scriptura.BibleVersion]](&scriptura.ValidationError{
			Field:  "language_ranges",
			Reason: "invalid language range format",
		}), nil
	}

	return decodeList[scriptura.BibleVersion](resp, "Bible versions")
}

// GetVersion implements scriptura.BiblesClient.GetVersion.
func (c *BiblesClient) GetVersion(ctx context.Context, bibleID int) (scriptura.Result[scriptura.BibleVersion], error) {
	path := "/v1/bibles/" + strconv.Itoa(bibleID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.BibleVersion](), fmt.Errorf("getting Bible version: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.BibleVersion](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceVersion,
			Identifier: strconv.Itoa(bibleID),
			Message:    fmt.Sprintf("Bible version %d not found", bibleID),
		}), nil
	}

	return decodeRecord[scriptura.BibleVersion](resp, "Bible version")
}

// ListBooks implements scriptura.BiblesClient.ListBooks.
func (c *BiblesClient) ListBooks(ctx context.Context, bibleID int) (scriptura.Result[scriptura.PaginatedResponse[scriptura.Book]], error) {
	path := "/v1/bibles/" + strconv.Itoa(bibleID) + "/books"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.Book]](), fmt.Errorf("listing books: %w", err)
	}

	// A 404 here means the version itself is unknown, not any single book.
	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.PaginatedResponse[scriptura.Book]](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceVersion,
			Identifier: strconv.Itoa(bibleID),
			Message:    fmt.Sprintf("Bible version %d not found", bibleID),
		}), nil
	}

	return decodeList[scriptura.Book](resp, "books")
}

// GetBook implements scriptura.BiblesClient.GetBook.
func (c *BiblesClient) GetBook(ctx context.Context, bibleID int, book string) (scriptura.Result[scriptura.Book], error) {
	path := "/v1/bibles/" + strconv.Itoa(bibleID) + "/books/" + book

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.Book](), fmt.Errorf("getting book: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.Book](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceBook,
			Identifier: book,
			Message:    fmt.Sprintf("book %s not found in version %d", book, bibleID),
		}), nil
	}

	return decodeRecord[scriptura.Book](resp, "book")
}

// ListChapters implements scriptura.BiblesClient.ListChapters.
func (c *BiblesClient) ListChapters(ctx context.Context, bibleID int, book string) (scriptura.Result[scriptura.PaginatedResponse[scriptura.Chapter]], error) {
	path := "/v1/bibles/" + strconv.Itoa(bibleID) + "/books/" + book + "/chapters"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.Chapter]](), fmt.Errorf("listing chapters: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.PaginatedResponse[scriptura.Chapter]](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceBook,
			Identifier: book,
			Message:    fmt.Sprintf("book %s not found", book),
		}), nil
	}

	return decodeList[scriptura.Chapter](resp, "chapters")
}

// GetChapter implements scriptura.BiblesClient.GetChapter.
func (c *BiblesClient) GetChapter(ctx context.Context, bibleID int, book string, chapter int) (scriptura.Result[scriptura.Chapter], error) {
	path := "/v1/bibles/" + strconv.Itoa(bibleID) + "/books/" + book + "/chapters/" + strconv.Itoa(chapter)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.Chapter](), fmt.Errorf("getting chapter: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.Chapter](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceChapter,
			Identifier: fmt.Sprintf("%s.%d", book, chapter),
			Message:    fmt.Sprintf("chapter %s %d not found", book, chapter),
		}), nil
	}

	return decodeRecord[scriptura.Chapter](resp, "chapter")
}

// ListVerses implements scriptura.BiblesClient.ListVerses.
func (c *BiblesClient) ListVerses(ctx context.Context, bibleID int, book string, chapter int) (scriptura.Result[scriptura.PaginatedResponse[scriptura.Verse]], error) {
	path := "/v1/bibles/" + strconv.Itoa(bibleID) + "/books/" + book + "/chapters/" + strconv.Itoa(chapter) + "/verses"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.Verse]](), fmt.Errorf("listing verses: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.PaginatedResponse[scriptura.Verse]](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceChapter,
			Identifier: fmt.Sprintf("%s.%d", book, chapter),
			Message:    fmt.Sprintf("chapter %s %d not found", book, chapter),
		}), nil
	}

	return decodeList[scriptura.Verse](resp, "verses")
}

// GetVerse implements scriptura.BiblesClient.GetVerse.
func (c *BiblesClient) GetVerse(ctx context.Context, bibleID int, book string, chapter, verse int) (scriptura.Result[scriptura.Verse], error) {
	path := "/v1/bibles/" + strconv.Itoa(bibleID) + "/books/" + book +
		"/chapters/" + strconv.Itoa(chapter) + "/verses/" + strconv.Itoa(verse)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.Verse](), fmt.Errorf("getting verse: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.Verse](&scriptura.NotFoundError{
			Resource:   scriptura.ResourceVerse,
			Identifier: fmt.Sprintf("%s.%d.%d", book, chapter, verse),
			Message:    fmt.Sprintf("verse %s %d:%d not found", book, chapter, verse),
		}), nil
	}

	return decodeRecord[scriptura.Verse](resp, "verse")
}

// GetPassage implements scriptura.BiblesClient.GetPassage.
func (c *BiblesClient) GetPassage(ctx context.Context, bibleID int, usfm string, opts *scriptura.PassageOptions) (scriptura.Result[scriptura.Passage], error) {
	path := "/v1/bibles/" + strconv.Itoa(bibleID) + "/passages/" + usfm

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return zero[scriptura.Passage](), fmt.Errorf("getting passage: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return scriptura.Err[scriptura.Passage](&scriptura.NotFoundError{
			Resource:   scriptura.ResourcePassage,
			Identifier: usfm,
			Message:    fmt.Sprintf("passage %s not found", usfm),
		}), nil
	}

	if resp.StatusCode == http.StatusBadRequest {
		return scriptura.Err[scriptura.Passage](&scriptura.ValidationError{
			Field:  "usfm",
			Reason: "invalid USFM format",
		}), nil
	}

	return decodeRecord[scriptura.Passage](resp, "passage")
}
