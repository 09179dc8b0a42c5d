package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	internalhttp "github.com/scriptura-io/scriptura-client/internal/http"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// VerseOfTheDayClient implements scriptura.VerseOfTheDayClient.
type VerseOfTheDayClient struct {
	httpClient *internalhttp.Client
}

// NewVerseOfTheDayClient creates a new verse-of-the-day client.
func NewVerseOfTheDayClient(httpClient *internalhttp.Client) *VerseOfTheDayClient {
	return &VerseOfTheDayClient{
		httpClient: httpClient,
	}
}

// List implements scriptura.VerseOfTheDayClient.List.
func (c *VerseOfTheDayClient) List(ctx context.Context) (scriptura.Result[scriptura.PaginatedResponse[scriptura.VerseOfTheDay]], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/verse_of_the_days", nil)
	if err != nil {
		return zero[scriptura.PaginatedResponse[scriptura.VerseOfTheDay]](), fmt.Errorf("listing verses of the day: %w", err)
	}

	return decodeList[scriptura.VerseOfTheDay](resp, "verses of the day")
}

// Get implements scriptura.VerseOfTheDayClient.Get. Day is the day of year,
// 1-366; the server confirms an out-of-range day with a 400.
func (c *VerseOfTheDayClient) Get(ctx context.Context, day int) (scriptura.Result[scriptura.VerseOfTheDay], error) {
	path := "/v1/verse_of_the_days/" + strconv.Itoa(day)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return zero[scriptura.VerseOfTheDay](), fmt.Errorf("getting verse of the day: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		return scriptura.Err[scriptura.VerseOfTheDay](&scriptura.ValidationError{
			Field:  "day",
			Reason: "day must be between 1 and 366",
		}), nil
	}

	return decodeRecord[scriptura.VerseOfTheDay](resp, "verse of the day")
}
