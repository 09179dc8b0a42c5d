package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	internalhttp "github.com/scriptura-io/scriptura-client/internal/http"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

// zero returns the zero Result, used alongside a non-nil transport error.
func zero[T any]() scriptura.Result[T] {
	var r scriptura.Result[T]

	return r
}

// decodeRecord parses a success body into T and wraps it in Ok. Statuses the
// endpoint modeled no domain meaning for surface on the transport channel;
// the resource clients have already branched on the ones that do.
func decodeRecord[T any](resp *internalhttp.Response, what string) (scriptura.Result[T], error) {
	if resp.StatusCode >= http.StatusMultipleChoices {
		return zero[T](), &scriptura.UnexpectedStatusError{StatusCode: resp.StatusCode, Path: resp.Path}
	}

	var record T

	err := json.Unmarshal(resp.Body, &record)
	if err != nil {
		return zero[T](), fmt.Errorf("parsing %s: %w", what, err)
	}

	return scriptura.Ok(record), nil
}

// decodeList parses a success body into a PaginatedResponse of T.
func decodeList[T any](resp *internalhttp.Response, what string) (scriptura.Result[scriptura.PaginatedResponse[T]], error) {
	if resp.StatusCode >= http.StatusMultipleChoices {
		return zero[scriptura.PaginatedResponse[T]](), &scriptura.UnexpectedStatusError{StatusCode: resp.StatusCode, Path: resp.Path}
	}

	var list scriptura.PaginatedResponse[T]

	err := json.Unmarshal(resp.Body, &list)
	if err != nil {
		return zero[scriptura.PaginatedResponse[T]](), fmt.Errorf("parsing %s: %w", what, err)
	}

	return scriptura.Ok(list), nil
}
