package scriptura

import (
	"errors"
	"fmt"
	"time"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
	ErrClientClosed   = errors.New("client is closed")
)

// Resource identifies the kind of record a lookup failed to find.
type Resource string

// Resource kinds reported by NotFoundError.
const (
	ResourceVersion      Resource = "version"
	ResourceBook         Resource = "book"
	ResourceChapter      Resource = "chapter"
	ResourceVerse        Resource = "verse"
	ResourcePassage      Resource = "passage"
	ResourceLanguage     Resource = "language"
	ResourceHighlight    Resource = "highlight"
	ResourceOrganization Resource = "organization"
)

// DomainError is an expected, caller-actionable failure returned inside an
// Err result. It is a closed sum: the only implementations are
// *NotFoundError and *ValidationError.
type DomainError interface {
	error

	// domainError marks the closed set of domain error types.
	domainError()
}

// NotFoundError reports a lookup for an identifier the server does not know.
// Resource is fixed per endpoint; Identifier is the caller-supplied key that
// failed.
type NotFoundError struct {
	Resource   Resource
	Identifier string
	Message    string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) domainError() {}

// ValidationError reports an input problem confirmed by a 400 response,
// naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) domainError() {}

// NetworkError wraps a transport-level failure: timeout, connection refused,
// DNS failure, or any other error raised before a status line was read.
type NetworkError struct {
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthenticationError reports a 401 response: the API key is invalid,
// expired, or missing.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// RateLimitError reports a 429 response. RetryAfter is populated from the
// Retry-After header when the server sent one, nil otherwise. The library
// never waits on the caller's behalf.
type RateLimitError struct {
	Message    string
	RetryAfter *time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("%s (retry after %s)", e.Message, *e.RetryAfter)
	}

	return e.Message
}

// ServerError reports a 5xx response, carrying the numeric status code.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d", e.StatusCode)
}

// UnexpectedStatusError reports a status code the endpoint models no domain
// meaning for, e.g. a 404 on a list route. The caller cannot resolve it by
// inspecting domain data, so it travels on the transport channel.
type UnexpectedStatusError struct {
	StatusCode int
	Path       string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.Path)
}

// IsNetwork checks if the error is a transport-level network failure.
func IsNetwork(err error) bool {
	netErr := &NetworkError{}

	return errors.As(err, &netErr)
}

// IsAuthentication checks if the error is an authentication failure.
func IsAuthentication(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsRateLimit checks if the error is a rate-limit rejection.
func IsRateLimit(err error) bool {
	rlErr := &RateLimitError{}

	return errors.As(err, &rlErr)
}

// IsServer checks if the error is a 5xx server failure.
func IsServer(err error) bool {
	srvErr := &ServerError{}

	return errors.As(err, &srvErr)
}
