package scriptura_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	retryAfter := 30 * time.Second

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "not found",
			err:      &scriptura.NotFoundError{Resource: scriptura.ResourceChapter, Identifier: "JHN.99", Message: "Chapter JHN.99 not found"},
			expected: "Chapter JHN.99 not found",
		},
		{
			name:     "validation",
			err:      &scriptura.ValidationError{Field: "usfm", Reason: "malformed reference"},
			expected: "invalid usfm: malformed reference",
		},
		{
			name:     "network with cause",
			err:      &scriptura.NetworkError{Message: "request failed", Err: errors.New("connection refused")},
			expected: "request failed: connection refused",
		},
		{
			name:     "network without cause",
			err:      &scriptura.NetworkError{Message: "request failed"},
			expected: "request failed",
		},
		{
			name:     "authentication",
			err:      &scriptura.AuthenticationError{Message: "invalid API key"},
			expected: "invalid API key",
		},
		{
			name:     "rate limit with retry-after",
			err:      &scriptura.RateLimitError{Message: "rate limited", RetryAfter: &retryAfter},
			expected: "rate limited (retry after 30s)",
		},
		{
			name:     "rate limit without retry-after",
			err:      &scriptura.RateLimitError{Message: "rate limited"},
			expected: "rate limited",
		},
		{
			name:     "server",
			err:      &scriptura.ServerError{StatusCode: 503},
			expected: "server error: 503",
		},
		{
			name:     "unexpected status",
			err:      &scriptura.UnexpectedStatusError{StatusCode: 418, Path: "/v1/bibles"},
			expected: "unexpected status 418 from /v1/bibles",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := &scriptura.NetworkError{Message: "request failed", Err: cause}

	require.ErrorIs(t, err, cause)
}

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()

	netErr := &scriptura.NetworkError{Message: "boom"}
	authErr := &scriptura.AuthenticationError{Message: "nope"}
	rlErr := &scriptura.RateLimitError{Message: "slow down"}
	srvErr := &scriptura.ServerError{StatusCode: 500}

	assert.True(t, scriptura.IsNetwork(netErr))
	assert.True(t, scriptura.IsAuthentication(authErr))
	assert.True(t, scriptura.IsRateLimit(rlErr))
	assert.True(t, scriptura.IsServer(srvErr))

	// Classifiers see through wrapping.
	assert.True(t, scriptura.IsServer(fmt.Errorf("fetching version: %w", srvErr)))
	assert.True(t, scriptura.IsNetwork(fmt.Errorf("listing books: %w", netErr)))

	// And reject everything else.
	assert.False(t, scriptura.IsNetwork(authErr))
	assert.False(t, scriptura.IsAuthentication(srvErr))
	assert.False(t, scriptura.IsRateLimit(nil))
	assert.False(t, scriptura.IsServer(errors.New("plain")))
}

func TestDomainErrorSet(t *testing.T) {
	t.Parallel()

	// Both domain error types satisfy the interface and keep their concrete
	// identity under errors.As.
	var domainErr scriptura.DomainError = &scriptura.NotFoundError{Resource: scriptura.ResourceBook, Identifier: "XYZ", Message: "Book XYZ not found"}

	var notFound *scriptura.NotFoundError
	require.ErrorAs(t, domainErr, &notFound)
	assert.Equal(t, scriptura.ResourceBook, notFound.Resource)

	domainErr = &scriptura.ValidationError{Field: "language_ranges", Reason: "at least one range is required"}

	var validation *scriptura.ValidationError
	require.ErrorAs(t, domainErr, &validation)
	assert.Equal(t, "language_ranges", validation.Field)
}
