package bibleclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptura-io/scriptura-client/pkg/bibleclient"
	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

func TestNew_ConfigValidation(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := bibleclient.New(nil)
		require.ErrorIs(t, err, scriptura.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		client, err := bibleclient.New(&scriptura.Config{})
		require.ErrorIs(t, err, scriptura.ErrAPIKeyRequired)
		assert.Nil(t, client)
	})

	t.Run("async shares the same validation", func(t *testing.T) {
		t.Parallel()

		asyncClient, err := bibleclient.NewAsync(&scriptura.Config{})
		require.ErrorIs(t, err, scriptura.ErrAPIKeyRequired)
		assert.Nil(t, asyncClient)
	})
}

func TestNew_BaseURLNormalization(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/languages/en", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "en", "language": "eng", "text_direction": "ltr"}`))
	}))
	defer server.Close()

	// A trailing slash on the base URL must not produce a double slash in
	// request paths.
	client, err := bibleclient.New(&scriptura.Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/",
	})
	require.NoError(t, err)
	defer client.Close()

	result, err := client.Languages().Get(context.Background(), "en")
	require.NoError(t, err)
	require.True(t, result.IsOk())
	assert.Equal(t, "eng", result.Value().Language)
}

func TestNewWithKey(t *testing.T) {
	t.Parallel()

	client, err := bibleclient.NewWithKey("test-key")
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	assert.NotNil(t, client.Bibles())
	assert.NotNil(t, client.VerseOfTheDay())
}

func TestNewAsyncWithKey(t *testing.T) {
	t.Parallel()

	asyncClient, err := bibleclient.NewAsyncWithKey("test-key")
	require.NoError(t, err)
	require.NotNil(t, asyncClient)
	defer asyncClient.Close()

	assert.NotNil(t, asyncClient.Bibles())
	assert.NotNil(t, asyncClient.Licenses())
}
