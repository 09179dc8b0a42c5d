package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

func TestAsyncClient_MatchesSyncResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/bibles/111":
			_, _ = w.Write([]byte(`{"id": 111, "abbreviation": "NIV", "title": "New International Version", "language_tag": "en"}`))
		case "/v1/bibles/111/books/XYZ":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	syncClient := NewTestClient(server.URL)
	asyncClient := NewTestAsyncClient(server.URL)
	ctx := context.Background()

	t.Run("successful lookup", func(t *testing.T) {
		syncResult, err := syncClient.Bibles().GetVersion(ctx, 111)
		require.NoError(t, err)

		future := asyncClient.Bibles().GetVersion(ctx, 111)
		asyncResult, err := future.Wait(ctx)
		require.NoError(t, err)

		assert.Equal(t, syncResult, asyncResult)
		require.True(t, asyncResult.IsOk())
		assert.Equal(t, "NIV", asyncResult.Value().Abbreviation)
	})

	t.Run("missing book", func(t *testing.T) {
		syncResult, err := syncClient.Bibles().GetBook(ctx, 111, "XYZ")
		require.NoError(t, err)

		future := asyncClient.Bibles().GetBook(ctx, 111, "XYZ")
		asyncResult, err := future.Wait(ctx)
		require.NoError(t, err)

		assert.Equal(t, syncResult, asyncResult)
		require.True(t, asyncResult.IsErr())

		var notFound *scriptura.NotFoundError
		require.ErrorAs(t, asyncResult.DomainErr(), &notFound)
		assert.Equal(t, scriptura.ResourceBook, notFound.Resource)
		assert.Equal(t, "XYZ", notFound.Identifier)
	})
}

func TestAsyncClient_TransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	asyncClient := NewTestAsyncClient(server.URL)
	ctx := context.Background()

	future := asyncClient.Languages().Get(ctx, "en")
	_, err := future.Wait(ctx)
	require.Error(t, err)
	assert.True(t, scriptura.IsServer(err))
}

func TestAsyncClient_WaitCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 111}`))
	}))
	defer server.Close()
	defer close(release)

	asyncClient := NewTestAsyncClient(server.URL)

	future := asyncClient.Bibles().GetVersion(context.Background(), 111)

	waitCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := future.Wait(waitCtx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAsyncClient_Close(t *testing.T) {
	asyncClient := NewTestAsyncClient("http://localhost:1")

	require.NoError(t, asyncClient.Close())
	require.NoError(t, asyncClient.Close())

	future := asyncClient.Bibles().GetVersion(context.Background(), 111)
	_, err := future.Wait(context.Background())
	require.ErrorIs(t, err, scriptura.ErrClientClosed)
}
