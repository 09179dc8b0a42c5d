package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

func TestVerseOfTheDayClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/verse_of_the_days", r.URL.Path)

		response := scriptura.PaginatedResponse[scriptura.VerseOfTheDay]{
			Data: []scriptura.VerseOfTheDay{
				{Day: 1, PassageID: "JHN.3.16"},
				{Day: 2, PassageID: "PSA.23.1"},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	votd := NewTestClient(server.URL).VerseOfTheDay()

	result, err := votd.List(context.Background())
	require.NoError(t, err)
	require.True(t, result.IsOk())
	require.Len(t, result.Value().Data, 2)
	assert.Equal(t, 1, result.Value().Data[0].Day)
	assert.Equal(t, "JHN.3.16", result.Value().Data[0].PassageID)
}

func TestVerseOfTheDayClient_Get(t *testing.T) {
	t.Run("valid days return Ok", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			day, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/v1/verse_of_the_days/"))
			require.NoError(t, err)

			_ = json.NewEncoder(w).Encode(scriptura.VerseOfTheDay{Day: day, PassageID: "JHN.3.16"})
		}))
		defer server.Close()

		votd := NewTestClient(server.URL).VerseOfTheDay()

		for _, day := range []int{1, 365} {
			result, err := votd.Get(context.Background(), day)
			require.NoError(t, err)
			require.True(t, result.IsOk())
			assert.Equal(t, day, result.Value().Day)
		}
	})

	t.Run("out of range day returns ValidationError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/verse_of_the_days/999", r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		votd := NewTestClient(server.URL).VerseOfTheDay()

		result, err := votd.Get(context.Background(), 999)
		require.NoError(t, err)
		require.True(t, result.IsErr())

		valErr, ok := result.DomainErr().(*scriptura.ValidationError)
		require.True(t, ok)
		assert.Equal(t, "day", valErr.Field)
	})
}
