package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGDELTIndex_FetchDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "domain:dr.dk", q.Get("query"))
		assert.Equal(t, "ArtList", q.Get("mode"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "120min", q.Get("timespan"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"articles": [
				{
					"url": "https://dr.dk/nyheder/1",
					"title": "Nyhed om kunstig intelligens",
					"seendate": "20250601T101500Z",
					"domain": "dr.dk",
					"language": "Danish",
					"sourcecountry": "Denmark"
				},
				{
					"url": "https://dr.dk/nyheder/2",
					"title": "Anden nyhed",
					"seendate": "20250601T090000Z",
					"domain": "",
					"language": "Danish",
					"sourcecountry": ""
				},
				{
					"url": "",
					"title": "dropped, no url"
				}
			]
		}`))
	}))
	defer server.Close()

	idx := NewGDELTIndex(5*time.Second, "TestAgent/1.0")
	idx.baseURL = server.URL

	articles, err := idx.FetchDomain(context.Background(), "dr.dk", 2*time.Hour)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "https://dr.dk/nyheder/1", articles[0].URL)
	assert.Equal(t, "2025-06-01 10:15:00", articles[0].DatePublish)
	assert.Equal(t, "Danish", articles[0].Language)
	assert.Equal(t, "Denmark", articles[0].SourceCountry)
	assert.Equal(t, "gdelt", articles[0].FetchSource)
	assert.Empty(t, articles[0].Text, "index records carry no body text")

	// missing fields are filled from the queried domain
	assert.Equal(t, "dr.dk", articles[1].Domain)
	assert.Equal(t, "DK", articles[1].SourceCountry)
}

func TestGDELTIndex_FetchDomain_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		idx := NewGDELTIndex(5*time.Second, "TestAgent/1.0")
		idx.baseURL = server.URL

		_, err := idx.FetchDomain(context.Background(), "bbc.com", time.Hour)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 429")
	})

	t.Run("bad json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>rate limited</html>"))
		}))
		defer server.Close()

		idx := NewGDELTIndex(5*time.Second, "TestAgent/1.0")
		idx.baseURL = server.URL

		_, err := idx.FetchDomain(context.Background(), "bbc.com", time.Hour)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse index response")
	})

	t.Run("unreachable", func(t *testing.T) {
		idx := NewGDELTIndex(100*time.Millisecond, "TestAgent/1.0")
		idx.baseURL = "http://127.0.0.1:1/doc"

		_, err := idx.FetchDomain(context.Background(), "bbc.com", time.Hour)
		require.Error(t, err)
	})
}

func TestParseSeenDate(t *testing.T) {
	assert.Equal(t, "2025-06-01 10:15:00", parseSeenDate("20250601T101500Z"))
	assert.Equal(t, "", parseSeenDate(""))
	assert.Equal(t, "garbage", parseSeenDate("garbage"), "unparseable value passes through")
}

func TestGDELTIndex_MinimumTimespan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "15min", r.URL.Query().Get("timespan"))
		_, _ = w.Write([]byte(`{"articles": []}`))
	}))
	defer server.Close()

	idx := NewGDELTIndex(5*time.Second, "TestAgent/1.0")
	idx.baseURL = server.URL

	articles, err := idx.FetchDomain(context.Background(), "bbc.com", time.Minute)
	require.NoError(t, err)
	assert.Empty(t, articles)
}
