package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askeland/newswatch/pkg/db"
	"github.com/askeland/newswatch/pkg/domain"
	"github.com/askeland/newswatch/server/mocks"
)

func testServer(t *testing.T, database Database, scheduler Scheduler) *httptest.Server {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 5 * time.Second },
	}
	srv := New(cfg, database, scheduler, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, target interface{}) *http.Response {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if target != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	}
	return resp
}

func TestServer_Status(t *testing.T) {
	ts := testServer(t, &mocks.DatabaseMock{}, &mocks.SchedulerMock{})

	var status map[string]interface{}
	resp := getJSON(t, ts.URL+"/api/v1/status", &status)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
}

func TestServer_Ping(t *testing.T) {
	ts := testServer(t, &mocks.DatabaseMock{}, &mocks.SchedulerMock{})

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Stats(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetStatsFunc: func(_ context.Context) (*db.Stats, error) {
			return &db.Stats{
				TotalProcessed: 120,
				TotalRejected:  30,
				AITopicCount:   15,
				ByLanguage:     []db.CountRow{{Key: "en", Count: 100}, {Key: "da", Count: 20}},
			}, nil
		},
	}
	ts := testServer(t, database, &mocks.SchedulerMock{})

	var stats db.Stats
	resp := getJSON(t, ts.URL+"/api/v1/stats", &stats)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 120, stats.TotalProcessed)
	assert.Equal(t, 15, stats.AITopicCount)
	require.Len(t, stats.ByLanguage, 2)
}

func TestServer_Stats_Error(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetStatsFunc: func(_ context.Context) (*db.Stats, error) {
			return nil, fmt.Errorf("db gone")
		},
	}
	ts := testServer(t, database, &mocks.SchedulerMock{})

	var body map[string]string
	resp := getJSON(t, ts.URL+"/api/v1/stats", &body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "db gone", body["error"])
}

func TestServer_Articles(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetArticlesFunc: func(_ context.Context, q db.ArticlesQuery) ([]*domain.Article, error) {
			return []*domain.Article{
				{URL: "https://bbc.com/news/1", Title: "Story", Language: q.Language},
			}, nil
		},
	}
	ts := testServer(t, database, &mocks.SchedulerMock{})

	var body struct {
		Articles []domain.Article `json:"articles"`
		Count    int              `json:"count"`
	}
	resp := getJSON(t, ts.URL+"/api/v1/articles?category=tech&language=en&ai_only=true&limit=10", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Articles, 1)

	// filters passed through to the query
	require.Len(t, database.GetArticlesCalls(), 1)
	q := database.GetArticlesCalls()[0].Q
	assert.Equal(t, "tech", q.Category)
	assert.Equal(t, "en", q.Language)
	assert.True(t, q.AIOnly)
	assert.Equal(t, 10, q.Limit)
}

func TestServer_Articles_DefaultLimit(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetArticlesFunc: func(_ context.Context, _ db.ArticlesQuery) ([]*domain.Article, error) {
			return nil, nil
		},
	}
	ts := testServer(t, database, &mocks.SchedulerMock{})

	resp := getJSON(t, ts.URL+"/api/v1/articles?limit=bogus", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, database.GetArticlesCalls(), 1)
	assert.Equal(t, 50, database.GetArticlesCalls()[0].Q.Limit, "unparseable limit falls back to default")
}

func TestServer_Article(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetArticleFunc: func(_ context.Context, url string) (*domain.Article, error) {
			if url == "https://bbc.com/news/1" {
				return &domain.Article{URL: url, Title: "Found story"}, nil
			}
			return nil, fmt.Errorf("not found")
		},
	}
	ts := testServer(t, database, &mocks.SchedulerMock{})

	t.Run("found", func(t *testing.T) {
		var article domain.Article
		resp := getJSON(t, ts.URL+"/api/v1/article?url=https://bbc.com/news/1", &article)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Found story", article.Title)
	})

	t.Run("missing url param", func(t *testing.T) {
		resp := getJSON(t, ts.URL+"/api/v1/article", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		resp := getJSON(t, ts.URL+"/api/v1/article?url=https://bbc.com/news/nope", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_Rejected(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetRejectedFunc: func(_ context.Context, limit int) ([]*domain.RejectedArticle, error) {
			assert.Equal(t, 5, limit)
			return []*domain.RejectedArticle{
				{Article: domain.Article{URL: "https://cnn.com/1"}, Reason: domain.ReasonTextTooShort},
			}, nil
		},
	}
	ts := testServer(t, database, &mocks.SchedulerMock{})

	var body struct {
		Rejected []domain.RejectedArticle `json:"rejected"`
		Count    int                      `json:"count"`
	}
	resp := getJSON(t, ts.URL+"/api/v1/rejected?limit=5", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, domain.ReasonTextTooShort, body.Rejected[0].Reason)
}

func TestServer_Runs(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetRecentRunsFunc: func(_ context.Context, limit int) ([]domain.PipelineRun, error) {
			return []domain.PipelineRun{
				{ID: 2, Status: domain.RunStatusCompleted, Stored: 10},
				{ID: 1, Status: domain.RunStatusFailed},
			}, nil
		},
	}
	ts := testServer(t, database, &mocks.SchedulerMock{})

	var body struct {
		Runs  []domain.PipelineRun `json:"runs"`
		Count int                  `json:"count"`
	}
	resp := getJSON(t, ts.URL+"/api/v1/runs", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, body.Count)
	assert.Equal(t, int64(2), body.Runs[0].ID)
	assert.Equal(t, 20, database.GetRecentRunsCalls()[0].Limit)
}

func TestServer_Categories(t *testing.T) {
	database := &mocks.DatabaseMock{
		GetCategoriesFunc: func(_ context.Context) ([]db.CountRow, error) {
			return []db.CountRow{{Key: "journalism, news and media", Count: 42}}, nil
		},
	}
	ts := testServer(t, database, &mocks.SchedulerMock{})

	var body struct {
		Categories []db.CountRow `json:"categories"`
	}
	resp := getJSON(t, ts.URL+"/api/v1/categories", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Categories, 1)
	assert.Equal(t, 42, body.Categories[0].Count)
}

func TestServer_TriggerRun(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		scheduler := &mocks.SchedulerMock{
			RunNowFunc: func(_ context.Context) error { return nil },
		}
		ts := testServer(t, &mocks.DatabaseMock{}, scheduler)

		resp, err := http.Post(ts.URL+"/api/v1/run", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		assert.Len(t, scheduler.RunNowCalls(), 1)
	})

	t.Run("conflict when busy", func(t *testing.T) {
		scheduler := &mocks.SchedulerMock{
			RunNowFunc: func(_ context.Context) error { return fmt.Errorf("batch already in progress") },
		}
		ts := testServer(t, &mocks.DatabaseMock{}, scheduler)

		resp, err := http.Post(ts.URL+"/api/v1/run", "application/json", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 5 * time.Second },
	}
	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.SchedulerMock{}, "test", true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
