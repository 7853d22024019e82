// internal/search/handler_test.go
package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcerrors "github.com/lenamwu/bite-search-api/internal/common/errors"
	httpclient "github.com/lenamwu/bite-search-api/internal/common/http"
	"github.com/lenamwu/bite-search-api/internal/common/logger"
)

func newTestHandler(t *testing.T, upstreamURL string, prober ImageProber) *Handler {
	config := &Config{
		BaseURL:    upstreamURL,
		Timeout:    5 * time.Second,
		DefaultNum: 10,
		MaxNum:     10,
	}
	log := logger.NewTestLogger(t)
	client := NewClient(config, httpclient.NewClient(httpclient.Options{Timeout: 10 * time.Second}), log)
	filter := NewImageFilter(prober, log)
	return NewHandler(config, client, filter, log)
}

func alwaysValid() ImageProber {
	return proberFunc(func(_ context.Context, _ string) bool { return true })
}

const upstreamBody = `{
	"items": [
		{
			"title": "Chocolate Chip Cookies",
			"link": "https://img.example.com/cookies.jpg",
			"snippet": "The best cookies.",
			"displayLink": "www.example.com",
			"image": {"contextLink": "https://www.example.com/recipes/cookies"}
		},
		{
			"title": "Orphaned Image",
			"link": "https://img.example.com/orphan.jpg",
			"snippet": "No context page.",
			"displayLink": "example.org",
			"image": {}
		}
	],
	"searchInformation": {"searchTime": 0.42, "totalResults": "2407"}
}`

func TestHandler_Execute_DiscardsItemsMissingLinksAndKeepsUpstreamTotals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "chocolate chip cookies", q.Get("q"))
		assert.Equal(t, "test-api-key", q.Get("key"))
		assert.Equal(t, "test-engine-id", q.Get("cx"))
		assert.Equal(t, "10", q.Get("num"))
		assert.Equal(t, "image", q.Get("searchType"))
		assert.Equal(t, "active", q.Get("safe"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamBody))
	}))
	defer server.Close()

	handler := newTestHandler(t, server.URL, alwaysValid())

	resp, err := handler.Execute(context.Background(), &Input{
		Query:    "chocolate chip cookies",
		APIKey:   "test-api-key",
		EngineID: "test-engine-id",
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1) // item without contextLink discarded
	assert.Equal(t, "Chocolate Chip Cookies", resp.Results[0].Title)
	assert.Equal(t, "https://www.example.com/recipes/cookies", resp.Results[0].URL)
	assert.Equal(t, "https://img.example.com/cookies.jpg", resp.Results[0].Image)
	assert.Equal(t, "example.com", resp.Results[0].Source)

	// Envelope totals reflect the unfiltered upstream answer.
	assert.Equal(t, 2407, resp.TotalResults)
	assert.Equal(t, "0.42", resp.SearchTime)
}

func TestHandler_Execute_FiltersResultsWithDeadImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamBody))
	}))
	defer server.Close()

	prober := proberFunc(func(_ context.Context, _ string) bool { return false })
	handler := newTestHandler(t, server.URL, prober)

	resp, err := handler.Execute(context.Background(), &Input{
		Query:    "cookies",
		APIKey:   "k",
		EngineID: "cx",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 2407, resp.TotalResults) // still the upstream count
}

func TestHandler_Execute_EmptyUpstreamSkipsValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"searchInformation": {"searchTime": 0.12, "totalResults": "0"}}`))
	}))
	defer server.Close()

	var probes int64
	prober := proberFunc(func(_ context.Context, _ string) bool {
		atomic.AddInt64(&probes, 1)
		return true
	})
	handler := newTestHandler(t, server.URL, prober)

	resp, err := handler.Execute(context.Background(), &Input{
		Query:    "nothing",
		APIKey:   "k",
		EngineID: "cx",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.TotalResults)
	assert.Equal(t, "0.12", resp.SearchTime)
	assert.Equal(t, int64(0), atomic.LoadInt64(&probes))
}

func TestHandler_Execute_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	handler := newTestHandler(t, server.URL, alwaysValid())

	resp, err := handler.Execute(context.Background(), &Input{
		Query:    "cookies",
		APIKey:   "bad-key",
		EngineID: "cx",
	})

	require.Error(t, err)
	assert.Nil(t, resp)

	var svcErr *svcerrors.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, svcerrors.ErrCodeSearchAPIError, svcErr.Code)
	assert.Contains(t, svcErr.Detail(), "search API returned 403")
}

func TestHandler_Execute_ClampsNumToAPILimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("num"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"searchInformation": {"searchTime": 0.1, "totalResults": "0"}}`))
	}))
	defer server.Close()

	handler := newTestHandler(t, server.URL, alwaysValid())

	_, err := handler.Execute(context.Background(), &Input{
		Query:    "cookies",
		APIKey:   "k",
		EngineID: "cx",
		Num:      25,
	})

	require.NoError(t, err)
}

func TestHandler_Execute_TotalResultsFallbackOnUnparseableCount(t *testing.T) {
	body := `{
		"items": [
			{
				"title": "Pancakes",
				"link": "https://img.example.com/pancakes.jpg",
				"snippet": "Fluffy.",
				"displayLink": "example.com",
				"image": {"contextLink": "https://example.com/pancakes"}
			}
		],
		"searchInformation": {"searchTime": 0.2}
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	handler := newTestHandler(t, server.URL, alwaysValid())

	resp, err := handler.Execute(context.Background(), &Input{
		Query:    "pancakes",
		APIKey:   "k",
		EngineID: "cx",
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 1, resp.TotalResults) // falls back to the surviving count
}
