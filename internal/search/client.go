// internal/search/client.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	svcerrors "github.com/lenamwu/bite-search-api/internal/common/errors"
	httpclient "github.com/lenamwu/bite-search-api/internal/common/http"
	"github.com/lenamwu/bite-search-api/internal/common/metrics"
)

// Client talks to the Google Custom Search API in image-search mode.
type Client struct {
	config *Config
	http   *httpclient.Client
	logger *zap.Logger
}

func NewClient(config *Config, client *httpclient.Client, logger *zap.Logger) *Client {
	return &Client{
		config: config,
		http:   client,
		logger: logger,
	}
}

// Search performs the upstream query. Every failure mode, network error,
// non-200 status, or undecodable body, surfaces as a SEARCH_API_ERROR
// carrying the upstream error text.
func (c *Client) Search(ctx context.Context, in *Input) (*googleResponse, error) {
	searchURL := c.buildSearchURL(in)

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, svcerrors.NewSearchAPIError(err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamSearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, svcerrors.NewSearchAPIError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, svcerrors.NewSearchAPIError(fmt.Errorf("search API returned %d", resp.StatusCode))
	}

	var data googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, svcerrors.NewSearchAPIError(err)
	}

	return &data, nil
}

func (c *Client) buildSearchURL(in *Input) string {
	baseURL, _ := url.Parse(c.config.BaseURL)
	params := url.Values{}
	params.Add("key", in.APIKey)
	params.Add("cx", in.EngineID)
	params.Add("q", in.Query)
	params.Add("num", strconv.Itoa(in.Num))
	params.Add("searchType", "image")
	params.Add("safe", "active")
	params.Add("fields", "items(title,link,snippet,image,displayLink),searchInformation(searchTime,totalResults)")
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}
