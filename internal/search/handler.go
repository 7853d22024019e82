// internal/search/handler.go
package search

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// Handler runs one search request end to end: upstream query, response
// reshaping, concurrent image validation, envelope assembly.
type Handler struct {
	config *Config
	client *Client
	filter *ImageFilter
	logger *zap.Logger
}

func NewHandler(config *Config, client *Client, filter *ImageFilter, logger *zap.Logger) *Handler {
	return &Handler{
		config: config,
		client: client,
		filter: filter,
		logger: logger,
	}
}

func (h *Handler) Execute(ctx context.Context, in *Input) (*Response, error) {
	if in.Num <= 0 {
		in.Num = h.config.DefaultNum
	}
	if in.Num > h.config.MaxNum {
		in.Num = h.config.MaxNum
	}

	data, err := h.client.Search(ctx, in)
	if err != nil {
		return nil, err
	}

	searchTime := formatSearchTime(data.SearchInformation.SearchTime)

	// No upstream hits: skip validation entirely.
	if len(data.Items) == 0 {
		return &Response{
			Results:      []Result{},
			TotalResults: 0,
			SearchTime:   searchTime,
		}, nil
	}

	results := make([]Result, 0, len(data.Items))
	for _, item := range data.Items {
		recipeURL := item.Image.ContextLink
		imageURL := item.Link
		if recipeURL == "" || imageURL == "" {
			continue
		}

		results = append(results, Result{
			Title:   item.Title,
			URL:     recipeURL,
			Image:   imageURL,
			Source:  ExtractDomain(recipeURL),
			Snippet: item.Snippet,
		})
	}

	results = h.filter.Apply(ctx, results)

	h.logger.Info("search completed",
		zap.String("query", in.Query),
		zap.Int("resultCount", len(results)),
	)

	return &Response{
		Results:      results,
		TotalResults: parseTotalResults(data.SearchInformation.TotalResults, len(results)),
		SearchTime:   searchTime,
	}, nil
}

func parseTotalResults(raw string, fallback int) int {
	total, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return total
}

func formatSearchTime(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
