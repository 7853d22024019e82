// internal/search/filter.go
package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ImageProber reports whether an image URL is live and serves image
// content. Implementations never return an error; uncertainty is false.
type ImageProber interface {
	Probe(ctx context.Context, imageURL string) bool
}

// ImageFilter validates every candidate's image concurrently and drops
// the ones whose probe did not pass.
type ImageFilter struct {
	prober ImageProber
	logger *zap.Logger
}

func NewImageFilter(prober ImageProber, logger *zap.Logger) *ImageFilter {
	return &ImageFilter{
		prober: prober,
		logger: logger,
	}
}

// Apply returns the candidates whose image passed validation, preserving
// the upstream order. Per-candidate failures are final and silent. When
// the wait step itself fails the unfiltered input is returned instead: a
// validator outage must not zero out search results.
func (f *ImageFilter) Apply(ctx context.Context, results []Result) []Result {
	if len(results) == 0 {
		return results
	}

	outcomes, err := f.gather(ctx, results)
	if err != nil {
		f.logger.Warn("image validation unavailable, returning unfiltered results",
			zap.Int("candidates", len(results)),
			zap.Error(err),
		)
		return results
	}

	validated := make([]Result, 0, len(results))
	for i, result := range results {
		if outcomes[i] {
			validated = append(validated, result)
		}
	}
	return validated
}

// gather launches one probe per candidate with no concurrency cap; num
// is bounded to 10 upstream, so fan-out stays small.
func (f *ImageFilter) gather(parent context.Context, results []Result) ([]bool, error) {
	outcomes := make([]bool, len(results))

	g, ctx := errgroup.WithContext(parent)
	for i, result := range results {
		g.Go(func() error {
			outcomes[i] = f.prober.Probe(ctx, result.Image)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A dead parent context means the whole wait step failed, not any
	// single candidate.
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
