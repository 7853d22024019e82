// Package imagecheck decides whether an image URL is currently fetchable
// and actually serves image content, using the weserv.nl resizing proxy
// as an existence oracle. Every failure mode collapses to false; nothing
// in this package returns an error to its caller.
package imagecheck

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	httpclient "github.com/lenamwu/bite-search-api/internal/common/http"
	"github.com/lenamwu/bite-search-api/internal/common/metrics"
)

type Prober struct {
	config *Config
	client *httpclient.Client
	logger *zap.Logger
}

func NewProber(config *Config, client *httpclient.Client, logger *zap.Logger) *Prober {
	return &Prober{
		config: config,
		client: client,
		logger: logger,
	}
}

// Probe issues a HEAD request against the image proxy with the target
// URL embedded as a query parameter. It reports true only when the
// probe answers 200 with an image/* content type; any other outcome,
// including an empty URL, a timeout, or a network error, is false.
func (p *Prober) Probe(ctx context.Context, imageURL string) bool {
	if imageURL == "" {
		metrics.ImageValidationsTotal.WithLabelValues("skipped").Inc()
		return false
	}

	probeURL, err := p.buildProbeURL(imageURL)
	if err != nil {
		metrics.ImageValidationsTotal.WithLabelValues("invalid").Inc()
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
	if err != nil {
		metrics.ImageValidationsTotal.WithLabelValues("invalid").Inc()
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("image probe failed",
			zap.String("imageUrl", imageURL),
			zap.Error(err),
		)
		metrics.ImageValidationsTotal.WithLabelValues("invalid").Inc()
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ImageValidationsTotal.WithLabelValues("invalid").Inc()
		return false
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.HasPrefix(contentType, "image/") {
		metrics.ImageValidationsTotal.WithLabelValues("invalid").Inc()
		return false
	}

	metrics.ImageValidationsTotal.WithLabelValues("valid").Inc()
	return true
}

func (p *Prober) buildProbeURL(imageURL string) (string, error) {
	baseURL, err := url.Parse(p.config.ProxyBaseURL)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Add("url", imageURL)
	baseURL.RawQuery = params.Encode()
	return baseURL.String(), nil
}
