package procstatus

import (
	"net/http"

	"github.com/dshills/pagedit/internal/config"
)

// FromConfig creates an HTTP-backed monitor for process id. Options in
// opts override the configured values.
func FromConfig(id string, cfg config.Status, renderer Renderer, opts ...Option) *Monitor {
	fetcher := &HTTPFetcher{
		BaseURL: cfg.BaseURL,
		Client:  &http.Client{Timeout: cfg.RequestTimeout.Std()},
	}
	base := []Option{
		WithInterval(cfg.Interval.Std()),
		WithStallTimeout(cfg.StallTimeout.Std()),
		WithLabel(cfg.Label),
	}
	return New(id, fetcher, renderer, append(base, opts...)...)
}
