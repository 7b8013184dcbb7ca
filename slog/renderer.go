package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hnlist"
)

// Ensure LoggingRenderer implements hnlist.Renderer.
var _ hnlist.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   hnlist.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next hnlist.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
// The duration includes the time spent in fn.
func (r *LoggingRenderer) Render(ctx context.Context, html string, fn func(hnlist.Document) error) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, html, fn)
}

// Close closes the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
