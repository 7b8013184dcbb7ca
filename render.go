package hnlist

import "context"

// Renderer loads HTML into a live browser page so that extraction sees the
// document as a browser would after scripts run.
type Renderer interface {
	// Render loads html and calls fn with the rendered document. The
	// document is only valid for the duration of fn.
	Render(ctx context.Context, html string, fn func(Document) error) error

	// Close releases browser resources.
	Close() error
}
