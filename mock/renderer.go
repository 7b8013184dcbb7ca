package mock

import (
	"context"

	"github.com/fwojciec/hnlist"
)

var _ hnlist.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of hnlist.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, html string, fn func(hnlist.Document) error) error
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, html string, fn func(hnlist.Document) error) error {
	return r.RenderFn(ctx, html, fn)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}
