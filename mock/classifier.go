package mock

import (
	"context"

	"github.com/fwojciec/hnlist"
)

var _ hnlist.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of hnlist.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, story *hnlist.Story, topic string) (bool, error)
}

func (c *Classifier) Classify(ctx context.Context, story *hnlist.Story, topic string) (bool, error) {
	return c.ClassifyFn(ctx, story, topic)
}
