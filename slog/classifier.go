package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hnlist"
)

// Ensure LoggingClassifier implements hnlist.Classifier.
var _ hnlist.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   hnlist.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next hnlist.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the verdict.
func (c *LoggingClassifier) Classify(ctx context.Context, story *hnlist.Story, topic string) (match bool, err error) {
	defer func(begin time.Time) {
		var id string
		if story != nil {
			id = story.ID
		}
		c.logger.Info("classify",
			"id", id,
			"match", match,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Classify(ctx, story, topic)
}
