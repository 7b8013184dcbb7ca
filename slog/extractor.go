package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/hnlist"
)

// Ensure LoggingExtractor implements hnlist.ListingExtractor.
var _ hnlist.ListingExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ListingExtractor with debug logging.
type LoggingExtractor struct {
	next   hnlist.ListingExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next hnlist.ListingExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(doc hnlist.Document) (stories []*hnlist.Story, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"count", len(stories),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc)
}
