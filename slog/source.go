// Package slog provides logging decorators for uwdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uwdocs"
)

// Ensure the decorators implement their interfaces.
var (
	_ uwdocs.RulesTextSource = (*LoggingRulesTextSource)(nil)
	_ uwdocs.CardListSource  = (*LoggingCardListSource)(nil)
)

// LoggingRulesTextSource wraps a RulesTextSource with logging.
type LoggingRulesTextSource struct {
	next   uwdocs.RulesTextSource
	logger *slog.Logger
}

// NewLoggingRulesTextSource creates a new LoggingRulesTextSource.
func NewLoggingRulesTextSource(next uwdocs.RulesTextSource, logger *slog.Logger) *LoggingRulesTextSource {
	return &LoggingRulesTextSource{next: next, logger: logger}
}

// FetchRulesText delegates to the wrapped source and logs the operation.
func (s *LoggingRulesTextSource) FetchRulesText(ctx context.Context) (texts map[int]string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("rules table",
			"count", len(texts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchRulesText(ctx)
}

// LoggingCardListSource wraps a CardListSource with logging.
type LoggingCardListSource struct {
	next   uwdocs.CardListSource
	logger *slog.Logger
}

// NewLoggingCardListSource creates a new LoggingCardListSource.
func NewLoggingCardListSource(next uwdocs.CardListSource, logger *slog.Logger) *LoggingCardListSource {
	return &LoggingCardListSource{next: next, logger: logger}
}

// FetchCardListPage delegates to the wrapped source and logs the operation.
func (s *LoggingCardListSource) FetchCardListPage(ctx context.Context, page int) (result *uwdocs.CardListPage, err error) {
	defer func(begin time.Time) {
		var count int
		if result != nil {
			count = len(result.Cards)
		}
		s.logger.Debug("card list page",
			"page", page,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchCardListPage(ctx, page)
}
