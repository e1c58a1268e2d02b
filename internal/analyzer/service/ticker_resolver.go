package service

import (
	"context"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/internal/analyzer/repository"
	"golang-company-analyzer/pkg/common"
	"golang-company-analyzer/pkg/fuzzy"
	"golang-company-analyzer/pkg/logger"
)

// TickerResolver maps a free-text company name to a ticker symbol.
type TickerResolver interface {
	Resolve(ctx context.Context, companyName string) (string, error)
}

type tickerResolver struct {
	log    *logger.Logger
	yahoo  repository.YahooFinanceRepository
	cutoff float64
	scorer fuzzy.Scorer
}

// NewTickerResolver creates a resolver. A nil scorer uses difflib's ratio.
func NewTickerResolver(cfg *config.Config, log *logger.Logger, yahoo repository.YahooFinanceRepository, scorer fuzzy.Scorer) TickerResolver {
	cutoff := cfg.Ticker.MatchCutoff
	if cutoff <= 0 {
		cutoff = common.DefaultMatchCutoff
	}
	return &tickerResolver{
		log:    log,
		yahoo:  yahoo,
		cutoff: cutoff,
		scorer: scorer,
	}
}

// Resolve returns ErrTickerNotFound when the search fails or yields nothing usable.
// When no candidate name is similar enough, the first candidate is used.
func (r *tickerResolver) Resolve(ctx context.Context, companyName string) (string, error) {
	candidates, err := r.yahoo.SearchQuotes(ctx, companyName)
	if err != nil {
		r.log.ErrorContext(ctx, "Error fetching ticker", logger.ErrorField(err), logger.StringField("company_name", companyName))
		return "", ErrTickerNotFound
	}
	if len(candidates) == 0 {
		r.log.InfoContext(ctx, "No ticker candidates", logger.StringField("company_name", companyName))
		return "", ErrTickerNotFound
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name()
	}

	symbol := candidates[0].Symbol
	if idx, ok := fuzzy.ClosestMatch(companyName, names, r.cutoff, r.scorer); ok {
		for _, c := range candidates {
			if c.Name() == names[idx] {
				symbol = c.Symbol
				break
			}
		}
	} else {
		r.log.DebugContext(ctx, "No candidate cleared the match cutoff, using first result",
			logger.StringField("company_name", companyName),
			logger.StringField("symbol", symbol))
	}

	if symbol == "" {
		return "", ErrTickerNotFound
	}

	r.log.DebugContext(ctx, "Resolved ticker", logger.StringField("company_name", companyName), logger.StringField("symbol", symbol))
	return symbol, nil
}
