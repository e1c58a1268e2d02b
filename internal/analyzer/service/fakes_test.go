package service

import (
	"context"
	"errors"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/internal/analyzer/dto"
	"golang-company-analyzer/internal/entity"
	"golang-company-analyzer/pkg/common"

	"github.com/guregu/null/v6"
)

var errUpstream = errors.New("upstream unavailable")

type fakeYahoo struct {
	candidates []entity.QuoteCandidate
	searchErr  error
	info       *dto.YahooInfo
	infoErr    error
	chart      *dto.ChartData
	chartErr   error

	searchCalls int
	chartRange  string
}

func (f *fakeYahoo) SearchQuotes(ctx context.Context, query string) ([]entity.QuoteCandidate, error) {
	f.searchCalls++
	return f.candidates, f.searchErr
}

func (f *fakeYahoo) GetQuoteSummary(ctx context.Context, ticker string) (*dto.YahooInfo, error) {
	return f.info, f.infoErr
}

func (f *fakeYahoo) GetChart(ctx context.Context, ticker string, rangeData string, interval string) (*dto.ChartData, error) {
	f.chartRange = rangeData
	return f.chart, f.chartErr
}

type fakeArticles struct {
	items   []entity.SearchResultItem
	err     error
	queries []string
}

func (f *fakeArticles) SearchArticles(ctx context.Context, query string, limit int) ([]entity.SearchResultItem, error) {
	f.queries = append(f.queries, query)
	return f.items, f.err
}

type fakeWebSearch struct {
	// failOn lists queries that return an error.
	failOn  map[string]bool
	queries []string
	limits  []int
}

func (f *fakeWebSearch) Search(ctx context.Context, query string, limit int) ([]entity.SearchResultItem, error) {
	f.queries = append(f.queries, query)
	f.limits = append(f.limits, limit)
	if f.failOn[query] {
		return nil, errUpstream
	}
	return []entity.SearchResultItem{{Title: query, Link: "https://example.com/" + query, Snippet: "snippet"}}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		YahooFinance: config.YahooFinance{HistoryRange: "1y", HistoryInterval: "1d"},
		News:         config.News{Mode: common.NewsModeCategories, MaxResults: 5},
		Ticker:       config.Ticker{MatchCutoff: 0.6},
	}
}

func appleInfo() *dto.YahooInfo {
	return &dto.YahooInfo{
		LongName:          null.StringFrom("Apple Inc."),
		Exchange:          null.StringFrom("NMS"),
		Sector:            null.StringFrom("Technology"),
		CurrentPrice:      null.FloatFrom(190.1),
		MarketCap:         null.IntFrom(2950000000000),
		FiftyTwoWeekLow:   null.FloatFrom(164.08),
		FiftyTwoWeekHigh:  null.FloatFrom(199.62),
		TrailingPE:        null.FloatFrom(29.4),
		RecommendationKey: null.StringFrom("strong_buy"),
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
