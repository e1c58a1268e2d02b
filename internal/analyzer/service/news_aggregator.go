package service

import (
	"context"
	"fmt"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/internal/analyzer/repository"
	"golang-company-analyzer/internal/entity"
	"golang-company-analyzer/pkg/common"
	"golang-company-analyzer/pkg/logger"
)

// searchCategory is one labelled web search issued per analyze request.
type searchCategory struct {
	label string
	query func(companyName, ticker string) string
}

// defaultSearchCategories lists the categories in the order they are queried.
func defaultSearchCategories() []searchCategory {
	return []searchCategory{
		{
			label: common.CategoryLatestNews,
			query: func(companyName, _ string) string {
				return fmt.Sprintf("%s latest news", companyName)
			},
		},
		{
			label: common.CategoryFinancialNews,
			query: func(companyName, _ string) string {
				return fmt.Sprintf("%s earnings financial results news", companyName)
			},
		},
		{
			label: common.CategoryInvestorRelations,
			query: func(companyName, _ string) string {
				return fmt.Sprintf("%s investor relations announcements", companyName)
			},
		},
		{
			label: common.CategoryMarketOutlook,
			query: func(companyName, ticker string) string {
				return fmt.Sprintf("%s %s stock market outlook analyst", companyName, ticker)
			},
		},
	}
}

// NewsAggregator gathers article and web search results. It never fails: any upstream
// problem degrades to an empty list for the affected query.
type NewsAggregator interface {
	Articles(ctx context.Context, companyName string) []entity.SearchResultItem
	WebSearch(ctx context.Context, query string) []entity.SearchResultItem
	Categories(ctx context.Context, companyName string, ticker string) map[string][]entity.SearchResultItem
}

type newsAggregator struct {
	log        *logger.Logger
	articles   repository.NewsArticleRepository
	webSearch  repository.WebSearchRepository
	maxResults int
	categories []searchCategory
}

func NewNewsAggregator(cfg *config.Config, log *logger.Logger, articles repository.NewsArticleRepository, webSearch repository.WebSearchRepository) NewsAggregator {
	maxResults := cfg.News.MaxResults
	if maxResults <= 0 {
		maxResults = common.DefaultMaxResults
	}
	return &newsAggregator{
		log:        log,
		articles:   articles,
		webSearch:  webSearch,
		maxResults: maxResults,
		categories: defaultSearchCategories(),
	}
}

func (a *newsAggregator) Articles(ctx context.Context, companyName string) []entity.SearchResultItem {
	items, err := a.articles.SearchArticles(ctx, companyName, a.maxResults)
	if err != nil {
		a.log.ErrorContext(ctx, "Error fetching news", logger.ErrorField(err), logger.StringField("company_name", companyName))
		return []entity.SearchResultItem{}
	}
	return nonNil(items)
}

func (a *newsAggregator) WebSearch(ctx context.Context, query string) []entity.SearchResultItem {
	items, err := a.webSearch.Search(ctx, query, a.maxResults)
	if err != nil {
		a.log.ErrorContext(ctx, "Error fetching web search results", logger.ErrorField(err), logger.StringField("query", query))
		return []entity.SearchResultItem{}
	}
	return nonNil(items)
}

// Categories runs every category search sequentially; each label is always present.
func (a *newsAggregator) Categories(ctx context.Context, companyName string, ticker string) map[string][]entity.SearchResultItem {
	results := make(map[string][]entity.SearchResultItem, len(a.categories))
	for _, category := range a.categories {
		query := category.query(companyName, ticker)
		results[category.label] = a.WebSearch(ctx, query)
		a.log.DebugContext(ctx, "Search category done",
			logger.StringField("category", category.label),
			logger.StringField("query", query),
			logger.IntField("results", len(results[category.label])))
	}
	return results
}

func nonNil(items []entity.SearchResultItem) []entity.SearchResultItem {
	if items == nil {
		return []entity.SearchResultItem{}
	}
	return items
}
