package service

import (
	"context"
	"strings"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/internal/analyzer/dto"
	"golang-company-analyzer/pkg/common"
	"golang-company-analyzer/pkg/logger"
	"golang-company-analyzer/pkg/utils"
)

// AnalyzeService runs resolve, fetch and search for one company, in that order.
type AnalyzeService interface {
	Analyze(ctx context.Context, companyName string) (*dto.AnalyzeResponse, error)
}

type analyzeService struct {
	cfg      *config.Config
	log      *logger.Logger
	resolver TickerResolver
	fetcher  FinancialDataFetcher
	news     NewsAggregator
}

func NewAnalyzeService(cfg *config.Config, log *logger.Logger, resolver TickerResolver, fetcher FinancialDataFetcher, news NewsAggregator) AnalyzeService {
	return &analyzeService{
		cfg:      cfg,
		log:      log,
		resolver: resolver,
		fetcher:  fetcher,
		news:     news,
	}
}

// Analyze returns an *AnalyzeError wrapping ErrEmptyCompanyName, ErrTickerNotFound or
// ErrDataUnavailable. News failures never surface as errors.
func (s *analyzeService) Analyze(ctx context.Context, companyName string) (*dto.AnalyzeResponse, error) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil, &AnalyzeError{Kind: ErrEmptyCompanyName, CompanyName: companyName}
	}

	ticker, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, &AnalyzeError{Kind: ErrTickerNotFound, CompanyName: name}
	}

	snapshot, err := s.fetcher.Fetch(ctx, ticker)
	if err != nil {
		return nil, &AnalyzeError{Kind: ErrDataUnavailable, CompanyName: name, Ticker: ticker}
	}

	// Searching with the listed name gives better articles than the user's input.
	newsName := name
	if snapshot.CompanyName != "" && snapshot.CompanyName != common.NotAvailable {
		newsName = snapshot.CompanyName
	}

	response := &dto.AnalyzeResponse{
		Query:         companyName,
		FinancialData: snapshot,
	}

	switch mode := s.cfg.News.Mode; mode {
	case common.NewsModeArticles:
		response.RecentNews = utils.ToPointer(s.news.Articles(ctx, newsName))
	case common.NewsModeBoth:
		response.RecentNews = utils.ToPointer(s.news.Articles(ctx, newsName))
		response.News = s.news.Categories(ctx, newsName, ticker)
	case common.NewsModeCategories:
		response.News = s.news.Categories(ctx, newsName, ticker)
	default:
		s.log.WarnContext(ctx, "Unknown news mode, using categories", logger.StringField("news_mode", mode))
		response.News = s.news.Categories(ctx, newsName, ticker)
	}

	s.log.InfoContext(ctx, "Company analyzed",
		logger.StringField("company_name", name),
		logger.StringField("ticker", ticker),
		logger.IntField("history_points", len(snapshot.HistoricalPrices)))

	return response, nil
}
