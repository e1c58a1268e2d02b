package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/internal/analyzer/dto"
	"golang-company-analyzer/internal/entity"
	"golang-company-analyzer/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/net/publicsuffix"
)

const (
	crumbCacheKey = "yahoo_crumb"

	quoteSummaryModules = "price,summaryDetail,summaryProfile,financialData,defaultKeyStatistics,quoteType"
)

// YahooFinanceRepository talks to the Yahoo Finance search, quoteSummary and chart APIs.
type YahooFinanceRepository interface {
	SearchQuotes(ctx context.Context, query string) ([]entity.QuoteCandidate, error)
	GetQuoteSummary(ctx context.Context, ticker string) (*dto.YahooInfo, error)
	GetChart(ctx context.Context, ticker string, rangeData string, interval string) (*dto.ChartData, error)
}

type yahooFinanceRepository struct {
	cfg   *config.Config
	log   *logger.Logger
	req   *requester
	crumb *cache.Cache
	mu    sync.Mutex
}

// NewYahooFinanceRepository creates a repository whose HTTP client keeps Yahoo's
// session cookies so quoteSummary calls can be authorised with a crumb.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) (YahooFinanceRepository, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	crumbTTL := cfg.YahooFinance.CrumbTTL
	if crumbTTL <= 0 {
		crumbTTL = 30 * time.Minute
	}

	return &yahooFinanceRepository{
		cfg: cfg,
		log: log,
		req: &requester{
			name: "yahoo_finance",
			log:  log,
			client: &http.Client{
				Jar:     jar,
				Timeout: cfg.HTTPClient.Timeout,
			},
			limiter:   newRequestLimiter(cfg.YahooFinance.MaxRequestPerMinute),
			userAgent: cfg.HTTPClient.UserAgent,
		},
		crumb: cache.New(crumbTTL, 2*crumbTTL),
	}, nil
}

func (r *yahooFinanceRepository) SearchQuotes(ctx context.Context, query string) ([]entity.QuoteCandidate, error) {
	params := url.Values{}
	params.Set("q", query)
	body, err := r.req.get(ctx, r.cfg.YahooFinance.SearchURL+"?"+params.Encode(), "application/json")
	if err != nil {
		return nil, fmt.Errorf("failed to search quotes: %w", err)
	}

	var response dto.YahooSearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		r.log.ErrorContext(ctx, "Failed to decode search response", logger.ErrorField(err), logger.StringField("query", query))
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	candidates := make([]entity.QuoteCandidate, 0, len(response.Quotes))
	for _, q := range response.Quotes {
		candidates = append(candidates, entity.QuoteCandidate{
			Symbol:    q.Symbol,
			LongName:  q.LongName,
			ShortName: q.ShortName,
		})
	}
	return candidates, nil
}

func (r *yahooFinanceRepository) GetQuoteSummary(ctx context.Context, ticker string) (*dto.YahooInfo, error) {
	crumb, err := r.getCrumb(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("modules", quoteSummaryModules)
	params.Set("crumb", crumb)
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", r.cfg.YahooFinance.BaseURL, url.PathEscape(ticker), params.Encode())

	body, err := r.req.get(ctx, endpoint, "application/json")
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			// Stale crumb; the next request starts a new session.
			r.crumb.Delete(crumbCacheKey)
		}
		return nil, fmt.Errorf("failed to get quote summary: %w", err)
	}

	var response dto.YahooQuoteSummaryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		r.log.ErrorContext(ctx, "Failed to decode quote summary", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, fmt.Errorf("failed to decode quote summary: %w", err)
	}
	if response.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quote summary error: %s: %s", response.QuoteSummary.Error.Code, response.QuoteSummary.Error.Description)
	}

	var info dto.YahooInfo
	if len(response.QuoteSummary.Result) > 0 {
		info = response.QuoteSummary.Result[0].Info()
	}
	return &info, nil
}

func (r *yahooFinanceRepository) GetChart(ctx context.Context, ticker string, rangeData string, interval string) (*dto.ChartData, error) {
	params := url.Values{}
	params.Set("range", rangeData)
	params.Set("interval", interval)
	params.Set("includePrePost", "false")
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s", r.cfg.YahooFinance.BaseURL, url.PathEscape(ticker), params.Encode())

	body, err := r.req.get(ctx, endpoint, "application/json")
	if err != nil {
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}

	var response dto.YahooChartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		r.log.ErrorContext(ctx, "Failed to decode chart", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}
	if response.Chart.Error != nil {
		return nil, fmt.Errorf("chart error: %s: %s", response.Chart.Error.Code, response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart returned no result for %s", ticker)
	}

	result := response.Chart.Result[0]
	data := &dto.ChartData{
		Symbol:    result.Meta.Symbol,
		GMTOffset: result.Meta.GMTOffset,
		Bars:      make([]dto.ChartBar, 0, len(result.Timestamp)),
	}

	var closes []*float64
	if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}
	for i, ts := range result.Timestamp {
		bar := dto.ChartBar{Timestamp: ts}
		if i < len(closes) {
			bar.Close = closes[i]
		}
		data.Bars = append(data.Bars, bar)
	}

	return data, nil
}

// getCrumb returns the cached crumb or starts a new session: a request to the session
// URL to collect cookies, then the crumb endpoint.
func (r *yahooFinanceRepository) getCrumb(ctx context.Context) (string, error) {
	if crumb, ok := r.crumb.Get(crumbCacheKey); ok {
		return crumb.(string), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if crumb, ok := r.crumb.Get(crumbCacheKey); ok {
		return crumb.(string), nil
	}

	r.primeSession(ctx)

	body, err := r.req.get(ctx, r.cfg.YahooFinance.BaseURL+"/v1/test/getcrumb", "text/plain")
	if err != nil {
		return "", fmt.Errorf("failed to get crumb: %w", err)
	}

	crumb := strings.TrimSpace(string(body))
	if crumb == "" || strings.Contains(crumb, "<") {
		r.log.ErrorContext(ctx, "Invalid crumb received", logger.StringField("crumb", crumb))
		return "", errors.New("invalid crumb received")
	}

	r.crumb.Set(crumbCacheKey, crumb, cache.DefaultExpiration)
	return crumb, nil
}

// primeSession only collects cookies. The session host usually answers 404, so the
// status is ignored and failures are left for the crumb request to surface.
func (r *yahooFinanceRepository) primeSession(ctx context.Context) {
	if r.cfg.YahooFinance.SessionURL == "" {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.YahooFinance.SessionURL, nil)
	if err != nil {
		r.log.WarnContext(ctx, "Failed to create session request", logger.ErrorField(err))
		return
	}
	req.Header.Set("User-Agent", r.req.userAgent)

	if err := r.req.limiter.Wait(ctx); err != nil {
		return
	}
	resp, err := r.req.client.Do(req)
	if err != nil {
		r.log.WarnContext(ctx, "Failed to prime Yahoo session", logger.ErrorField(err))
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
