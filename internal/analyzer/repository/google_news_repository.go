package repository

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang-company-analyzer/internal/analyzer/config"
	"golang-company-analyzer/internal/entity"
	"golang-company-analyzer/pkg/common"
	"golang-company-analyzer/pkg/logger"
	"golang-company-analyzer/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const (
	articleSelector       = "article"
	articleTitleSelector  = "h3"
	articleLinkSelector   = "a[href]"
	articleSourceSelector = "div[data-n-tid]"

	// Google News RSS titles end with " - <publisher>".
	rssTitleSourceSeparator = " - "
)

// NewsArticleRepository searches a news site for articles about a company.
type NewsArticleRepository interface {
	SearchArticles(ctx context.Context, query string, limit int) ([]entity.SearchResultItem, error)
}

type googleNewsRepository struct {
	cfg *config.Config
	log *logger.Logger
	req *requester
}

// NewGoogleNewsRepository scrapes the Google News HTML search page.
func NewGoogleNewsRepository(cfg *config.Config, log *logger.Logger, client *http.Client) NewsArticleRepository {
	return &googleNewsRepository{
		cfg: cfg,
		log: log,
		req: newNewsRequester("google_news", cfg, log, client),
	}
}

func (r *googleNewsRepository) SearchArticles(ctx context.Context, query string, limit int) ([]entity.SearchResultItem, error) {
	gn := r.cfg.News.GoogleNews
	endpoint := fmt.Sprintf("%s/search?q=%s&hl=%s&gl=%s",
		strings.TrimRight(gn.BaseURL, "/"), escapeQuery(query), url.QueryEscape(gn.HL), url.QueryEscape(gn.GL))

	body, err := r.req.get(ctx, endpoint, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse news page", logger.ErrorField(err), logger.StringField("query", query))
		return nil, fmt.Errorf("failed to parse news page: %w", err)
	}

	origin, err := siteOrigin(gn.BaseURL)
	if err != nil {
		return nil, err
	}

	return ParseNewsArticles(doc, origin, limit), nil
}

// ParseNewsArticles reads the first limit article elements of a news search page.
// Articles missing a title, link or source are skipped, so fewer than limit items
// may come back. Relative links are resolved against origin.
func ParseNewsArticles(doc *goquery.Document, origin *url.URL, limit int) []entity.SearchResultItem {
	items := make([]entity.SearchResultItem, 0, limit)

	articles := doc.Find(articleSelector)
	if articles.Length() > limit {
		articles = articles.Slice(0, limit)
	}

	articles.Each(func(i int, s *goquery.Selection) {
		title := utils.CleanText(s.Find(articleTitleSelector).First().Text())
		href, _ := s.Find(articleLinkSelector).First().Attr("href")
		source := utils.CleanText(s.Find(articleSourceSelector).First().Text())
		if title == "" || href == "" || source == "" {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		items = append(items, entity.SearchResultItem{
			Title:  title,
			Link:   origin.ResolveReference(ref).String(),
			Source: source,
		})
	})

	return items
}

// NewNewsArticleRepository picks the article source named by news.articles.source.
func NewNewsArticleRepository(cfg *config.Config, log *logger.Logger, client *http.Client) (NewsArticleRepository, error) {
	switch cfg.News.Articles.Source {
	case common.ArticleSourceHTML, "":
		return NewGoogleNewsRepository(cfg, log, client), nil
	case common.ArticleSourceRSS:
		return NewGoogleNewsRSSRepository(cfg, log, client), nil
	default:
		return nil, fmt.Errorf("unknown article source %q", cfg.News.Articles.Source)
	}
}

type googleNewsRSSRepository struct {
	cfg *config.Config
	log *logger.Logger
	req *requester
}

// NewGoogleNewsRSSRepository reads the Google News RSS search feed.
func NewGoogleNewsRSSRepository(cfg *config.Config, log *logger.Logger, client *http.Client) NewsArticleRepository {
	return &googleNewsRSSRepository{
		cfg: cfg,
		log: log,
		req: newNewsRequester("google_news_rss", cfg, log, client),
	}
}

func (r *googleNewsRSSRepository) SearchArticles(ctx context.Context, query string, limit int) ([]entity.SearchResultItem, error) {
	gn := r.cfg.News.GoogleNews
	endpoint := fmt.Sprintf("%s/rss/search?q=%s&hl=%s&gl=%s&ceid=%s",
		strings.TrimRight(gn.BaseURL, "/"), escapeQuery(query), url.QueryEscape(gn.HL), url.QueryEscape(gn.GL), url.QueryEscape(gn.CEID))

	body, err := r.req.get(ctx, endpoint, "application/rss+xml,application/xml")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		r.log.ErrorContext(ctx, "Failed to parse news feed", logger.ErrorField(err), logger.StringField("query", query))
		return nil, fmt.Errorf("failed to parse news feed: %w", err)
	}

	items := make([]entity.SearchResultItem, 0, limit)
	feedItems := feed.Items
	if len(feedItems) > limit {
		feedItems = feedItems[:limit]
	}
	for _, item := range feedItems {
		title, source := splitFeedTitle(utils.CleanText(item.Title))
		if title == "" || item.Link == "" || source == "" {
			continue
		}
		items = append(items, entity.SearchResultItem{
			Title:  title,
			Link:   item.Link,
			Source: source,
		})
	}

	return items, nil
}

func splitFeedTitle(raw string) (title string, source string) {
	idx := strings.LastIndex(raw, rssTitleSourceSeparator)
	if idx < 0 {
		return raw, ""
	}
	return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+len(rssTitleSourceSeparator):])
}

func newNewsRequester(name string, cfg *config.Config, log *logger.Logger, client *http.Client) *requester {
	return &requester{
		name:      name,
		log:       log,
		client:    client,
		limiter:   newRequestLimiter(cfg.News.MaxRequestPerMinute),
		userAgent: cfg.HTTPClient.UserAgent,
	}
}

// escapeQuery encodes spaces as %20 rather than '+'.
func escapeQuery(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}

func siteOrigin(baseURL string) (*url.URL, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}, nil
}
