package common

const (
	// NotAvailable is the sentinel for absent string fields in API responses.
	NotAvailable = "N/A"

	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	DefaultMaxResults  = 5
	DefaultMatchCutoff = 0.6
)

// Web search categories, in the order they are queried.
const (
	CategoryLatestNews        = "latest_news"
	CategoryFinancialNews     = "financial_news"
	CategoryInvestorRelations = "investor_relations"
	CategoryMarketOutlook     = "market_outlook"
)

// News modes select which search variant(s) feed the analyze response.
const (
	NewsModeArticles   = "articles"
	NewsModeCategories = "categories"
	NewsModeBoth       = "both"
)

// Article sources for the site-scoped news variant.
const (
	ArticleSourceHTML = "html"
	ArticleSourceRSS  = "rss"
)
