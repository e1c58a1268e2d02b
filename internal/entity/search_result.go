package entity

// SearchResultItem is a single news article or web search hit. Site-scoped article
// results carry Source; web search results carry Snippet.
type SearchResultItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Source  string `json:"source,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}
