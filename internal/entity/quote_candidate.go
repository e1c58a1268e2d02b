package entity

// QuoteCandidate is one hit from the ticker search endpoint.
type QuoteCandidate struct {
	Symbol    string
	LongName  string
	ShortName string
}

// Name prefers the long-form name and falls back to the short one.
func (q QuoteCandidate) Name() string {
	if q.LongName != "" {
		return q.LongName
	}
	return q.ShortName
}
