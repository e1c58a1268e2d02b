package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCompanyName = errors.New("company name is empty")
	ErrTickerNotFound   = errors.New("ticker not found")
	ErrDataUnavailable  = errors.New("financial data unavailable")
)

// AnalyzeError carries the request values a client-facing message needs. Kind is one
// of the sentinel errors above.
type AnalyzeError struct {
	Kind        error
	CompanyName string
	Ticker      string
}

func (e *AnalyzeError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrTickerNotFound):
		return fmt.Sprintf("%v for %q", e.Kind, e.CompanyName)
	case errors.Is(e.Kind, ErrDataUnavailable):
		return fmt.Sprintf("%v for ticker %q", e.Kind, e.Ticker)
	default:
		return e.Kind.Error()
	}
}

func (e *AnalyzeError) Unwrap() error {
	return e.Kind
}
