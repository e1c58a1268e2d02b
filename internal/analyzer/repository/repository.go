package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-company-analyzer/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxResponseBodyBytes = 5 << 20

// StatusError is returned when an upstream answers with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// newRequestLimiter converts a per-minute budget into a limiter. Zero or less means
// no limit.
func newRequestLimiter(maxRequestPerMinute int) *rate.Limiter {
	if maxRequestPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxRequestPerMinute)), 1)
}

// requester performs rate-limited GET requests with a browser User-Agent and logs
// every failure with the upstream name and URL.
type requester struct {
	name      string
	log       *logger.Logger
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func (r *requester) get(ctx context.Context, url string, accept string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("upstream", r.name),
		zap.String("url", url),
	}

	if err := r.limiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	fields = append(fields, zap.Int("status_code", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))
	if resp.StatusCode != http.StatusOK {
		r.log.ErrorContext(ctx, "Received non-OK response", fields...)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body", fields...)
		return nil, err
	}

	r.log.DebugContext(ctx, "Upstream request completed", fields...)
	return body, nil
}
