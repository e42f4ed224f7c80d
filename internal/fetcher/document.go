package fetcher

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"coingen/internal/ratelimit"
)

// DocumentFetcher retrieves the SLIP-0044 markdown document from its raw
// URL on GitHub.
type DocumentFetcher struct {
	url    string
	client *resty.Client
}

// NewDocumentFetcher creates a fetcher for the registry document at url.
func NewDocumentFetcher(url string) *DocumentFetcher {
	return &DocumentFetcher{
		url:    url,
		client: NewHTTPClient(),
	}
}

// Fetch retrieves the document text. Waits on the raw-content rate limiter
// before issuing the request.
func (f *DocumentFetcher) Fetch(ctx context.Context) (string, error) {
	if err := ratelimit.GetLimiter().Wait(ctx, ratelimit.SourceGitHubRaw); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.url)

	if err != nil {
		return "", NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return "", ClassifyHTTPError(resp.StatusCode())
	}

	body := resp.String()
	if body == "" {
		return "", NewValidationError("registry document is empty")
	}

	return body, nil
}

// Source returns the document URL for logs and summaries.
func (f *DocumentFetcher) Source() string {
	return f.url
}
