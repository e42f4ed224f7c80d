// Package fetcher retrieves the raw registry document over HTTP.
package fetcher

import "context"

// Fetcher retrieves the registry document the pipeline runs on. The fetch
// is the single blocking network operation of a run; everything after it is
// pure transformation.
type Fetcher interface {
	// Fetch retrieves the full UTF-8 text of the document.
	// Returns an error if the fetch operation fails.
	Fetch(ctx context.Context) (string, error)

	// Source returns a short identifier for the document's origin, used
	// in logs and summaries.
	Source() string
}
