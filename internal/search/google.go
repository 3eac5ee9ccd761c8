// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// googleAPIBase is the Google Custom Search JSON API endpoint. Declared
// as a var so tests can substitute an httptest server.
var googleAPIBase = "https://www.googleapis.com/customsearch/v1"

// defaultResultCap is the per-call result cap. The Custom Search API
// serves at most 10 results per page.
const defaultResultCap = 10

// GoogleBackend queries the Google Custom Search JSON API.
type GoogleBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *GoogleBackend) Name() string { return "google_custom_search" }

// Search issues one Custom Search call for the query. Missing
// credentials fail with ErrCredentialsMissing before any network
// activity; a non-2xx response fails with ErrBadStatus carrying the
// upstream status. No retry on either path.
func (b *GoogleBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	if cfg.APIKey == "" || cfg.EngineID == "" {
		return nil, ErrCredentialsMissing
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 || maxResults > defaultResultCap {
		maxResults = defaultResultCap
	}

	params := url.Values{
		"key": {cfg.APIKey},
		"cx":  {cfg.EngineID},
		"q":   {query},
		"num": {fmt.Sprintf("%d", maxResults)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := b.httpClient(cfg).Do(req)
	if err != nil {
		return nil, fmt.Errorf("Custom Search API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrBadStatus, resp.StatusCode)
	}

	var gr googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing Custom Search response: %w", err)
	}

	var results []types.SearchResult
	for _, item := range gr.Items {
		results = append(results, types.SearchResult{
			Title:         item.Title,
			Snippet:       item.Snippet,
			Link:          item.Link,
			DisplayDomain: item.DisplayLink,
		})
	}
	return results, nil
}

// httpClient returns the injected client, or one honoring the
// configured retrieval timeout when none was set.
func (b *GoogleBackend) httpClient(cfg types.SearchConfig) *http.Client {
	if b.Client != nil {
		return b.Client
	}
	return &http.Client{Timeout: cfg.Timeout}
}

// Custom Search API JSON structures.
type googleResponse struct {
	Items []googleItem `json:"items"`
}

type googleItem struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Link        string `json:"link"`
	DisplayLink string `json:"displayLink"`
}
