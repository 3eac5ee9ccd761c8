// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

func testSearchCfg() types.SearchConfig {
	return types.SearchConfig{
		APIKey:     "key123",
		EngineID:   "cx456",
		MaxResults: 10,
	}
}

func withSearchServer(t *testing.T, handler http.HandlerFunc) (*GoogleBackend, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	orig := googleAPIBase
	googleAPIBase = srv.URL
	t.Cleanup(func() { googleAPIBase = orig })

	return &GoogleBackend{Client: srv.Client()}, &calls
}

func TestGoogleSearch(t *testing.T) {
	var gotQuery, gotNum, gotKey, gotCX string

	backend, _ := withSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = q.Get("q")
		gotNum = q.Get("num")
		gotKey = q.Get("key")
		gotCX = q.Get("cx")
		w.Write([]byte(`{"items": [
			{"title": "Retinol study", "snippet": "retinol and acne", "link": "https://pubmed.gov/x", "displayLink": "pubmed.ncbi.nlm.nih.gov"},
			{"title": "Blog", "snippet": "misc", "link": "https://b.com/y", "displayLink": "b.com"}
		]}`))
	})

	results, err := Retrieve(context.Background(), backend, []string{"Retinol", "Water"}, testSearchCfg())
	if err != nil {
		t.Fatalf("Retrieve() error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].DisplayDomain != "pubmed.ncbi.nlm.nih.gov" {
		t.Errorf("DisplayDomain = %q", results[0].DisplayDomain)
	}

	if want := `"Retinol" skincare OR "Water" skincare`; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	if gotNum != "10" {
		t.Errorf("num = %q, want 10", gotNum)
	}
	if gotKey != "key123" || gotCX != "cx456" {
		t.Errorf("credentials not forwarded: key=%q cx=%q", gotKey, gotCX)
	}
}

func TestGoogleSearchMissingCredentials(t *testing.T) {
	backend, calls := withSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	})

	cfg := testSearchCfg()
	cfg.APIKey = ""

	_, err := Retrieve(context.Background(), backend, []string{"Water"}, cfg)
	if !errors.Is(err, ErrCredentialsMissing) {
		t.Errorf("err = %v, want ErrCredentialsMissing", err)
	}
	if *calls != 0 {
		t.Errorf("made %d network calls, want 0 before the credential check", *calls)
	}
}

func TestGoogleSearchNonOK(t *testing.T) {
	backend, _ := withSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, err := Retrieve(context.Background(), backend, []string{"Water"}, testSearchCfg())
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("err = %v, want ErrBadStatus", err)
	}
	if got := err.Error(); !strings.Contains(got, "403") {
		t.Errorf("error should carry upstream status, got %q", got)
	}
}

func TestGoogleSearchNoItems(t *testing.T) {
	// An empty result set is a normal outcome, not an error.
	backend, _ := withSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	results, err := Retrieve(context.Background(), backend, []string{"Water"}, testSearchCfg())
	if err != nil {
		t.Fatalf("Retrieve() error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestGoogleHTTPClientHonorsConfiguredTimeout(t *testing.T) {
	cfg := testSearchCfg()
	cfg.Timeout = 7 * time.Second

	b := &GoogleBackend{}
	if got := b.httpClient(cfg).Timeout; got != cfg.Timeout {
		t.Errorf("client timeout = %v, want %v", got, cfg.Timeout)
	}

	injected := &http.Client{Timeout: time.Second}
	b = &GoogleBackend{Client: injected}
	if b.httpClient(cfg) != injected {
		t.Errorf("an injected client should be used as-is")
	}
}

func TestRetrieveEmptyIngredients(t *testing.T) {
	backend, calls := withSearchServer(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := Retrieve(context.Background(), backend, nil, testSearchCfg())
	if err == nil {
		t.Errorf("Retrieve(nil) should fail")
	}
	if *calls != 0 {
		t.Errorf("made %d network calls for an empty list, want 0", *calls)
	}
}
