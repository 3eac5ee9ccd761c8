// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the shared HTTP retry helper for clients
// that tolerate rate limiting, such as the label vision client.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RetryBaseDelay is the starting backoff after an HTTP 429. Tests
// override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 5

// DoWithRetry executes req and retries on HTTP 429 (Too Many Requests)
// with exponential backoff, starting at RetryBaseDelay and doubling
// each attempt. When maxRetries is 0 the default (5) applies.
//
// Requests with a rewindable body (GetBody set, as for bytes.Reader
// POSTs) are resent with a fresh body on every attempt. Each backoff is
// announced on diag; nil discards. A cancelled context aborts the wait
// with ctx.Err(). Once retries are exhausted the last 429 response is
// returned for the caller to inspect.
//
// Only the label vision client retries. The analysis pipeline stages
// are single-shot and surface upstream failures to the caller unretried.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int, diag io.Writer) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if diag == nil {
		diag = io.Discard
	}

	delay := RetryBaseDelay
	for attempt := 0; ; attempt++ {
		attemptReq := req.Clone(ctx)
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("rewinding request body: %w", err)
			}
			attemptReq.Body = body
		}

		resp, err := client.Do(attemptReq)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		if attempt >= maxRetries {
			return resp, nil
		}

		// Drain and close the 429 body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		fmt.Fprintf(diag, "rate limited, retrying in %v (attempt %d/%d)\n", delay, attempt+1, maxRetries)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
