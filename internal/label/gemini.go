// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package label

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/httputil"
)

// geminiAPIBase is the Gemini API root. Package-level var for test
// substitution with an httptest server.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"

// transcriptionPrompt asks the model for the bare ingredient list.
// Parsing stays forgiving anyway; models add headers and line breaks.
const transcriptionPrompt = `Transcribe the ingredient list printed on this product label exactly as written, as a single comma-separated list. Output only the ingredient names, no commentary, no numbering.`

// GeminiVision calls the Gemini generateContent API with an inline
// image. Unlike the analysis pipeline stages, label transcription is
// retried on HTTP 429, since it runs before the user-triggered
// analysis request proper.
type GeminiVision struct {
	APIKey     string
	Model      string
	Client     *http.Client
	MaxRetries int

	// Diag receives rate-limit backoff announcements; nil discards.
	Diag io.Writer
}

type visionRequest struct {
	Contents []visionContent `json:"contents"`
}

type visionContent struct {
	Parts []visionPart `json:"parts"`
}

// visionPart carries either prompt text or inline image data.
type visionPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type visionResponse struct {
	Candidates []struct {
		Content visionContent `json:"content"`
	} `json:"candidates"`
}

// ReadLabel sends the label image to the Gemini API and returns the
// model's transcript.
func (g *GeminiVision) ReadLabel(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("label image is empty")
	}

	reqBody := visionRequest{
		Contents: []visionContent{{
			Parts: []visionPart{
				{Text: transcriptionPrompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent", geminiAPIBase, g.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, g.MaxRetries, g.Diag)
	if err != nil {
		return "", fmt.Errorf("calling Gemini vision API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini vision API returned %d: %s", resp.StatusCode, string(body))
	}

	var vResp visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&vResp); err != nil {
		return "", fmt.Errorf("decoding Gemini vision response: %w", err)
	}
	if len(vResp.Candidates) == 0 {
		return "", fmt.Errorf("Gemini vision API returned no candidates")
	}

	var b strings.Builder
	for _, part := range vResp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text content in Gemini vision response")
	}
	return b.String(), nil
}
