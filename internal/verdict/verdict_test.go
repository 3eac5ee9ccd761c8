// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verdict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// --- mock generator ---

type mockGenerator struct {
	response string
	err      error
	prompts  []string
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func testProfile() types.UserProfile {
	return types.UserProfile{
		UserID:    "u1",
		SkinType:  types.SkinOily,
		Concerns:  []string{"acne"},
		Allergies: []string{"fragrance"},
		Lifestyle: []string{"outdoor work"},
	}
}

func verdictJSON(names ...string) string {
	var sb strings.Builder
	sb.WriteString(`{"ingredients": [`)
	for i, n := range names {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"name": %q, "safety": "good", "explanation": "fine (Source: https://example.com)", "sources": ["https://example.com"]}`, n)
	}
	sb.WriteString(`]}`)
	return sb.String()
}

// --- StripFences ---

func TestStripFences(t *testing.T) {
	payload := verdictJSON("Water")

	tests := []struct {
		name string
		in   string
	}{
		{"unfenced", payload},
		{"json fence", "```json\n" + payload + "\n```"},
		{"bare fence", "```\n" + payload + "\n```\n"},
		{"leading whitespace", "\n  " + payload + "  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var direct, stripped modelResponse
			if err := json.Unmarshal([]byte(payload), &direct); err != nil {
				t.Fatalf("parsing reference payload: %v", err)
			}
			if err := json.Unmarshal([]byte(StripFences(tt.in)), &stripped); err != nil {
				t.Fatalf("parsing stripped payload: %v", err)
			}
			if len(stripped.Ingredients) != len(direct.Ingredients) {
				t.Errorf("stripped parse differs from direct parse")
			}
		})
	}
}

// --- Synthesize ---

func TestSynthesizeReturnsOneVerdictPerIngredient(t *testing.T) {
	gen := &mockGenerator{response: "```json\n" + verdictJSON("Glycerin", "Water") + "\n```"}
	ingredients := []string{"Water", "Glycerin"}

	got, err := Synthesize(context.Background(), gen, nil, ingredients, testProfile(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	if len(got) != len(ingredients) {
		t.Fatalf("len(verdicts) = %d, want %d", len(got), len(ingredients))
	}
	// Output follows input order regardless of model order.
	for i, ing := range ingredients {
		if got[i].Name != ing {
			t.Errorf("verdict[%d].Name = %q, want %q", i, got[i].Name, ing)
		}
	}
}

func TestSynthesizeMissingVerdictIsMalformed(t *testing.T) {
	gen := &mockGenerator{response: verdictJSON("Water")}

	_, err := Synthesize(context.Background(), gen, nil, []string{"Water", "Retinol"}, testProfile(), &bytes.Buffer{})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestSynthesizeDropsUnknownVerdicts(t *testing.T) {
	gen := &mockGenerator{response: verdictJSON("Water", "Mystery Compound")}
	var diag bytes.Buffer

	got, err := Synthesize(context.Background(), gen, nil, []string{"Water"}, testProfile(), &diag)
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Water" {
		t.Errorf("verdicts = %v, want just Water", got)
	}
	if !strings.Contains(diag.String(), "Mystery Compound") {
		t.Errorf("diagnostic output should name the dropped verdict, got %q", diag.String())
	}
}

func TestSynthesizeMalformedResponse(t *testing.T) {
	gen := &mockGenerator{response: "I am sorry, I cannot help with that."}
	var diag bytes.Buffer

	_, err := Synthesize(context.Background(), gen, nil, []string{"Water"}, testProfile(), &diag)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
	// Raw response is logged for diagnostics, not returned.
	if !strings.Contains(diag.String(), "I am sorry") {
		t.Errorf("raw response should be logged to diag writer")
	}
	if strings.Contains(err.Error(), "I am sorry") {
		t.Errorf("raw response must not leak into the returned error")
	}
}

func TestSynthesizeUpstreamError(t *testing.T) {
	upstream := errors.New("quota exhausted")
	gen := &mockGenerator{err: upstream}

	_, err := Synthesize(context.Background(), gen, nil, []string{"Water"}, testProfile(), &bytes.Buffer{})
	if !errors.Is(err, upstream) {
		t.Errorf("err = %v, want wrapped upstream error", err)
	}
	if errors.Is(err, ErrMalformedResponse) {
		t.Errorf("upstream failure must not be classified as a parse failure")
	}
}

func TestSynthesizeMatchesNamesCaseInsensitively(t *testing.T) {
	gen := &mockGenerator{response: verdictJSON("hyaluronic acid")}

	got, err := Synthesize(context.Background(), gen, nil, []string{"Hyaluronic Acid"}, testProfile(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	// The caller's spelling wins.
	if got[0].Name != "Hyaluronic Acid" {
		t.Errorf("Name = %q, want caller spelling", got[0].Name)
	}
}
