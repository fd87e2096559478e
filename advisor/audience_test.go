package advisor

import (
	"errors"
	"strings"
	"testing"
)

type fakeSearcher struct {
	snippets []string
	err      error
}

func (f *fakeSearcher) Search(query string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snippets, nil
}

func TestExtractJSONPlain(t *testing.T) {
	var out map[string]interface{}
	if err := extractJSON(`{"a": 1}`, &out); err != nil {
		t.Fatalf("plain JSON: %v", err)
	}
	if out["a"] != float64(1) {
		t.Errorf("out = %v", out)
	}
}

func TestExtractJSONFenced(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"overall_strategy\": \"go local\"}\n```\nHope that helps."
	var out AudienceMatchingResult
	if err := extractJSON(raw, &out); err != nil {
		t.Fatalf("fenced JSON: %v", err)
	}
	if out.OverallStrategy != "go local" {
		t.Errorf("strategy = %q", out.OverallStrategy)
	}
}

func TestExtractJSONBareFence(t *testing.T) {
	raw := "```\n{\"overall_strategy\": \"x\"}\n```"
	var out AudienceMatchingResult
	if err := extractJSON(raw, &out); err != nil {
		t.Fatalf("bare fence: %v", err)
	}
}

func TestExtractJSONGarbage(t *testing.T) {
	var out map[string]interface{}
	if err := extractJSON("sorry, I cannot help with that", &out); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestMarketContext(t *testing.T) {
	in := AudienceMatchingInput{ProductName: "Soap", Category: "personal care", TargetCountry: "India"}

	if got := MarketContext(nil, in); got != "" {
		t.Errorf("nil searcher context = %q, want empty", got)
	}

	search := &fakeSearcher{snippets: []string{"- a: 1", "- b: 2", "- c: 3", "- d: 4"}}
	got := MarketContext(search, in)
	if strings.Count(got, "\n") != 2 {
		t.Errorf("context must cap at three snippets, got %q", got)
	}

	search = &fakeSearcher{err: errors.New("quota exceeded")}
	if got := MarketContext(search, in); got != "Market trends data unavailable" {
		t.Errorf("failed search context = %q", got)
	}
}

func TestAudienceMatching(t *testing.T) {
	gen := &fakeGenerator{response: `{"target_audience": {"age_range": "18-35"}, "platform_recommendations": [{"platform": "Instagram"}], "overall_strategy": "social first"}`}
	search := &fakeSearcher{snippets: []string{"- trend: up"}}

	result, err := AudienceMatching(gen, search, AudienceMatchingInput{ProductName: "Soap", Category: "personal care"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallStrategy != "social first" {
		t.Errorf("strategy = %q", result.OverallStrategy)
	}
	if !result.MarketTrendsUsed {
		t.Error("expected market_trends_used with snippets present")
	}
	// Default country flows into the prompt.
	if !strings.Contains(gen.lastPrompt, "Target Country: India") {
		t.Errorf("prompt missing default country:\n%s", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, "- trend: up") {
		t.Error("prompt missing market context")
	}
}

func TestAudienceMatchingWithoutSearcher(t *testing.T) {
	gen := &fakeGenerator{response: `{"overall_strategy": "x"}`}
	result, err := AudienceMatching(gen, nil, AudienceMatchingInput{ProductName: "Soap", Category: "care"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MarketTrendsUsed {
		t.Error("market_trends_used must be false without a searcher")
	}
	if !strings.Contains(gen.lastPrompt, "No market trends data available") {
		t.Error("prompt missing the no-trends placeholder")
	}
}

func TestAudienceMatchingNilGenerator(t *testing.T) {
	if _, err := AudienceMatching(nil, nil, AudienceMatchingInput{}); err == nil {
		t.Fatal("expected error for missing generator")
	}
}

func TestContentOptimization(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n{\"optimized_content\": {\"title\": \"Buy Soap\"}, \"compliance_warnings\": [\"no medical claims\"]}\n```"}
	result, err := ContentOptimization(gen, ContentOptimizationInput{
		ProductName: "Soap", SelectedPlatform: "Instagram", TargetAudience: "18-35 urban",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OptimizedContent["title"] != "Buy Soap" {
		t.Errorf("content = %v", result.OptimizedContent)
	}
	if len(result.ComplianceWarnings) != 1 {
		t.Errorf("warnings = %v", result.ComplianceWarnings)
	}
	if !strings.Contains(gen.lastPrompt, "Platform: Instagram") {
		t.Error("prompt missing platform")
	}
}

func TestContentOptimizationGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	if _, err := ContentOptimization(gen, ContentOptimizationInput{ProductName: "S", SelectedPlatform: "X"}); err == nil {
		t.Fatal("expected error when generation fails")
	}
}
