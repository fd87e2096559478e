package advisor

import (
	"errors"
	"strings"
	"testing"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/analytics"
)

type fakeGenerator struct {
	lastSystem string
	lastPrompt string
	response   string
	err        error
}

func (f *fakeGenerator) Generate(systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastPrompt = userPrompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func sampleAnalysis() analytics.RiskAnalysis {
	return analytics.RiskAnalysis{
		RiskLevel: analytics.LevelMedium,
		Risks: []analytics.Risk{
			{Type: "channel_dependency", Severity: analytics.SeverityHigh, Message: "80.0% revenue from 'whatsapp' channel. Diversify to reduce risk."},
		},
		Summary: "Detected 1 risks: 1 high, 0 medium.",
	}
}

func sampleSnapshot() analytics.Snapshot {
	return analytics.Snapshot{
		BusinessName:      "Gita Foods",
		CurrentTotalSales: 1250,
		EstimatedProfit:   410,
		MarginPercent:     32.8,
		TopProducts:       []analytics.TopProduct{{Name: "Masala Mix", Revenue: 900}},
	}
}

func TestBuildActionPlanPromptEmbedsActualData(t *testing.T) {
	prompt := BuildActionPlanPrompt("Gita Foods", sampleAnalysis(), sampleSnapshot())

	for _, want := range []string{
		"'Gita Foods'",
		"\"current_total_sales\": 1250",
		"\"estimated_profit\": 410",
		"Masala Mix",
		"channel_dependency",
		"Your current margin is 32.8%",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateActionPlanSuccess(t *testing.T) {
	gen := &fakeGenerator{response: "**Diversify** (Impact: High, Timeline: 4 weeks)"}
	plan := GenerateActionPlan(gen, "llama-3.3-70b-versatile", "Gita Foods", sampleAnalysis(), sampleSnapshot())

	if !plan.Success {
		t.Fatal("expected success")
	}
	if plan.Model != "llama-3.3-70b-versatile" {
		t.Errorf("model = %q", plan.Model)
	}
	if plan.Actions != gen.response {
		t.Errorf("actions = %q", plan.Actions)
	}
	if gen.lastSystem != planSystemPrompt {
		t.Errorf("system prompt = %q", gen.lastSystem)
	}
}

func TestGenerateActionPlanFallbackOnError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream 500")}
	plan := GenerateActionPlan(gen, "llama-3.3-70b-versatile", "B", sampleAnalysis(), sampleSnapshot())

	if plan.Success {
		t.Fatal("expected fallback")
	}
	if plan.Model != "mock-fallback" {
		t.Errorf("model = %q, want mock-fallback", plan.Model)
	}
	if !strings.Contains(plan.Actions, "AI SERVICE UNAVAILABLE") {
		t.Errorf("actions = %q", plan.Actions)
	}
}

func TestGenerateActionPlanNilGenerator(t *testing.T) {
	plan := GenerateActionPlan(nil, "", "B", sampleAnalysis(), sampleSnapshot())
	if plan.Success || plan.Model != "mock-fallback" {
		t.Fatalf("plan = %+v, want mock fallback", plan)
	}
}

func TestKeyFingerprint(t *testing.T) {
	if got := KeyFingerprint(""); got != "env-managed" {
		t.Errorf("empty key fingerprint = %q", got)
	}
	if got := KeyFingerprint("mock-key"); got != "env-managed" {
		t.Errorf("mock key fingerprint = %q", got)
	}

	fp := KeyFingerprint("gsk_real_key")
	if len(fp) != 8 {
		t.Fatalf("fingerprint length = %d, want 8", len(fp))
	}
	if fp == "env-mana" {
		t.Error("real key must not collide with the env sentinel prefix")
	}
	if fp != KeyFingerprint("gsk_real_key") {
		t.Error("fingerprint must be deterministic")
	}
	if fp == KeyFingerprint("gsk_other_key") {
		t.Error("different keys must fingerprint differently")
	}
}
