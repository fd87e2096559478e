// Package advisor assembles business snapshots and risk findings into prompts
// for an external text-generation service. The service is best-effort: any
// failure degrades to a deterministic fallback plan so callers never fail
// because advice was unavailable.
package advisor

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/analytics"
)

// TextGenerator is the abstract capability of the external AI collaborator.
type TextGenerator interface {
	Generate(systemPrompt, userPrompt string) (string, error)
}

// Searcher is the optional market-research collaborator.
type Searcher interface {
	Search(query string) ([]string, error)
}

// ActionPlan is the advisory result persisted alongside the risk findings.
type ActionPlan struct {
	Success bool   `json:"success"`
	Actions string `json:"actions"`
	Model   string `json:"model"`
}

const planSystemPrompt = "You are a helpful business advisor for Indian MSMEs."

const fallbackPlan = `**AI SERVICE UNAVAILABLE - SHOWING MOCK INSIGHTS**

1. **Diversify Channels** (Impact: High)
   - Your production data shows reliance on single channels. Expand to local retail.

2. **Optimize Inventory** (Impact: Medium)
   - Inventory levels need balancing against current sales velocity.

*(To enable real AI, please set GROQ_API_KEY in backend environment)*`

// BuildActionPlanPrompt renders the fixed instructional template with the
// snapshot and findings serialized verbatim so the model grounds its plan in
// actual numbers.
func BuildActionPlanPrompt(profileName string, analysis analytics.RiskAnalysis, snapshot analytics.Snapshot) string {
	snapshotText, _ := json.MarshalIndent(snapshot, "", "  ")
	risksText, _ := json.MarshalIndent(analysis.Risks, "", "  ")

	return fmt.Sprintf(`You are a strategic business advisor for an Indian MSME/Startup named '%s'.

## Business Snapshot (ACTUAL DATA - USE THESE EXACT NUMBERS)
%s

## Identified Risks (BASED ON ACTUAL DATA)
%s

## Task
Provide a concise, data-driven Action Plan (3-5 items) based on the ACTUAL numbers above.

CRITICAL REQUIREMENTS:
1. Reference SPECIFIC numbers from the Business Snapshot (e.g., "Your current margin is %.1f%%")
2. Mention actual channel names and their revenue if available
3. Reference specific product names and inventory levels
4. Base all recommendations on the actual data provided, not generic advice

Format each action as:
**[Action Title]** (Impact: High/Medium, Timeline: X weeks)
- [Specific step with actual numbers/names from the data]
- [Expected outcome with quantified target]`,
		profileName, snapshotText, risksText, snapshot.MarginPercent)
}

// GenerateActionPlan dispatches the rendered prompt to the generator. A nil
// generator or any generator-side failure returns the static fallback with
// model "mock-fallback"; the failure reason is logged for diagnostics only.
func GenerateActionPlan(gen TextGenerator, modelName, profileName string, analysis analytics.RiskAnalysis, snapshot analytics.Snapshot) ActionPlan {
	prompt := BuildActionPlanPrompt(profileName, analysis, snapshot)

	if gen != nil {
		text, err := gen.Generate(planSystemPrompt, prompt)
		if err == nil {
			return ActionPlan{Success: true, Actions: text, Model: modelName}
		}
		log.Printf("[advisor] generation failed, using fallback: %v", err)
	}

	return ActionPlan{Success: false, Actions: fallbackPlan, Model: "mock-fallback"}
}

// KeyFingerprint returns a short non-secret hash of a caller-supplied API key
// for the report audit trail, or "env-managed" when the key comes from the
// environment.
func KeyFingerprint(key string) string {
	if key == "" || key == "mock-key" {
		return "env-managed"
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:8]
}
