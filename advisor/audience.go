package advisor

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// AudienceMatchingInput describes the product being positioned.
type AudienceMatchingInput struct {
	ProductName   string `json:"product_name" validate:"required"`
	Category      string `json:"category" validate:"required"`
	PriceRange    string `json:"price_range"`
	Description   string `json:"description"`
	TargetCountry string `json:"target_country"`
}

// AudienceMatchingResult is the parsed model output for audience matching.
type AudienceMatchingResult struct {
	TargetAudience          map[string]interface{}   `json:"target_audience"`
	PlatformRecommendations []map[string]interface{} `json:"platform_recommendations"`
	OverallStrategy         string                   `json:"overall_strategy"`
	MarketTrendsUsed        bool                     `json:"market_trends_used"`
}

// ContentOptimizationInput describes the content request for one platform.
type ContentOptimizationInput struct {
	ProductName      string `json:"product_name" validate:"required"`
	ProductDetails   string `json:"product_details"`
	SelectedPlatform string `json:"selected_platform" validate:"required"`
	TargetAudience   string `json:"target_audience"`
	Category         string `json:"category"`
}

// ContentOptimizationResult is the parsed model output for content optimization.
type ContentOptimizationResult struct {
	OptimizedContent      map[string]interface{}   `json:"optimized_content"`
	PostingStrategy       map[string]interface{}   `json:"posting_strategy"`
	ComplianceWarnings    []string                 `json:"compliance_warnings"`
	ActionRecommendations []map[string]interface{} `json:"action_recommendations"`
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// extractJSON unmarshals the model output, tolerating a markdown code fence
// around the JSON body.
func extractJSON(text string, dst interface{}) error {
	text = strings.TrimSpace(text)
	if err := json.Unmarshal([]byte(text), dst); err == nil {
		return nil
	}
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return json.Unmarshal([]byte(m[1]), dst)
	}
	return fmt.Errorf("model response was not valid JSON")
}

// MarketContext gathers up to three research snippets for the prompt. The
// searcher is optional and its failure never blocks the call.
func MarketContext(search Searcher, in AudienceMatchingInput) string {
	if search == nil {
		return ""
	}
	query := fmt.Sprintf("%s %s market trends %s", in.ProductName, in.Category, in.TargetCountry)
	snippets, err := search.Search(query)
	if err != nil {
		log.Printf("[advisor] market research unavailable: %v", err)
		return "Market trends data unavailable"
	}
	if len(snippets) > 3 {
		snippets = snippets[:3]
	}
	return strings.Join(snippets, "\n")
}

const audienceSystemPrompt = "You are an expert product marketing and growth strategist. Always respond with valid JSON only."

// AudienceMatching asks the generator for target-audience and platform
// recommendations, optionally grounded in market-research snippets.
func AudienceMatching(gen TextGenerator, search Searcher, in AudienceMatchingInput) (AudienceMatchingResult, error) {
	var result AudienceMatchingResult
	if gen == nil {
		return result, fmt.Errorf("text generator not configured")
	}
	if in.TargetCountry == "" {
		in.TargetCountry = "India"
	}

	trends := MarketContext(search, in)
	trendsSection := trends
	if trendsSection == "" {
		trendsSection = "No market trends data available"
	}

	prompt := fmt.Sprintf(`You are an AI Product Growth Agent specializing in audience identification and platform recommendations.

Product Information:
- Name: %s
- Category: %s
- Price Range: %s
- Description: %s
- Target Country: %s

Market Context:
%s

Task:
1. Identify the ideal target audience (age range, interests, buying intent, demographics)
2. Recommend the top 5 websites/platforms where this product should be promoted or listed
3. Explain WHY each platform is suitable for this specific product
4. Assign a confidence score (0-100%%) for each platform recommendation
5. Suggest key keywords to use on each platform

Provide your response in the following JSON format:
{
  "target_audience": {
    "age_range": "18-35",
    "interests": ["fitness", "health"],
    "buying_intent": "high/medium/low",
    "demographics": "description",
    "summary": "brief summary"
  },
  "platform_recommendations": [
    {
      "platform": "Platform Name",
      "reason": "Why this platform is suitable",
      "confidence_score": 85,
      "keywords": ["keyword1", "keyword2", "keyword3"]
    }
  ],
  "overall_strategy": "Brief strategy summary"
}

Respond ONLY with valid JSON, no additional text.`,
		in.ProductName, in.Category, in.PriceRange, in.Description, in.TargetCountry, trendsSection)

	text, err := gen.Generate(audienceSystemPrompt, prompt)
	if err != nil {
		return result, fmt.Errorf("AI processing failed: %w", err)
	}
	if err := extractJSON(text, &result); err != nil {
		return result, err
	}
	result.MarketTrendsUsed = trends != "" && trends != "Market trends data unavailable"
	return result, nil
}

const contentSystemPrompt = "You are an expert content marketing strategist with deep knowledge of platform-specific optimization. Always respond with valid JSON only."

// ContentOptimization asks the generator for platform-specific content and a
// posting strategy.
func ContentOptimization(gen TextGenerator, in ContentOptimizationInput) (ContentOptimizationResult, error) {
	var result ContentOptimizationResult
	if gen == nil {
		return result, fmt.Errorf("text generator not configured")
	}

	prompt := fmt.Sprintf(`You are an AI Marketing & Distribution Assistant specializing in platform-specific content optimization.

Product Information:
- Name: %s
- Details: %s
- Category: %s

Platform: %s
Target Audience: %s

Task:
1. Generate optimized content for %s (title, description, call-to-action)
2. Suggest the best posting/listing strategy (timing, format, frequency)
3. Highlight any compliance or risk warnings specific to this platform and product category
4. Recommend 3 specific actions to improve reach and conversion on this platform

Provide your response in the following JSON format:
{
  "optimized_content": {
    "title": "Platform-optimized title",
    "description": "Compelling description with keywords",
    "call_to_action": "Strong CTA",
    "hashtags_or_tags": ["tag1", "tag2"]
  },
  "posting_strategy": {
    "best_timing": "Specific time recommendations",
    "format": "Recommended content format",
    "frequency": "How often to post",
    "additional_tips": ["tip1", "tip2"]
  },
  "compliance_warnings": [
    "Warning 1",
    "Warning 2"
  ],
  "action_recommendations": [
    {
      "action": "Specific action to take",
      "expected_impact": "What this will achieve",
      "priority": "high/medium/low"
    }
  ]
}

Respond ONLY with valid JSON, no additional text.`,
		in.ProductName, in.ProductDetails, in.Category, in.SelectedPlatform, in.TargetAudience, in.SelectedPlatform)

	text, err := gen.Generate(contentSystemPrompt, prompt)
	if err != nil {
		return result, fmt.Errorf("AI processing failed: %w", err)
	}
	if err := extractJSON(text, &result); err != nil {
		return result, err
	}
	return result, nil
}
