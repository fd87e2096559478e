package controllers

import (
	"log"
	"net/http"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/advisor"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/middleware"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"
)

// POST /ai/audience-matching
//
// Market research (SerpAPI) is optional context: its absence or failure never
// blocks the call. The generator itself is required here.
func AudienceMatchingHandler(w http.ResponseWriter, r *http.Request) {
	var req advisor.AudienceMatchingInput
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	gen := utils.NewGroqClientFromEnv()
	if gen == nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "GROQ API key not configured"})
		return
	}

	var search advisor.Searcher
	if c := utils.NewSerpAPIClientFromEnv(); c != nil {
		search = c
	}

	result, err := advisor.AudienceMatching(gen, search, req)
	if err != nil {
		log.Printf("[ai] audience matching failed (request %s): %v", utils.RequestIDFromContext(r.Context()), err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: err.Error()})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"product":                  req.ProductName,
		"target_audience":          result.TargetAudience,
		"platform_recommendations": result.PlatformRecommendations,
		"overall_strategy":         result.OverallStrategy,
		"market_trends_used":       result.MarketTrendsUsed,
	}})
}

// POST /ai/content-optimization
func ContentOptimizationHandler(w http.ResponseWriter, r *http.Request) {
	var req advisor.ContentOptimizationInput
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	gen := utils.NewGroqClientFromEnv()
	if gen == nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "GROQ API key not configured"})
		return
	}

	result, err := advisor.ContentOptimization(gen, req)
	if err != nil {
		log.Printf("[ai] content optimization failed (request %s): %v", utils.RequestIDFromContext(r.Context()), err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: err.Error()})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"platform":               req.SelectedPlatform,
		"optimized_content":      result.OptimizedContent,
		"posting_strategy":       result.PostingStrategy,
		"compliance_warnings":    result.ComplianceWarnings,
		"action_recommendations": result.ActionRecommendations,
	}})
}
