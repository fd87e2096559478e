package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/advisor"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/analytics"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/database"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/middleware"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"

	"gorm.io/gorm"
)

type RiskDetectionRequest struct {
	StartupProfileID uint `json:"startup_profile_id"`
	// Optional legacy field; the backend prefers env configuration. Only a
	// fingerprint of this value is ever stored.
	GroqAPIKey string `json:"groq_api_key"`
}

// planGenerator picks the text generator for one request: a caller-supplied
// key takes precedence, else the env-configured client, else nil (fallback).
func planGenerator(requestKey string) (advisor.TextGenerator, string) {
	if requestKey != "" && requestKey != "mock-key" {
		c := &utils.GroqClient{APIKey: requestKey, Model: utils.DefaultGroqModel}
		return c, c.Model
	}
	if c := utils.NewGroqClientFromEnv(); c != nil {
		return c, c.Model
	}
	return nil, utils.DefaultGroqModel
}

// POST /risk-analysis
//
// Runs the rule battery over the profile's records, asks the advisory
// collaborator for an action plan (best-effort; a failure degrades to the
// static fallback) and persists the whole result as a RiskReport.
func RiskAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	var req RiskDetectionRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	var profile models.StartupProfile
	if err := db.First(&profile, req.StartupProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: models.ErrProfileNotFound.Error()})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load profile"})
		return
	}

	orders, products, err := fetchScoped(profile.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load business data"})
		return
	}
	var batches []models.ProductionBatch
	if err := db.Where("startup_profile_id = ?", profile.ID).Find(&batches).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load batches"})
		return
	}

	analysis := analytics.DetectRisks(orders, products, batches)
	snapshot := analytics.BuildSnapshot(&profile, orders, products)

	gen, modelName := planGenerator(req.GroqAPIKey)
	plan := advisor.GenerateActionPlan(gen, modelName, profile.BusinessName, analysis, snapshot)

	risksJSON, _ := json.Marshal(analysis.Risks)
	planJSON, _ := json.Marshal(plan)
	keyHash := advisor.KeyFingerprint(req.GroqAPIKey)
	timestamp := time.Now().Format(time.RFC3339)

	report := models.RiskReport{
		StartupProfileID: profile.ID,
		RiskLevel:        analysis.RiskLevel,
		RisksJSON:        utils.StringPtr(string(risksJSON)),
		AIActionsJSON:    utils.StringPtr(string(planJSON)),
		Timestamp:        &timestamp,
		APIKeyHash:       &keyHash,
	}
	if err := db.Create(&report).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to save report"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"report_id":          report.ID,
		"startup_profile_id": profile.ID,
		"risk_level":         analysis.RiskLevel,
		"risks":              analysis.Risks,
		"risks_summary":      analysis.Summary,
		"ai_action_plan":     plan.Actions,
		"ai_model":           plan.Model,
	}})
}

// decodeStoredRisks parses the persisted findings column. A corrupt row is
// logged and surfaces as an empty list rather than failing the read.
func decodeStoredRisks(report *models.RiskReport, requestID string) []analytics.Risk {
	var risks []analytics.Risk
	if report.RisksJSON != nil {
		if err := json.Unmarshal([]byte(*report.RisksJSON), &risks); err != nil {
			log.Printf("[risk] report %d has corrupt risks column (request %s): %v", report.ID, requestID, err)
		}
	}
	if risks == nil {
		risks = make([]analytics.Risk, 0)
	}
	return risks
}

// decodeStoredPlan parses the persisted action plan column, logging corruption.
func decodeStoredPlan(report *models.RiskReport, requestID string) advisor.ActionPlan {
	var plan advisor.ActionPlan
	if report.AIActionsJSON != nil {
		if err := json.Unmarshal([]byte(*report.AIActionsJSON), &plan); err != nil {
			log.Printf("[risk] report %d has corrupt action plan column (request %s): %v", report.ID, requestID, err)
		}
	}
	return plan
}

// GET /risk-analysis/{report_id}
func GetRiskReportHandler(w http.ResponseWriter, r *http.Request) {
	reportID, ok := pathID(r, "report_id")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid report id"})
		return
	}

	var report models.RiskReport
	if err := database.DB.First(&report, reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: models.ErrReportNotFound.Error()})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load report"})
		return
	}

	risks := decodeStoredRisks(&report, utils.RequestIDFromContext(r.Context()))
	plan := decodeStoredPlan(&report, utils.RequestIDFromContext(r.Context()))

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"id":                 report.ID,
		"startup_profile_id": report.StartupProfileID,
		"risk_level":         report.RiskLevel,
		"risks":              risks,
		"ai_action_plan":     plan,
		"timestamp":          utils.GetStringValue(report.Timestamp),
	}})
}
