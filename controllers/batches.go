package controllers

import (
	"errors"
	"net/http"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/analytics"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/database"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/middleware"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"

	"gorm.io/gorm"
)

type CreateBatchRequest struct {
	UnitsProduced    int      `json:"units_produced"`
	ProductionCost   float64  `json:"production_cost"`
	ProductionTime   *float64 `json:"production_time"`
	Date             string   `json:"date"`
	StartupProfileID *uint    `json:"startup_profile_id"`
}

// POST /products/{product_id}/production_batches
func CreateProductionBatchHandler(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "product_id")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid product id"})
		return
	}

	var req CreateBatchRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.UnitsProduced < 0 || req.ProductionCost < 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Units and cost cannot be negative"})
		return
	}

	db := database.DB
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: models.ErrProductNotFound.Error()})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load product"})
		return
	}

	batch := models.ProductionBatch{
		ProductID:        productID,
		UnitsProduced:    req.UnitsProduced,
		ProductionCost:   req.ProductionCost,
		ProductionTime:   req.ProductionTime,
		Date:             utils.StringPtr(req.Date),
		StartupProfileID: req.StartupProfileID,
	}
	if err := db.Create(&batch).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to record batch"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Production batch recorded", Data: map[string]interface{}{
		"batch_id": batch.ID,
	}})
}

// GET /products/{product_id}/production_insights
func ProductionInsightsHandler(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "product_id")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid product id"})
		return
	}

	db := database.DB
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: models.ErrProductNotFound.Error()})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load product"})
		return
	}

	var batches []models.ProductionBatch
	if err := db.Where("product_id = ?", productID).Find(&batches).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load batches"})
		return
	}

	insight := analytics.ComputeProductionInsights(&product, batches)
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: insight})
}
