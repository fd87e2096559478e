package controllers

import (
	"errors"
	"net/http"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/database"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/middleware"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"

	"gorm.io/gorm"
)

type CreateProfileRequest struct {
	BusinessName   string  `json:"business_name" validate:"required,nameok"`
	BusinessType   string  `json:"business_type" validate:"required"`
	Industry       string  `json:"industry" validate:"required"`
	Location       string  `json:"location" validate:"required"`
	GrowthStage    string  `json:"growth_stage"`
	MSMERegistered bool    `json:"msme_registered"`
	AnnualRevenue  float64 `json:"annual_revenue"`
}

// POST /startup-profile
func CreateStartupProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.AnnualRevenue < 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Annual revenue cannot be negative"})
		return
	}

	profile := models.StartupProfile{
		BusinessName:   req.BusinessName,
		BusinessType:   req.BusinessType,
		Industry:       req.Industry,
		Location:       req.Location,
		GrowthStage:    utils.StringPtr(req.GrowthStage),
		MSMERegistered: req.MSMERegistered,
		AnnualRevenue:  req.AnnualRevenue,
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create profile"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Startup profile created", Data: map[string]interface{}{
		"id":            profile.ID,
		"business_name": profile.BusinessName,
	}})
}

// GET /startup-profile/{profile_id}
func GetStartupProfileHandler(w http.ResponseWriter, r *http.Request) {
	profileID, ok := pathID(r, "profile_id")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid profile id"})
		return
	}

	var profile models.StartupProfile
	if err := database.DB.First(&profile, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: models.ErrProfileNotFound.Error()})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load profile"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: profile})
}
