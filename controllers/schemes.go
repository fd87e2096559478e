package controllers

import (
	"errors"
	"net/http"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/database"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"

	"gorm.io/gorm"
)

type schemeOut struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Benefits    *string `json:"benefits"`
	Source      *string `json:"source"`
}

// GET /schemes
func ListSchemesHandler(w http.ResponseWriter, r *http.Request) {
	var schemes []models.Scheme
	if err := database.DB.Order("id ASC").Find(&schemes).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to list schemes"})
		return
	}

	out := make([]schemeOut, 0, len(schemes))
	for _, s := range schemes {
		out = append(out, schemeOut{ID: s.ID, Name: s.Name, Description: s.Description, Benefits: s.Benefits, Source: s.Source})
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: out})
}

// GET /startup-profile/{profile_id}/matched-schemes
func MatchedSchemesHandler(w http.ResponseWriter, r *http.Request) {
	profileID, ok := pathID(r, "profile_id")
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid profile id"})
		return
	}
	db := database.DB

	var profile models.StartupProfile
	if err := db.First(&profile, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: models.ErrProfileNotFound.Error()})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load profile"})
		return
	}

	var schemes []models.Scheme
	if err := db.Order("id ASC").Find(&schemes).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to list schemes"})
		return
	}

	matched := make([]map[string]interface{}, 0)
	for _, s := range models.MatchSchemes(&profile, schemes) {
		matched = append(matched, map[string]interface{}{
			"scheme_id":       s.ID,
			"name":            s.Name,
			"description":     s.Description,
			"benefits":        s.Benefits,
			"source":          s.Source,
			"eligibility_met": true,
			"relevance":       "Your profile matches this scheme",
		})
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: matched})
}
