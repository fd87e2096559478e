package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/analytics"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/database"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/middleware"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name             string   `json:"name" validate:"required"`
	Category         string   `json:"category"`
	CostPrice        float64  `json:"cost_price"`
	SellingPrice     float64  `json:"selling_price"`
	Inventory        int      `json:"inventory"`
	UnitsPerBatch    *int     `json:"units_per_batch"`
	ProductionCost   *float64 `json:"production_cost"`
	ProductionTime   *float64 `json:"production_time"`
	StartupProfileID *uint    `json:"startup_profile_id"`
}

// profileIDParam parses the optional ?profile_id= scoping parameter. A zero
// return means unscoped.
func profileIDParam(r *http.Request) uint {
	s := r.URL.Query().Get("profile_id")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// pathID parses the {key} path variable as an id.
func pathID(r *http.Request, key string) (uint, bool) {
	v, err := strconv.ParseUint(mux.Vars(r)[key], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// POST /products
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.Inventory < 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Inventory cannot be negative"})
		return
	}

	product := models.Product{
		Name:             req.Name,
		Category:         utils.StringPtr(req.Category),
		CostPrice:        req.CostPrice,
		SellingPrice:     req.SellingPrice,
		Inventory:        req.Inventory,
		UnitsPerBatch:    req.UnitsPerBatch,
		ProductionCost:   req.ProductionCost,
		ProductionTime:   req.ProductionTime,
		StartupProfileID: req.StartupProfileID,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create product"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Product created", Data: product})
}

// GET /products?profile_id=
func ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	query := db.Model(&models.Product{})
	if pid := profileIDParam(r); pid != 0 {
		query = query.Where("startup_profile_id = ?", pid)
	}

	var products []models.Product
	if err := query.Order("id ASC").Find(&products).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to list products"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: products})
}

// GET /products/{product_id}/performance
func ProductPerformanceHandler(w http.ResponseWriter, r *http.Request) {
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

	var orders []models.Order
	if err := db.Where("product_id = ?", productID).Find(&orders).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load orders"})
		return
	}

	stats := analytics.PerProduct([]models.Product{product}, orders)[0]
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
		"revenue":    stats.Revenue,
		"units_sold": stats.UnitsSold,
		"profit":     stats.Profit,
		"velocity":   stats.Velocity,
		"inventory":  product.Inventory,
	}})
}
