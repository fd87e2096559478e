package controllers

import (
	"errors"
	"net/http"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/database"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/middleware"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateOrderRequest struct {
	ProductID        uint   `json:"product_id"`
	Channel          string `json:"channel"`
	Quantity         int    `json:"quantity"`
	CustomerRef      string `json:"customer_ref"`
	StartupProfileID *uint  `json:"startup_profile_id"`
}

// POST /orders
//
// Order creation is the one write that races with itself: two concurrent
// orders against the same product must never both succeed when only one has
// sufficient stock. The product row is locked for update inside a transaction,
// stock is validated and decremented, and the order is created as one unit.
// The order records the product's selling price at this moment; later price
// changes never touch it.
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.Quantity <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: models.ErrInvalidQuantity.Error()})
		return
	}

	db := database.DB
	var order models.Order
	var remaining int

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProductNotFound
			}
			return err
		}

		if err := product.DecrementInventory(req.Quantity); err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", product.ID).Update("inventory", product.Inventory).Error; err != nil {
			return err
		}

		order = models.Order{
			ProductID:        req.ProductID,
			Channel:          utils.StringPtr(req.Channel),
			Quantity:         req.Quantity,
			SellingPrice:     product.SellingPrice,
			CustomerRef:      utils.StringPtr(req.CustomerRef),
			StartupProfileID: req.StartupProfileID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		remaining = product.Inventory
		return nil
	})
	if err != nil {
		var insufficient *models.InsufficientInventoryError
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: err.Error()})
		case errors.As(err, &insufficient):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Insufficient inventory", Data: map[string]interface{}{
				"requested": insufficient.Requested,
				"available": insufficient.Available,
			}})
		case errors.Is(err, models.ErrInvalidQuantity):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: err.Error()})
		default:
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create order"})
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Order created successfully", Data: map[string]interface{}{
		"order_id":            order.ID,
		"remaining_inventory": remaining,
	}})
}
