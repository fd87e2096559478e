package controllers

import (
	"net/http"
	"sort"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/analytics"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/database"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"
)

// fetchScoped loads the orders and products visible to an optional profile
// scope. Every aggregation works over this one snapshot.
func fetchScoped(profileID uint) (orders []models.Order, products []models.Product, err error) {
	db := database.DB

	ordersQuery := db.Model(&models.Order{})
	productsQuery := db.Model(&models.Product{})
	if profileID != 0 {
		ordersQuery = ordersQuery.Where("startup_profile_id = ?", profileID)
		productsQuery = productsQuery.Where("startup_profile_id = ?", profileID)
	}
	if err = ordersQuery.Find(&orders).Error; err != nil {
		return nil, nil, err
	}
	if err = productsQuery.Find(&products).Error; err != nil {
		return nil, nil, err
	}
	return orders, products, nil
}

type productRevenue struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// GET /dashboard?profile_id=
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	orders, products, err := fetchScoped(profileIDParam(r))
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load dashboard data"})
		return
	}

	index := analytics.ProductIndex(products)
	totalUnits := 0
	for i := range orders {
		totalUnits += orders[i].Quantity
	}
	totalInventory := 0
	for i := range products {
		totalInventory += products[i].Inventory
	}

	revenueByProduct := analytics.RevenueByProduct(orders)
	var best, worst *productRevenue
	if bestID, worstID, ok := analytics.BestWorst(revenueByProduct); ok {
		if p, found := index[bestID]; found {
			best = &productRevenue{ID: p.ID, Name: p.Name, Revenue: revenueByProduct[bestID]}
		}
		if p, found := index[worstID]; found {
			worst = &productRevenue{ID: p.ID, Name: p.Name, Revenue: revenueByProduct[worstID]}
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"summary": map[string]interface{}{
			"total_revenue":    analytics.Revenue(orders),
			"total_profit":     analytics.Profit(orders, index),
			"total_orders":     len(orders),
			"total_units_sold": totalUnits,
			"total_inventory":  totalInventory,
		},
		"best_product":  best,
		"worst_product": worst,
	}})
}

// GET /dashboard/channel-wise?profile_id=
func DashboardChannelWiseHandler(w http.ResponseWriter, r *http.Request) {
	orders, _, err := fetchScoped(profileIDParam(r))
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load channel data"})
		return
	}

	channels := analytics.PerChannel(orders)
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]analytics.ChannelStats, 0, len(names))
	for _, name := range names {
		list = append(list, channels[name])
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: list})
}

// GET /dashboard/products?profile_id=
func DashboardProductsHandler(w http.ResponseWriter, r *http.Request) {
	orders, products, err := fetchScoped(profileIDParam(r))
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load product data"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: analytics.PerProduct(products, orders)})
}

// GET /dashboard/sales-summary?profile_id=
func DashboardSalesSummaryHandler(w http.ResponseWriter, r *http.Request) {
	orders, products, err := fetchScoped(profileIDParam(r))
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to load sales data"})
		return
	}

	index := analytics.ProductIndex(products)
	totalRevenue := analytics.Revenue(orders)
	totalProfit := analytics.Profit(orders, index)
	marginPct := 0.0
	if totalRevenue > 0 {
		marginPct = utils.Round2(totalProfit / totalRevenue * 100)
	}
	avgOrderValue := 0.0
	if len(orders) > 0 {
		avgOrderValue = utils.Round2(totalRevenue / float64(len(orders)))
	}
	health := analytics.ComputeInventoryHealth(products, orders)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: map[string]interface{}{
		"total_revenue":    totalRevenue,
		"total_profit":     totalProfit,
		"margin_percent":   marginPct,
		"avg_order_value":  avgOrderValue,
		"total_orders":     len(orders),
		"inventory_health": health.Status,
	}})
}
