package analytics

import (
	"sort"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/utils"
)

// TopProduct is one entry of the snapshot's revenue leaderboard.
type TopProduct struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// Snapshot is the structured numeric summary of a business handed to the
// advisory collaborator. Everything in it comes from actual records so the
// generated plan can cite real numbers.
type Snapshot struct {
	BusinessName        string             `json:"business_name"`
	Industry            string             `json:"industry"`
	AnnualRevenue       float64            `json:"annual_revenue"`
	CurrentTotalSales   float64            `json:"current_total_sales"`
	EstimatedProfit     float64            `json:"estimated_profit"`
	MarginPercent       float64            `json:"margin_percent"`
	TotalOrders         int                `json:"total_orders"`
	ProductsCount       int                `json:"products_count"`
	TotalInventoryUnits int                `json:"total_inventory_units"`
	ChannelBreakdown    map[string]float64 `json:"channel_breakdown"`
	TopProducts         []TopProduct       `json:"top_products"`
	LowInventory        []string           `json:"low_inventory_products"`
}

// BuildSnapshot assembles the advisory snapshot: totals, channel revenue, the
// top three products by revenue (ties broken by lowest id) and up to five
// products with fewer than ten units on hand.
func BuildSnapshot(profile *models.StartupProfile, orders []models.Order, products []models.Product) Snapshot {
	index := ProductIndex(products)
	totalRevenue := Revenue(orders)
	profit := Profit(orders, index)
	marginPct := 0.0
	if totalRevenue > 0 {
		marginPct = utils.RoundFloat(profit/totalRevenue*100, 2)
	}

	channelRevenue := make(map[string]float64)
	for ch, s := range PerChannel(orders) {
		channelRevenue[ch] = s.Revenue
	}

	revenueByProduct := RevenueByProduct(orders)
	ids := make([]uint, 0, len(revenueByProduct))
	for id := range revenueByProduct {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if revenueByProduct[ids[i]] != revenueByProduct[ids[j]] {
			return revenueByProduct[ids[i]] > revenueByProduct[ids[j]]
		}
		return ids[i] < ids[j]
	})
	top := make([]TopProduct, 0, 3)
	for _, id := range ids {
		if len(top) == 3 {
			break
		}
		if p, ok := index[id]; ok {
			top = append(top, TopProduct{Name: p.Name, Revenue: revenueByProduct[id]})
		}
	}

	lowInventory := make([]string, 0)
	totalInventory := 0
	for i := range products {
		p := &products[i]
		totalInventory += p.Inventory
		if p.Inventory < 10 && len(lowInventory) < 5 {
			lowInventory = append(lowInventory, p.Name)
		}
	}

	return Snapshot{
		BusinessName:        profile.BusinessName,
		Industry:            profile.Industry,
		AnnualRevenue:       profile.AnnualRevenue,
		CurrentTotalSales:   totalRevenue,
		EstimatedProfit:     profit,
		MarginPercent:       marginPct,
		TotalOrders:         len(orders),
		ProductsCount:       len(products),
		TotalInventoryUnits: totalInventory,
		ChannelBreakdown:    channelRevenue,
		TopProducts:         top,
		LowInventory:        lowInventory,
	}
}
