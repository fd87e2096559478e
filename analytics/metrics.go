// Package analytics derives dashboard metrics and risk findings from raw
// transactional records. Every function is pure and total over empty inputs:
// the caller fetches a consistent snapshot from the store and hands it in.
package analytics

import (
	"sort"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
)

// ChannelStats accumulates one sales channel's totals.
type ChannelStats struct {
	Channel string  `json:"channel"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	Units   int     `json:"units"`
}

// ProductStats is one product's performance summary for the dashboard.
type ProductStats struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Category  *string `json:"category"`
	Revenue   float64 `json:"revenue"`
	UnitsSold int     `json:"units_sold"`
	Profit    float64 `json:"profit"`
	Margin    float64 `json:"margin"`
	Orders    int     `json:"orders"`
	Inventory int     `json:"inventory"`
	Velocity  float64 `json:"velocity"`
}

// ProductIndex builds an id lookup so order/product joins are O(1) instead of
// scanning the product list per order.
func ProductIndex(products []models.Product) map[uint]models.Product {
	idx := make(map[uint]models.Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// Revenue sums quantity times the selling price recorded on each order.
func Revenue(orders []models.Order) float64 {
	var total float64
	for i := range orders {
		total += orders[i].Revenue()
	}
	return total
}

// Profit sums per-order profit against the matching product's cost price.
// Orders whose product is missing from the index are treated as zero cost.
func Profit(orders []models.Order, products map[uint]models.Product) float64 {
	var total float64
	for i := range orders {
		o := &orders[i]
		var cost float64
		if p, ok := products[o.ProductID]; ok {
			cost = p.CostPrice * float64(o.Quantity)
		}
		total += o.Revenue() - cost
	}
	return total
}

// PerChannel groups orders by channel, accumulating revenue, order count and
// units. Absent channels land in the "unknown" bucket.
func PerChannel(orders []models.Order) map[string]ChannelStats {
	byChannel := make(map[string]ChannelStats)
	for i := range orders {
		o := &orders[i]
		ch := o.ChannelName()
		s := byChannel[ch]
		s.Channel = ch
		s.Revenue += o.Revenue()
		s.Orders++
		s.Units += o.Quantity
		byChannel[ch] = s
	}
	return byChannel
}

// RevenueByProduct totals recorded revenue per product id.
func RevenueByProduct(orders []models.Order) map[uint]float64 {
	byProduct := make(map[uint]float64)
	for i := range orders {
		byProduct[orders[i].ProductID] += orders[i].Revenue()
	}
	return byProduct
}

// BestWorst picks the products with maximal and minimal revenue. Ties resolve
// to the lowest product id so the selection is deterministic regardless of map
// iteration order. ok is false when there is no revenue data at all.
func BestWorst(revenueByProduct map[uint]float64) (best, worst uint, ok bool) {
	ids := make([]uint, 0, len(revenueByProduct))
	for id := range revenueByProduct {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, 0, false
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	best, worst = ids[0], ids[0]
	for _, id := range ids[1:] {
		if revenueByProduct[id] > revenueByProduct[best] {
			best = id
		}
		if revenueByProduct[id] < revenueByProduct[worst] {
			worst = id
		}
	}
	return best, worst, true
}

// PerProduct computes each product's performance over the given orders.
// Velocity is units sold per order; a product with no orders has velocity 0.
func PerProduct(products []models.Product, orders []models.Order) []ProductStats {
	type acc struct {
		revenue float64
		units   int
		orders  int
	}
	byProduct := make(map[uint]acc)
	for i := range orders {
		o := &orders[i]
		a := byProduct[o.ProductID]
		a.revenue += o.Revenue()
		a.units += o.Quantity
		a.orders++
		byProduct[o.ProductID] = a
	}

	stats := make([]ProductStats, 0, len(products))
	for i := range products {
		p := &products[i]
		a := byProduct[p.ID]
		cost := float64(a.units) * p.CostPrice
		profit := a.revenue - cost
		margin := 0.0
		if a.revenue > 0 {
			margin = profit / a.revenue * 100
		}
		orderCount := a.orders
		if orderCount == 0 {
			orderCount = 1
		}
		stats = append(stats, ProductStats{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Revenue:   a.revenue,
			UnitsSold: a.units,
			Profit:    profit,
			Margin:    margin,
			Orders:    a.orders,
			Inventory: p.Inventory,
			Velocity:  float64(a.units) / float64(orderCount),
		})
	}
	return stats
}

// UnitsSoldByProduct totals quantity per product id.
func UnitsSoldByProduct(orders []models.Order) map[uint]int {
	byProduct := make(map[uint]int)
	for i := range orders {
		byProduct[orders[i].ProductID] += orders[i].Quantity
	}
	return byProduct
}

// InventoryHealth is the share of total possible stock (current plus units
// ever sold) still on hand, bucketed for the dashboard.
type InventoryHealth struct {
	Percent float64 `json:"percent"`
	Status  string  `json:"status"`
}

func ComputeInventoryHealth(products []models.Product, orders []models.Order) InventoryHealth {
	sold := UnitsSoldByProduct(orders)
	var current, possible int
	for i := range products {
		p := &products[i]
		current += p.Inventory
		possible += p.Inventory + sold[p.ID]
	}
	pct := 0.0
	if possible > 0 {
		pct = float64(current) / float64(possible) * 100
	}
	status := "Low"
	switch {
	case pct >= 70:
		status = "Good"
	case pct >= 40:
		status = "Medium"
	}
	return InventoryHealth{Percent: pct, Status: status}
}
