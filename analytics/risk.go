package analytics

import (
	"fmt"
	"sort"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
)

// Risk severities and levels, ordered low < medium < high.
const (
	SeverityMedium = "medium"
	SeverityHigh   = "high"

	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Risk is one typed finding produced by the rule battery.
type Risk struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// RiskAnalysis is the full output of one rule-engine run.
type RiskAnalysis struct {
	RiskLevel string `json:"risk_level"`
	Risks     []Risk `json:"risks"`
	Summary   string `json:"summary"`
}

// DetectRisks runs the fixed rule battery over a profile's records. Every rule
// is evaluated independently and all applicable findings are returned. Empty
// inputs yield an empty finding list and level "low"; a missing profile is the
// caller's error condition, not a finding.
func DetectRisks(orders []models.Order, products []models.Product, batches []models.ProductionBatch) RiskAnalysis {
	risks := make([]Risk, 0)

	// Channel dependency: revenue share per channel. Strictly greater than 60%
	// is high; the (40%, 60%] band is medium.
	channels := PerChannel(orders)
	totalRevenue := Revenue(orders)
	if totalRevenue > 0 {
		names := make([]string, 0, len(channels))
		for name := range channels {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pct := channels[name].Revenue / totalRevenue * 100
			if pct > 60 {
				risks = append(risks, Risk{
					Type:     "channel_dependency",
					Severity: SeverityHigh,
					Message:  fmt.Sprintf("%.1f%% revenue from '%s' channel. Diversify to reduce risk.", pct, name),
				})
			} else if pct > 40 {
				risks = append(risks, Risk{
					Type:     "channel_concentration",
					Severity: SeverityMedium,
					Message:  fmt.Sprintf("%.1f%% revenue from '%s'. Consider expanding channels.", pct, name),
				})
			}
		}
	}

	// Dead stock: positive inventory, zero units ever sold.
	sold := UnitsSoldByProduct(orders)
	for i := range products {
		p := &products[i]
		if p.Inventory > 0 && sold[p.ID] == 0 {
			risks = append(risks, Risk{
				Type:     "dead_stock",
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("Product '%s' has %d units with no sales. Consider markdowns or discontinuation.", p.Name, p.Inventory),
			})
		}
	}

	// Production cost leakage: realized cost per unit across a product's
	// batches exceeding booked cost price by more than 10%.
	batchesByProduct := make(map[uint][]models.ProductionBatch)
	for i := range batches {
		batchesByProduct[batches[i].ProductID] = append(batchesByProduct[batches[i].ProductID], batches[i])
	}
	for i := range products {
		p := &products[i]
		productBatches := batchesByProduct[p.ID]
		if len(productBatches) == 0 {
			continue
		}
		var units int
		var cost float64
		for j := range productBatches {
			units += productBatches[j].UnitsProduced
			cost += productBatches[j].ProductionCost
		}
		costPerUnit := 0.0
		if units > 0 {
			costPerUnit = cost / float64(units)
		}
		if costPerUnit > p.CostPrice*1.1 {
			risks = append(risks, Risk{
				Type:     "production_leakage",
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("Production cost per unit (%.2f) exceeds expected (%.2f). Review batch efficiency.", costPerUnit, p.CostPrice),
			})
		}
	}

	// Margin risk: overall profit margin, only when there is revenue.
	if totalRevenue > 0 {
		profit := Profit(orders, ProductIndex(products))
		marginPct := profit / totalRevenue * 100
		if marginPct < 10 {
			risks = append(risks, Risk{
				Type:     "low_margin",
				Severity: SeverityHigh,
				Message:  fmt.Sprintf("Overall profit margin is %.1f%%. Target 20-30%% for sustainability.", marginPct),
			})
		} else if marginPct < 15 {
			risks = append(risks, Risk{
				Type:     "thin_margin",
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("Profit margin is %.1f%%. Increase prices or reduce costs.", marginPct),
			})
		}
	}

	return RiskAnalysis{
		RiskLevel: OverallRiskLevel(risks),
		Risks:     risks,
		Summary:   summarize(risks),
	}
}

// OverallRiskLevel escalates by finding counts: two highs make the business
// high risk, a single high or three mediums make it medium.
func OverallRiskLevel(risks []Risk) string {
	high, medium := countBySeverity(risks)
	switch {
	case high >= 2:
		return LevelHigh
	case high >= 1 || medium >= 3:
		return LevelMedium
	default:
		return LevelLow
	}
}

func countBySeverity(risks []Risk) (high, medium int) {
	for _, r := range risks {
		switch r.Severity {
		case SeverityHigh:
			high++
		case SeverityMedium:
			medium++
		}
	}
	return high, medium
}

func summarize(risks []Risk) string {
	high, medium := countBySeverity(risks)
	return fmt.Sprintf("Detected %d risks: %d high, %d medium.", len(risks), high, medium)
}
