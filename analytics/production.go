package analytics

import "github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"

// ProductionInsight summarizes a product's recorded production runs and their
// effect on unit economics.
type ProductionInsight struct {
	ProductID             uint     `json:"product_id"`
	Name                  string   `json:"name"`
	ProductionCostPerUnit float64  `json:"production_cost_per_unit"`
	UnitsPerHour          float64  `json:"units_per_hour"`
	TotalUnitsProduced    int      `json:"total_units_produced"`
	TotalProductionCost   float64  `json:"total_production_cost"`
	CostLeakage           bool     `json:"cost_leakage"`
	LeakageFactor         *float64 `json:"leakage_factor"`
	UnitTotalCost         float64  `json:"unit_total_cost"`
	Margin                float64  `json:"margin"`
	MarginPercent         float64  `json:"margin_percent"`
}

// ComputeProductionInsights aggregates the product's batches; with no batch
// data it falls back to the product's own per-batch defaults. The leakage flag
// fires when realized cost per unit exceeds the booked cost price by more than
// 10%, and is only evaluated when the product has a nonzero cost price.
func ComputeProductionInsights(product *models.Product, batches []models.ProductionBatch) ProductionInsight {
	var totalUnits int
	var totalCost, totalTime float64
	for i := range batches {
		b := &batches[i]
		totalUnits += b.UnitsProduced
		totalCost += b.ProductionCost
		if b.ProductionTime != nil {
			totalTime += *b.ProductionTime
		}
	}

	if totalUnits == 0 {
		totalCost = 0
		totalTime = 0
		if product.UnitsPerBatch != nil {
			totalUnits = *product.UnitsPerBatch
			if product.ProductionCost != nil {
				totalCost = *product.ProductionCost
			}
		}
		if product.ProductionTime != nil {
			totalTime = *product.ProductionTime
		}
	}

	costPerUnit := 0.0
	if totalUnits > 0 {
		costPerUnit = totalCost / float64(totalUnits)
	}
	unitsPerHour := 0.0
	if totalTime > 0 {
		unitsPerHour = float64(totalUnits) / totalTime
	}

	var leakageFactor *float64
	leakage := false
	if product.CostPrice != 0 && costPerUnit > 0 {
		f := costPerUnit / product.CostPrice
		leakageFactor = &f
		leakage = f > 1.1
	}

	unitTotalCost := product.CostPrice + costPerUnit
	margin := product.SellingPrice - unitTotalCost
	marginPercent := 0.0
	if product.SellingPrice != 0 {
		marginPercent = margin / product.SellingPrice * 100
	}

	return ProductionInsight{
		ProductID:             product.ID,
		Name:                  product.Name,
		ProductionCostPerUnit: costPerUnit,
		UnitsPerHour:          unitsPerHour,
		TotalUnitsProduced:    totalUnits,
		TotalProductionCost:   totalCost,
		CostLeakage:           leakage,
		LeakageFactor:         leakageFactor,
		UnitTotalCost:         unitTotalCost,
		Margin:                margin,
		MarginPercent:         marginPercent,
	}
}
