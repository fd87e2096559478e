package analytics

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
)

func findRisk(risks []Risk, typ string) (Risk, bool) {
	for _, r := range risks {
		if r.Type == typ {
			return r, true
		}
	}
	return Risk{}, false
}

func TestDetectRisksEmptyInputs(t *testing.T) {
	a := DetectRisks(nil, nil, nil)
	if a.RiskLevel != LevelLow {
		t.Errorf("level = %q, want low", a.RiskLevel)
	}
	if len(a.Risks) != 0 {
		t.Errorf("expected no findings, got %v", a.Risks)
	}
	if a.Summary != "Detected 0 risks: 0 high, 0 medium." {
		t.Errorf("summary = %q", a.Summary)
	}
}

func TestChannelDependencyHigh(t *testing.T) {
	// 70% of revenue from whatsapp.
	orders := []models.Order{
		{ProductID: 1, Channel: strPtr("whatsapp"), Quantity: 7, SellingPrice: 100},
		{ProductID: 1, Channel: strPtr("retail"), Quantity: 3, SellingPrice: 100},
	}
	a := DetectRisks(orders, nil, nil)
	r, ok := findRisk(a.Risks, "channel_dependency")
	if !ok {
		t.Fatalf("expected channel_dependency, got %v", a.Risks)
	}
	if r.Severity != SeverityHigh {
		t.Errorf("severity = %q, want high", r.Severity)
	}
	if !strings.Contains(r.Message, "70.0%") || !strings.Contains(r.Message, "'whatsapp'") {
		t.Errorf("message = %q", r.Message)
	}
}

func TestChannelConcentrationBoundaries(t *testing.T) {
	// Exactly 60% is concentration (medium), not dependency (high).
	orders := []models.Order{
		{ProductID: 1, Channel: strPtr("online"), Quantity: 6, SellingPrice: 100},
		{ProductID: 1, Channel: strPtr("retail"), Quantity: 4, SellingPrice: 100},
	}
	a := DetectRisks(orders, nil, nil)
	if _, ok := findRisk(a.Risks, "channel_dependency"); ok {
		t.Fatal("60% exactly must not be high dependency")
	}
	r, ok := findRisk(a.Risks, "channel_concentration")
	if !ok {
		t.Fatalf("expected channel_concentration at 60%%, got %v", a.Risks)
	}
	if r.Severity != SeverityMedium {
		t.Errorf("severity = %q, want medium", r.Severity)
	}

	// Exactly 40% triggers nothing.
	orders = []models.Order{
		{ProductID: 1, Channel: strPtr("online"), Quantity: 4, SellingPrice: 100},
		{ProductID: 1, Channel: strPtr("a"), Quantity: 3, SellingPrice: 100},
		{ProductID: 1, Channel: strPtr("b"), Quantity: 3, SellingPrice: 100},
	}
	a = DetectRisks(orders, nil, nil)
	for _, r := range a.Risks {
		if r.Type == "channel_dependency" || r.Type == "channel_concentration" {
			t.Fatalf("40%% exactly must not produce a channel finding: %v", r)
		}
	}
}

func TestDeadStockRule(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Mover", Inventory: 5, CostPrice: 1, SellingPrice: 100},
		{ID: 2, Name: "Sitter", Inventory: 30, CostPrice: 1, SellingPrice: 2},
		{ID: 3, Name: "Empty", Inventory: 0},
	}
	orders := []models.Order{{ProductID: 1, Quantity: 2, SellingPrice: 100}}

	a := DetectRisks(orders, products, nil)
	r, ok := findRisk(a.Risks, "dead_stock")
	if !ok {
		t.Fatalf("expected dead_stock, got %v", a.Risks)
	}
	if !strings.Contains(r.Message, "'Sitter'") || !strings.Contains(r.Message, "30 units") {
		t.Errorf("message = %q", r.Message)
	}
	// Zero-inventory unsold products are not dead stock.
	count := 0
	for _, r := range a.Risks {
		if r.Type == "dead_stock" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 dead_stock finding, got %d", count)
	}
}

func TestProductionLeakageRule(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "Soap", CostPrice: 10, SellingPrice: 30}}
	batches := []models.ProductionBatch{
		{ProductID: 1, UnitsProduced: 50, ProductionCost: 600},
		{ProductID: 1, UnitsProduced: 50, ProductionCost: 600},
	}
	// cost per unit 12 > 10 * 1.1
	a := DetectRisks(nil, products, batches)
	r, ok := findRisk(a.Risks, "production_leakage")
	if !ok {
		t.Fatalf("expected production_leakage, got %v", a.Risks)
	}
	if r.Severity != SeverityHigh {
		t.Errorf("severity = %q, want high", r.Severity)
	}
	if !strings.Contains(r.Message, "12.00") || !strings.Contains(r.Message, "10.00") {
		t.Errorf("message = %q", r.Message)
	}
}

func TestMarginRules(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "P", CostPrice: 95, SellingPrice: 100}}

	// 5% margin: low_margin high.
	orders := []models.Order{{ProductID: 1, Quantity: 1, SellingPrice: 100}}
	a := DetectRisks(orders, products, nil)
	if r, ok := findRisk(a.Risks, "low_margin"); !ok || r.Severity != SeverityHigh {
		t.Fatalf("expected high low_margin, got %v", a.Risks)
	}

	// 12% margin: thin_margin medium.
	products[0].CostPrice = 88
	a = DetectRisks(orders, products, nil)
	if _, ok := findRisk(a.Risks, "low_margin"); ok {
		t.Fatal("12% margin must not be low_margin")
	}
	if r, ok := findRisk(a.Risks, "thin_margin"); !ok || r.Severity != SeverityMedium {
		t.Fatalf("expected medium thin_margin, got %v", a.Risks)
	}

	// 20% margin: no margin finding.
	products[0].CostPrice = 80
	a = DetectRisks(orders, products, nil)
	for _, r := range a.Risks {
		if r.Type == "low_margin" || r.Type == "thin_margin" {
			t.Fatalf("20%% margin must not produce a margin finding: %v", r)
		}
	}
}

func TestOverallRiskLevelMatrix(t *testing.T) {
	high := Risk{Severity: SeverityHigh}
	med := Risk{Severity: SeverityMedium}

	tests := []struct {
		name  string
		risks []Risk
		want  string
	}{
		{"none", nil, LevelLow},
		{"one medium", []Risk{med}, LevelLow},
		{"two medium", []Risk{med, med}, LevelLow},
		{"three medium", []Risk{med, med, med}, LevelMedium},
		{"one high", []Risk{high}, LevelMedium},
		{"one high plus mediums", []Risk{high, med, med}, LevelMedium},
		{"two high", []Risk{high, high}, LevelHigh},
		{"two high plus medium", []Risk{high, high, med}, LevelHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallRiskLevel(tt.risks); got != tt.want {
				t.Errorf("OverallRiskLevel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectRisksDeterministic(t *testing.T) {
	// The rule battery runs over map-grouped data; repeated runs on an
	// unchanged dataset must produce identical output, finding order included.
	products := []models.Product{
		{ID: 1, Name: "Mover", CostPrice: 95, SellingPrice: 100, Inventory: 10},
		{ID: 2, Name: "Sitter", CostPrice: 5, SellingPrice: 20, Inventory: 30},
		{ID: 3, Name: "Soap", CostPrice: 10, SellingPrice: 30},
	}
	orders := []models.Order{
		{ProductID: 1, Channel: strPtr("whatsapp"), Quantity: 5, SellingPrice: 100},
		{ProductID: 1, Channel: strPtr("retail"), Quantity: 2, SellingPrice: 100},
		{ProductID: 1, Channel: nil, Quantity: 1, SellingPrice: 100},
	}
	batches := []models.ProductionBatch{
		{ProductID: 3, UnitsProduced: 50, ProductionCost: 600},
	}

	first := DetectRisks(orders, products, batches)
	if len(first.Risks) < 3 {
		t.Fatalf("dataset should trigger several rules, got %v", first.Risks)
	}
	for i := 0; i < 20; i++ {
		again := DetectRisks(orders, products, batches)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}

func TestSummaryCountsFindings(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "P", CostPrice: 95, SellingPrice: 100, Inventory: 10}}
	orders := []models.Order{{ProductID: 1, Channel: strPtr("online"), Quantity: 1, SellingPrice: 100}}
	// Findings: channel_dependency (high, 100% one channel) + low_margin (high).
	a := DetectRisks(orders, products, nil)
	if a.RiskLevel != LevelHigh {
		t.Errorf("level = %q, want high (two high findings)", a.RiskLevel)
	}
	if a.Summary != "Detected 2 risks: 2 high, 0 medium." {
		t.Errorf("summary = %q", a.Summary)
	}
}
