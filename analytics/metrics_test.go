package analytics

import (
	"math"
	"testing"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
)

func strPtr(s string) *string { return &s }

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Masala Mix", CostPrice: 40, SellingPrice: 60, Inventory: 100},
		{ID: 2, Name: "Pickle Jar", CostPrice: 80, SellingPrice: 120, Inventory: 20},
		{ID: 3, Name: "Papad Pack", CostPrice: 10, SellingPrice: 25, Inventory: 50},
	}
}

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: 1, ProductID: 1, Channel: strPtr("whatsapp"), Quantity: 10, SellingPrice: 60},
		{ID: 2, ProductID: 1, Channel: strPtr("retail"), Quantity: 5, SellingPrice: 60},
		{ID: 3, ProductID: 2, Channel: nil, Quantity: 2, SellingPrice: 120},
		{ID: 4, ProductID: 2, Channel: strPtr("whatsapp"), Quantity: 1, SellingPrice: 110},
	}
}

func TestRevenueSumsSnapshottedPrices(t *testing.T) {
	got := Revenue(sampleOrders())
	want := 10*60.0 + 5*60.0 + 2*120.0 + 1*110.0
	if got != want {
		t.Fatalf("Revenue = %v, want %v", got, want)
	}
}

func TestRevenueEmpty(t *testing.T) {
	if got := Revenue(nil); got != 0 {
		t.Fatalf("Revenue(nil) = %v, want 0", got)
	}
}

func TestProfitUsesCostPriceJoin(t *testing.T) {
	idx := ProductIndex(sampleProducts())
	got := Profit(sampleOrders(), idx)
	// revenue 1250, cost = 15*40 + 3*80 = 840
	want := 1250.0 - 840.0
	if got != want {
		t.Fatalf("Profit = %v, want %v", got, want)
	}
}

func TestProfitMissingProductTreatedAsZeroCost(t *testing.T) {
	orders := []models.Order{{ID: 1, ProductID: 99, Quantity: 2, SellingPrice: 50}}
	got := Profit(orders, ProductIndex(sampleProducts()))
	if got != 100 {
		t.Fatalf("Profit with unknown product = %v, want 100", got)
	}
}

func TestPerChannelPartitionsAllOrders(t *testing.T) {
	orders := sampleOrders()
	byChannel := PerChannel(orders)

	if len(byChannel) != 3 {
		t.Fatalf("expected 3 channels, got %d: %v", len(byChannel), byChannel)
	}
	if _, ok := byChannel["unknown"]; !ok {
		t.Fatalf("orders without a channel must land in the unknown bucket")
	}

	// Channel totals must partition the order set exactly.
	var revSum float64
	var orderSum, unitSum int
	for _, s := range byChannel {
		revSum += s.Revenue
		orderSum += s.Orders
		unitSum += s.Units
	}
	if revSum != Revenue(orders) {
		t.Errorf("channel revenue sum %v != total revenue %v", revSum, Revenue(orders))
	}
	if orderSum != len(orders) {
		t.Errorf("channel order sum %d != %d orders", orderSum, len(orders))
	}
	if unitSum != 18 {
		t.Errorf("channel unit sum %d != 18", unitSum)
	}

	wa := byChannel["whatsapp"]
	if wa.Revenue != 710 || wa.Orders != 2 || wa.Units != 11 {
		t.Errorf("whatsapp stats = %+v", wa)
	}
}

func TestBestWorst(t *testing.T) {
	rev := map[uint]float64{1: 900, 2: 350}
	best, worst, ok := BestWorst(rev)
	if !ok {
		t.Fatal("expected ok with revenue data")
	}
	if best != 1 || worst != 2 {
		t.Fatalf("best=%d worst=%d, want 1/2", best, worst)
	}
}

func TestBestWorstTiesResolveToLowestID(t *testing.T) {
	rev := map[uint]float64{7: 500, 3: 500, 9: 500}
	best, worst, ok := BestWorst(rev)
	if !ok {
		t.Fatal("expected ok")
	}
	if best != 3 || worst != 3 {
		t.Fatalf("tied best=%d worst=%d, want 3/3", best, worst)
	}
}

func TestBestWorstEmpty(t *testing.T) {
	if _, _, ok := BestWorst(nil); ok {
		t.Fatal("expected ok=false with no revenue data")
	}
}

func TestPerProductStats(t *testing.T) {
	stats := PerProduct(sampleProducts(), sampleOrders())
	if len(stats) != 3 {
		t.Fatalf("expected stats for all 3 products, got %d", len(stats))
	}

	byID := make(map[uint]ProductStats)
	for _, s := range stats {
		byID[s.ID] = s
	}

	p1 := byID[1]
	if p1.Revenue != 900 || p1.UnitsSold != 15 || p1.Orders != 2 {
		t.Errorf("product 1 stats = %+v", p1)
	}
	if p1.Profit != 300 {
		t.Errorf("product 1 profit = %v, want 300", p1.Profit)
	}
	if math.Abs(p1.Margin-300.0/900.0*100) > 1e-9 {
		t.Errorf("product 1 margin = %v", p1.Margin)
	}
	if p1.Velocity != 7.5 {
		t.Errorf("product 1 velocity = %v, want 7.5", p1.Velocity)
	}

	// Unsold product: zero revenue, zero margin, velocity 0.
	p3 := byID[3]
	if p3.Revenue != 0 || p3.Margin != 0 || p3.Velocity != 0 {
		t.Errorf("unsold product stats = %+v", p3)
	}
	if p3.Inventory != 50 {
		t.Errorf("unsold product inventory = %d, want 50", p3.Inventory)
	}
}

func TestComputeInventoryHealthBuckets(t *testing.T) {
	tests := []struct {
		name       string
		inventory  int
		sold       int
		wantStatus string
	}{
		{"all stock on hand", 100, 0, "Good"},
		{"exactly 70 percent", 70, 30, "Good"},
		{"middle band", 50, 50, "Medium"},
		{"exactly 40 percent", 40, 60, "Medium"},
		{"mostly sold out", 10, 90, "Low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := []models.Product{{ID: 1, Name: "P", Inventory: tt.inventory}}
			orders := []models.Order{{ID: 1, ProductID: 1, Quantity: tt.sold, SellingPrice: 1}}
			if tt.sold == 0 {
				orders = nil
			}
			h := ComputeInventoryHealth(products, orders)
			if h.Status != tt.wantStatus {
				t.Errorf("status = %q (%.1f%%), want %q", h.Status, h.Percent, tt.wantStatus)
			}
		})
	}
}

func TestComputeInventoryHealthNoProducts(t *testing.T) {
	h := ComputeInventoryHealth(nil, nil)
	if h.Percent != 0 || h.Status != "Low" {
		t.Fatalf("empty health = %+v, want 0%% Low", h)
	}
}
