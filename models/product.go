package models

import "time"

type Product struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StartupProfileID *uint     `gorm:"column:startup_profile_id;index" json:"startup_profile_id"`
	Name             string    `gorm:"column:name;size:100;not null" json:"name"`
	Category         *string   `gorm:"column:category;size:100" json:"category"`
	CostPrice        float64   `gorm:"column:cost_price;type:decimal(15,2);default:0" json:"cost_price"`
	SellingPrice     float64   `gorm:"column:selling_price;type:decimal(15,2);default:0" json:"selling_price"`
	Inventory        int       `gorm:"column:inventory;default:0" json:"inventory"`
	UnitsPerBatch    *int      `gorm:"column:units_per_batch" json:"units_per_batch,omitempty"`
	ProductionCost   *float64  `gorm:"column:production_cost;type:decimal(15,2)" json:"production_cost,omitempty"`
	ProductionTime   *float64  `gorm:"column:production_time" json:"production_time,omitempty"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// DecrementInventory is the single mutation point for stock. It validates
// sufficiency before touching the counter so a rejected order leaves the
// product unchanged.
func (p *Product) DecrementInventory(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if p.Inventory < qty {
		return &InsufficientInventoryError{Requested: qty, Available: p.Inventory}
	}
	p.Inventory -= qty
	return nil
}
