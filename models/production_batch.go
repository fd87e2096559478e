package models

import "time"

// ProductionBatch records one production run. production_cost is the total for
// the batch, not per unit.
type ProductionBatch struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StartupProfileID *uint     `gorm:"column:startup_profile_id;index" json:"startup_profile_id"`
	ProductID        uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	UnitsProduced    int       `gorm:"column:units_produced;default:0" json:"units_produced"`
	ProductionCost   float64   `gorm:"column:production_cost;type:decimal(15,2);default:0" json:"production_cost"`
	ProductionTime   *float64  `gorm:"column:production_time" json:"production_time,omitempty"`
	Date             *string   `gorm:"column:date;size:32" json:"date,omitempty"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (ProductionBatch) TableName() string {
	return "production_batches"
}
