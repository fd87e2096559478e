package models

import "time"

type StartupProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BusinessName   string    `gorm:"column:business_name;size:191;not null" json:"business_name"`
	BusinessType   string    `gorm:"column:business_type;size:100" json:"business_type"`
	Industry       string    `gorm:"column:industry;size:100" json:"industry"`
	Location       string    `gorm:"column:location;size:191" json:"location"`
	GrowthStage    *string   `gorm:"column:growth_stage;size:100" json:"growth_stage,omitempty"`
	MSMERegistered bool      `gorm:"column:msme_registered;default:false" json:"msme_registered"`
	AnnualRevenue  float64   `gorm:"column:annual_revenue;type:decimal(15,2);default:0" json:"annual_revenue"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (StartupProfile) TableName() string {
	return "startup_profiles"
}
