package models

import "time"

// RiskReport is the persisted audit trail of one risk analysis run. The
// api_key_hash column holds a non-secret fingerprint only, never a credential.
type RiskReport struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StartupProfileID uint      `gorm:"column:startup_profile_id;not null;index" json:"startup_profile_id"`
	RiskLevel        string    `gorm:"column:risk_level;size:20" json:"risk_level"`
	RisksJSON        *string   `gorm:"column:risks_json;type:text" json:"risks_json,omitempty"`
	AIActionsJSON    *string   `gorm:"column:ai_actions_json;type:text" json:"ai_actions_json,omitempty"`
	Timestamp        *string   `gorm:"column:timestamp;size:64" json:"timestamp,omitempty"`
	APIKeyHash       *string   `gorm:"column:api_key_hash;size:64" json:"-"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (RiskReport) TableName() string {
	return "risk_reports"
}
