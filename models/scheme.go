package models

import (
	"encoding/json"
	"time"
)

type Scheme struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"column:name;size:191;not null" json:"name"`
	Description     *string   `gorm:"column:description;type:text" json:"description"`
	EligibilityJSON *string   `gorm:"column:eligibility_json;type:text" json:"-"`
	Benefits        *string   `gorm:"column:benefits;type:text" json:"benefits"`
	Source          *string   `gorm:"column:source;size:191" json:"source"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (Scheme) TableName() string {
	return "schemes"
}

// Eligibility is a scheme's parsed rule set. The zero value carries no
// constraints and matches every profile.
type Eligibility struct {
	MinRevenue     float64  `json:"min_revenue"`
	MaxRevenue     *float64 `json:"max_revenue,omitempty"`
	BusinessTypes  []string `json:"business_types,omitempty"`
	MSMERegistered bool     `json:"msme_registered"`
}

// Eligibility parses the stored rule set. A missing or malformed payload
// degrades to empty constraints rather than an error, so a bad catalog row
// still surfaces to every profile.
func (s *Scheme) Eligibility() Eligibility {
	var e Eligibility
	if s.EligibilityJSON == nil || *s.EligibilityJSON == "" {
		return e
	}
	if err := json.Unmarshal([]byte(*s.EligibilityJSON), &e); err != nil {
		return Eligibility{}
	}
	return e
}

// Matches reports whether a profile satisfies the rule set: revenue inside
// [min, max] (max unbounded when absent), business type allowed (the sentinel
// "all" or an empty list allows everything), and MSME registration when the
// scheme requires it.
func (e Eligibility) Matches(profile *StartupProfile) bool {
	if profile.AnnualRevenue < e.MinRevenue {
		return false
	}
	if e.MaxRevenue != nil && profile.AnnualRevenue > *e.MaxRevenue {
		return false
	}
	if len(e.BusinessTypes) > 0 {
		allowed := false
		for _, t := range e.BusinessTypes {
			if t == "all" || t == profile.BusinessType {
				allowed = true
				break
			}
		}
		if !allowed {
			return false
		}
	}
	if e.MSMERegistered && !profile.MSMERegistered {
		return false
	}
	return true
}

// MatchSchemes filters a catalog against a profile.
func MatchSchemes(profile *StartupProfile, schemes []Scheme) []Scheme {
	matched := make([]Scheme, 0)
	for _, s := range schemes {
		if s.Eligibility().Matches(profile) {
			matched = append(matched, s)
		}
	}
	return matched
}
