package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Tanishka-Gaidhankar/VyaaparSahayak-backend/models"
	"gorm.io/gorm"
)

// CatalogScheme is one entry of the static scheme catalog, either built in or
// loaded from a schemes.json file.
type CatalogScheme struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Eligibility map[string]interface{} `json:"eligibility"`
	Benefits    string                 `json:"benefits"`
	Source      string                 `json:"source"`
}

// DefaultCatalog seeds the schemes table on first run when no external catalog
// file is configured.
var DefaultCatalog = []CatalogScheme{
	{
		Name:        "Pradhan Mantri Mudra Yojana (PMMY)",
		Description: "Collateral-free loans up to 10 lakh for non-corporate, non-farm micro and small enterprises.",
		Eligibility: map[string]interface{}{"min_revenue": 0, "max_revenue": 5000000, "business_types": []string{"all"}},
		Benefits:    "Shishu, Kishore and Tarun loan tranches with no collateral requirement.",
		Source:      "https://www.mudra.org.in",
	},
	{
		Name:        "Startup India Seed Fund Scheme",
		Description: "Seed funding for proof of concept, prototype development, product trials and market entry.",
		Eligibility: map[string]interface{}{"min_revenue": 0, "max_revenue": 10000000, "business_types": []string{"manufacturing", "services", "technology"}},
		Benefits:    "Grants up to 20 lakh for validation and up to 50 lakh of convertible debentures for commercialization.",
		Source:      "https://seedfund.startupindia.gov.in",
	},
	{
		Name:        "CGTMSE Credit Guarantee",
		Description: "Credit guarantee cover for collateral-free loans to micro and small enterprises.",
		Eligibility: map[string]interface{}{"min_revenue": 0, "business_types": []string{"all"}, "msme_registered": true},
		Benefits:    "Guarantee cover up to 85% on loans up to 5 crore.",
		Source:      "https://www.cgtmse.in",
	},
	{
		Name:        "PMEGP Margin Money Subsidy",
		Description: "Credit-linked subsidy for setting up new micro enterprises in manufacturing and services.",
		Eligibility: map[string]interface{}{"min_revenue": 0, "max_revenue": 2500000, "business_types": []string{"manufacturing", "services"}},
		Benefits:    "Margin money subsidy of 15-35% of project cost.",
		Source:      "https://www.kviconline.gov.in/pmegp",
	},
	{
		Name:        "MSME Champions Scheme",
		Description: "Technology upgrades, lean manufacturing and incubation support for registered MSMEs.",
		Eligibility: map[string]interface{}{"min_revenue": 100000, "business_types": []string{"all"}, "msme_registered": true},
		Benefits:    "Subsidized technology adoption, ZED certification support and incubation grants.",
		Source:      "https://champions.gov.in",
	},
	{
		Name:        "Stand-Up India",
		Description: "Bank loans between 10 lakh and 1 crore for greenfield enterprises.",
		Eligibility: map[string]interface{}{"min_revenue": 0, "business_types": []string{"manufacturing", "services", "trading", "retail"}},
		Benefits:    "Composite loan covering 85% of project cost with a repayment window of up to 7 years.",
		Source:      "https://www.standupmitra.in",
	},
}

// SeedSchemes populates the scheme catalog on first run. It never overwrites an
// existing catalog: a non-empty table short-circuits, so the seeding step is
// idempotent across restarts.
func SeedSchemes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Scheme{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count schemes: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog := DefaultCatalog
	if path := os.Getenv("SCHEME_CATALOG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[database] scheme catalog file unreadable, using built-in catalog: %v", err)
		} else {
			var fromFile []CatalogScheme
			if err := json.Unmarshal(data, &fromFile); err != nil {
				log.Printf("[database] scheme catalog file malformed, using built-in catalog: %v", err)
			} else if len(fromFile) > 0 {
				catalog = fromFile
			}
		}
	}

	for _, entry := range catalog {
		eligibility, err := json.Marshal(entry.Eligibility)
		if err != nil {
			return fmt.Errorf("failed to marshal eligibility for %q: %w", entry.Name, err)
		}
		scheme := models.Scheme{
			Name:            entry.Name,
			Description:     strPtr(entry.Description),
			EligibilityJSON: strPtr(string(eligibility)),
			Benefits:        strPtr(entry.Benefits),
			Source:          strPtr(entry.Source),
		}
		if err := db.Create(&scheme).Error; err != nil {
			return fmt.Errorf("failed to seed scheme %q: %w", entry.Name, err)
		}
	}
	log.Printf("[database] seeded %d schemes", len(catalog))
	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
