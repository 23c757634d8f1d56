package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonnelCosts holds the salary-related cost inputs. Percentages are
// stored as 0-100 values; the analytics engine converts to fractions.
type PersonnelCosts struct {
	DefaultBaseSalary            float64         `gorm:"type:decimal(10,2);default:0.0" json:"defaultBaseSalary"`
	SocialChargesPercent         float64         `gorm:"type:decimal(5,2);default:0.0" json:"socialChargesPercent"`
	SalaryOverrides              MoneyByEmployee `gorm:"type:jsonb;default:'{}'" json:"salaryOverrides"`
	WorkingDaysPerMonth          float64         `gorm:"default:22" json:"workingDaysPerMonth"`
	WorkingHoursPerDay           float64         `gorm:"default:8" json:"workingHoursPerDay"`
	DefaultCommissionRatePercent float64         `gorm:"type:decimal(5,2);default:0.0" json:"defaultCommissionRatePercent"`
	CommissionOverrides          MoneyByEmployee `gorm:"type:jsonb;default:'{}'" json:"commissionOverrides"`
}

type OperationalCosts struct {
	Rent                   float64 `gorm:"type:decimal(10,2);default:0.0" json:"rent"`
	Utilities              float64 `gorm:"type:decimal(10,2);default:0.0" json:"utilities"`
	ProductsEstimate       float64 `gorm:"type:decimal(10,2);default:0.0" json:"productsEstimate"`
	CleaningAndMaintenance float64 `gorm:"type:decimal(10,2);default:0.0" json:"cleaningAndMaintenance"`
}

type AdministrativeCosts struct {
	Marketing    float64 `gorm:"type:decimal(10,2);default:0.0" json:"marketing"`
	Accounting   float64 `gorm:"type:decimal(10,2);default:0.0" json:"accounting"`
	Software     float64 `gorm:"type:decimal(10,2);default:0.0" json:"software"`
	ProLabore    float64 `gorm:"type:decimal(10,2);default:0.0" json:"proLabore"`
	Depreciation float64 `gorm:"type:decimal(10,2);default:0.0" json:"depreciation"`
	Other        float64 `gorm:"type:decimal(10,2);default:0.0" json:"other"`
}

// TaxCosts: only FixedTaxes enters the monthly cost base. The
// percentage fees apply per transaction and are kept for reference.
type TaxCosts struct {
	FixedTaxes        float64 `gorm:"type:decimal(10,2);default:0.0" json:"fixedTaxes"`
	CardFeePercent    float64 `gorm:"type:decimal(5,2);default:0.0" json:"cardFeePercent"`
	ServiceTaxPercent float64 `gorm:"type:decimal(5,2);default:0.0" json:"serviceTaxPercent"`
}

// CostSettings is a singleton row: the salon's full cost configuration.
type CostSettings struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Personnel      PersonnelCosts      `gorm:"embedded;embeddedPrefix:personnel_" json:"personnel"`
	Operational    OperationalCosts    `gorm:"embedded;embeddedPrefix:operational_" json:"operational"`
	Administrative AdministrativeCosts `gorm:"embedded;embeddedPrefix:administrative_" json:"administrative"`
	Taxes          TaxCosts            `gorm:"embedded;embeddedPrefix:taxes_" json:"taxes"`

	gorm.Model
}

func (s *CostSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
