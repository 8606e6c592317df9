// Package entity defines the domain entities of the companies feature.
// These rows are owned by the external backend; this service only reads them.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company statuses. Only active companies participate in search and analysis.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Company is a tracked company. Sector is free text and may be blank; blank
// sectors are excluded from per-sector grouping but still count toward
// whole-market totals. MarketCap is nullable as not every company discloses
// a valuation.
type Company struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	Name          string              `gorm:"size:255;not null;index" json:"name"`
	Sector        string              `gorm:"size:120;index" json:"sector"`
	CompanyType   string              `gorm:"size:80" json:"company_type"`
	EmployeeCount int                 `gorm:"not null;default:0" json:"employee_count"`
	MarketCap     decimal.NullDecimal `gorm:"type:numeric(20,2)" json:"market_cap"`
	FoundedDate   time.Time           `json:"founded_date"`
	IsListed      bool                `gorm:"not null;default:false" json:"is_listed"`
	Status        string              `gorm:"size:20;not null;default:ACTIVE;index" json:"status"`
	CreatedAt     time.Time           `json:"-"`
	UpdatedAt     time.Time           `json:"-"`

	FinancialStatements []FinancialStatement `json:"financial_statements,omitempty"`
	FundingRounds       []FundingRound       `json:"funding_rounds,omitempty"`
	KeyOfficials        []KeyOfficial        `json:"key_officials,omitempty"`
}

// FinancialStatement is one fiscal year of reported figures for a company.
type FinancialStatement struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CompanyID     uint            `gorm:"not null;index" json:"company_id"`
	FinancialYear int             `gorm:"not null" json:"financial_year"`
	Revenue       decimal.Decimal `gorm:"type:numeric(20,2)" json:"revenue"`
	NetProfit     decimal.Decimal `gorm:"type:numeric(20,2)" json:"net_profit"`
}

// FundingRound is a capital-raising event. AmountRaised may be null or zero
// for undisclosed deals; such rounds are excluded from deal rankings.
type FundingRound struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	CompanyID    uint                `gorm:"not null;index" json:"company_id"`
	AmountRaised decimal.NullDecimal `gorm:"type:numeric(20,2)" json:"amount_raised"`
	RoundType    string              `gorm:"size:60" json:"round_type"`
	FundingDate  time.Time           `gorm:"index" json:"funding_date"`
}

// KeyOfficial is a named executive or board member of a company.
type KeyOfficial struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CompanyID uint   `gorm:"not null;index" json:"company_id"`
	Name      string `gorm:"size:160;not null" json:"name"`
	Position  string `gorm:"size:120" json:"position"`
}
