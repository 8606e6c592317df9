package usecase

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	companyentity "marketlens/internal/feature/companies/domain/entity"
)

// Maturity score weights. The score is a deterministic 0-10 heuristic, not
// a statistical model.
const (
	maturityListed       = 3
	maturityFunded       = 2
	maturityStaffed      = 2 // more than 100 employees
	maturityEstablished  = 2 // older than 5 years
	maturityRevenue      = 1
	maturityStaffedFloor = 100
	maturityAgeYears     = 5
)

// Ratio is a derived metric that may be undefined. Undefined ratios
// serialize as the explicit "N/A" sentinel, never as 0.
type Ratio struct {
	Value float64
	Valid bool
}

// MarshalJSON renders the value, or "N/A" when the ratio is undefined.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte(`"N/A"`), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON accepts either a number or the "N/A" sentinel.
func (r *Ratio) UnmarshalJSON(b []byte) error {
	if string(b) == `"N/A"` {
		*r = Ratio{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = Ratio{Value: v, Valid: true}
	return nil
}

// definedRatio builds a defined Ratio from num/den, scaled by factor.
func definedRatio(num, den decimal.Decimal, factor float64) Ratio {
	return Ratio{Value: num.Div(den).InexactFloat64() * factor, Valid: true}
}

// CompanyMetrics are the derived figures for one company in a comparison.
type CompanyMetrics struct {
	CompanyID     uint            `json:"company_id"`
	Name          string          `json:"name"`
	Sector        string          `json:"sector"`
	IsListed      bool            `json:"is_listed"`
	MarketCap     decimal.Decimal `json:"market_cap"`
	EmployeeCount int             `json:"employee_count"`
	TotalFunding  decimal.Decimal `json:"total_funding"`
	FundingRounds int             `json:"funding_rounds"`
	Revenue       decimal.Decimal `json:"revenue"`
	Profit        decimal.Decimal `json:"profit"`
	KeyOfficials  int             `json:"key_officials"`

	ProfitMargin         Ratio `json:"profit_margin"`
	PERatio              Ratio `json:"pe_ratio"`
	PSRatio              Ratio `json:"ps_ratio"`
	ROI                  Ratio `json:"roi"`
	RevenuePerEmployee   Ratio `json:"revenue_per_employee"`
	MarketCapPerEmployee Ratio `json:"market_cap_per_employee"`
	FundingPerEmployee   Ratio `json:"funding_per_employee"`
	FundingPerRound      Ratio `json:"funding_per_round"`

	MaturityScore int `json:"maturity_score"`
}

// Extremum names the company holding a cross-set extreme value.
type Extremum struct {
	CompanyID uint            `json:"company_id"`
	Name      string          `json:"name"`
	Value     decimal.Decimal `json:"value"`
}

// Result is the full output of one comparison run.
type Result struct {
	GeneratedAt      time.Time        `json:"generated_at"`
	Companies        []CompanyMetrics `json:"companies"`
	HighestMarketCap Extremum         `json:"highest_market_cap"`
	LowestMarketCap  Extremum         `json:"lowest_market_cap"`
	AvgEmployees     float64          `json:"avg_employees"`
	TotalFunding     decimal.Decimal  `json:"total_funding"`
	CompanyCount     int              `json:"company_count"`
}

// BuildMetrics derives the comparison result for the given hydrated
// companies. Pure and null-safe: missing figures degrade to zero or to the
// N/A sentinel, never to an error.
func BuildMetrics(companies []companyentity.Company, now time.Time) *Result {
	res := &Result{
		GeneratedAt:  now,
		CompanyCount: len(companies),
	}

	totalEmployees := 0
	for i, c := range companies {
		m := buildCompanyMetrics(c, now)
		res.Companies = append(res.Companies, m)

		totalEmployees += m.EmployeeCount
		res.TotalFunding = res.TotalFunding.Add(m.TotalFunding)

		ex := Extremum{CompanyID: c.ID, Name: c.Name, Value: m.MarketCap}
		if i == 0 || m.MarketCap.GreaterThan(res.HighestMarketCap.Value) {
			res.HighestMarketCap = ex
		}
		if i == 0 || m.MarketCap.LessThan(res.LowestMarketCap.Value) {
			res.LowestMarketCap = ex
		}
	}
	if len(companies) > 0 {
		res.AvgEmployees = float64(totalEmployees) / float64(len(companies))
	}
	return res
}

func buildCompanyMetrics(c companyentity.Company, now time.Time) CompanyMetrics {
	m := CompanyMetrics{
		CompanyID:     c.ID,
		Name:          c.Name,
		Sector:        c.Sector,
		IsListed:      c.IsListed,
		EmployeeCount: c.EmployeeCount,
		FundingRounds: len(c.FundingRounds),
		KeyOfficials:  len(c.KeyOfficials),
	}
	if c.MarketCap.Valid {
		m.MarketCap = c.MarketCap.Decimal
	}
	for _, r := range c.FundingRounds {
		if r.AmountRaised.Valid {
			m.TotalFunding = m.TotalFunding.Add(r.AmountRaised.Decimal)
		}
	}
	m.Revenue, m.Profit = latestFigures(c.FinancialStatements)

	employees := decimal.NewFromInt(int64(m.EmployeeCount))
	rounds := decimal.NewFromInt(int64(m.FundingRounds))

	// Each ratio is independently guarded; an undefined ratio stays N/A.
	if m.Revenue.IsPositive() && !m.Profit.IsZero() {
		m.ProfitMargin = definedRatio(m.Profit, m.Revenue, 100)
	}
	if m.MarketCap.IsPositive() && m.Profit.IsPositive() {
		m.PERatio = definedRatio(m.MarketCap, m.Profit, 1)
	}
	if m.MarketCap.IsPositive() && m.Revenue.IsPositive() {
		m.PSRatio = definedRatio(m.MarketCap, m.Revenue, 1)
	}
	if m.TotalFunding.IsPositive() && m.Profit.IsPositive() {
		m.ROI = definedRatio(m.Profit, m.TotalFunding, 100)
	}
	if m.Revenue.IsPositive() && m.EmployeeCount > 0 {
		m.RevenuePerEmployee = definedRatio(m.Revenue, employees, 1)
	}
	if m.MarketCap.IsPositive() && m.EmployeeCount > 0 {
		m.MarketCapPerEmployee = definedRatio(m.MarketCap, employees, 1)
	}
	if m.TotalFunding.IsPositive() && m.EmployeeCount > 0 {
		m.FundingPerEmployee = definedRatio(m.TotalFunding, employees, 1)
	}
	if m.TotalFunding.IsPositive() && m.FundingRounds > 0 {
		m.FundingPerRound = definedRatio(m.TotalFunding, rounds, 1)
	}

	m.MaturityScore = maturityScore(c, m, now)
	return m
}

// latestFigures picks revenue and profit from the most recent statement by
// financial year. The sort is explicit so the result does not depend on
// backend ordering.
func latestFigures(statements []companyentity.FinancialStatement) (revenue, profit decimal.Decimal) {
	if len(statements) == 0 {
		return decimal.Decimal{}, decimal.Decimal{}
	}
	sorted := make([]companyentity.FinancialStatement, len(statements))
	copy(sorted, statements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FinancialYear > sorted[j].FinancialYear
	})
	return sorted[0].Revenue, sorted[0].NetProfit
}

// maturityScore sums the weighted threshold checks into a 0-10 score.
func maturityScore(c companyentity.Company, m CompanyMetrics, now time.Time) int {
	score := 0
	if c.IsListed {
		score += maturityListed
	}
	if m.FundingRounds > 0 {
		score += maturityFunded
	}
	if m.EmployeeCount > maturityStaffedFloor {
		score += maturityStaffed
	}
	if !c.FoundedDate.IsZero() && c.FoundedDate.Before(now.AddDate(-maturityAgeYears, 0, 0)) {
		score += maturityEstablished
	}
	if m.Revenue.IsPositive() {
		score += maturityRevenue
	}
	return score
}
