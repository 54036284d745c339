package report

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MonthDays is the number of paid days in a month.
	MonthDays = 26
	// YearDays is the number of paid days in a year.
	YearDays = 313
)

// DurationType names the unit a service pay component is computed over.
type DurationType string

const (
	DurationYears  DurationType = "years"
	DurationMonths DurationType = "months"
	DurationDays   DurationType = "days"
)

// ServicePay is one component of the severance pay.
type ServicePay struct {
	DurationType DurationType    `json:"duration_type"`
	Duration     int             `json:"duration"`
	Amount       decimal.Decimal `json:"amount"`
}

// SeveranceEmployee carries the employee fields the report prints and computes from.
type SeveranceEmployee struct {
	FirstName       string
	LastName        string
	GrandfatherName string
	BadgeNumber     int64
	Department      string
	CurrentSalary   decimal.Decimal
	CurrentHireDate time.Time
	TerminationDate time.Time
}

// FullName joins the three name parts.
func (e SeveranceEmployee) FullName() string {
	return e.FirstName + " " + e.LastName + " " + e.GrandfatherName
}

// SeverancePayReport computes severance pay from an employee's tenure.
type SeverancePayReport struct {
	Employee SeveranceEmployee
	Tenure   Tenure
}

// Breakdown lists every component and the total.
type Breakdown struct {
	Tenure                 Tenure          `json:"tenure"`
	FirstFiveYears         ServicePay      `json:"first_five_years"`
	BetweenFiveAndTenYears ServicePay      `json:"between_five_and_ten_years"`
	MoreThanTenYears       ServicePay      `json:"more_than_ten_years"`
	RemainingMonths        ServicePay      `json:"remaining_months"`
	RemainingDays          ServicePay      `json:"remaining_days"`
	Total                  decimal.Decimal `json:"total"`
}

// NewSeverancePayReport measures tenure from hire to termination date.
// includeEndDate counts the termination day itself as served.
func NewSeverancePayReport(employee SeveranceEmployee, includeEndDate bool) *SeverancePayReport {
	tenure := TenureBetween(employee.CurrentHireDate, employee.TerminationDate)
	if includeEndDate {
		tenure.Days++
	}
	return &SeverancePayReport{Employee: employee, Tenure: tenure}
}

// pay returns salary / 26 * multiplier * 6 * units / divisor rounded half-even to cents.
func (r *SeverancePayReport) pay(multiplier, units, divisor int64) decimal.Decimal {
	numerator := r.Employee.CurrentSalary.
		Mul(decimal.NewFromInt(multiplier * 6 * units))
	return numerator.
		DivRound(decimal.NewFromInt(MonthDays*divisor), 16).
		RoundBank(2)
}

// FirstFiveYears pays two weeks per year for up to five years.
func (r *SeverancePayReport) FirstFiveYears() ServicePay {
	years := min(r.Tenure.Years, 5)
	return ServicePay{DurationType: DurationYears, Duration: years, Amount: r.pay(2, int64(years), 1)}
}

// BetweenFiveAndTenYears pays three weeks per year from the sixth to the tenth year.
func (r *SeverancePayReport) BetweenFiveAndTenYears() ServicePay {
	years := 0
	switch {
	case r.Tenure.Years > 10:
		years = 5
	case r.Tenure.Years > 5:
		years = r.Tenure.Years - 5
	}
	return ServicePay{DurationType: DurationYears, Duration: years, Amount: r.pay(3, int64(years), 1)}
}

// MoreThanTenYears pays four weeks per year above ten years.
func (r *SeverancePayReport) MoreThanTenYears() ServicePay {
	years := 0
	if r.Tenure.Years > 10 {
		years = r.Tenure.Years - 10
	}
	return ServicePay{DurationType: DurationYears, Duration: years, Amount: r.pay(4, int64(years), 1)}
}

// RemainingMonths pays the months past the last full year. Only tenures
// of five to nine years with a remainder get the three week rate; every
// other remainder is paid at four weeks.
func (r *SeverancePayReport) RemainingMonths() ServicePay {
	remainder := r.Tenure.Months > 0 || r.Tenure.Days > 0
	var multiplier int64
	switch {
	case r.Tenure.Years <= 5 && !remainder:
		multiplier = 2
	case r.Tenure.Years >= 5 && r.Tenure.Years < 10 && remainder:
		multiplier = 3
	default:
		multiplier = 4
	}
	months := r.Tenure.Months
	return ServicePay{DurationType: DurationMonths, Duration: months, Amount: r.pay(multiplier, int64(months), 12)}
}

// RemainingDays pays the days past the last full month at the band rate.
func (r *SeverancePayReport) RemainingDays() ServicePay {
	var multiplier int64
	switch {
	case r.Tenure.Years <= 5:
		multiplier = 2
	case r.Tenure.Years < 10:
		multiplier = 3
	default:
		multiplier = 4
	}
	days := r.Tenure.Days
	return ServicePay{DurationType: DurationDays, Duration: days, Amount: r.pay(multiplier, int64(days), YearDays)}
}

// Total sums every component.
func (r *SeverancePayReport) Total() decimal.Decimal {
	return r.Breakdown().Total
}

// Breakdown computes every component.
func (r *SeverancePayReport) Breakdown() Breakdown {
	b := Breakdown{
		Tenure:                 r.Tenure,
		FirstFiveYears:         r.FirstFiveYears(),
		BetweenFiveAndTenYears: r.BetweenFiveAndTenYears(),
		MoreThanTenYears:       r.MoreThanTenYears(),
		RemainingMonths:        r.RemainingMonths(),
		RemainingDays:          r.RemainingDays(),
	}
	b.Total = b.FirstFiveYears.Amount.
		Add(b.BetweenFiveAndTenYears.Amount).
		Add(b.MoreThanTenYears.Amount).
		Add(b.RemainingMonths.Amount).
		Add(b.RemainingDays.Amount).
		RoundBank(2)
	return b
}
