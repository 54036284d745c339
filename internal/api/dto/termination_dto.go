package dto

import (
	"github.com/shopspring/decimal"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/report"
)

// CreateTerminationRequest payload. The hire date is taken from the employee.
type CreateTerminationRequest struct {
	EmployeeID      string `json:"employee_uid"`
	TerminationDate Date   `json:"termination_date"`
}

// UpdateTerminationRequest is a partial update.
type UpdateTerminationRequest struct {
	HireDate        *Date `json:"hire_date"`
	TerminationDate *Date `json:"termination_date"`
}

// TerminationResponse renders a termination.
type TerminationResponse struct {
	Audit
	EmployeeID      string `json:"employee_uid"`
	HireDate        Date   `json:"hire_date"`
	TerminationDate Date   `json:"termination_date"`
}

func NewTerminationResponse(t *domain.Termination) TerminationResponse {
	return TerminationResponse{
		Audit:           auditOf(t.ID, t.Audit),
		EmployeeID:      t.EmployeeID,
		HireDate:        NewDate(t.HireDate),
		TerminationDate: NewDate(t.TerminationDate),
	}
}

// SeverancePayResponse renders the severance computation.
type SeverancePayResponse struct {
	BadgeNumber     int64           `json:"badge_number"`
	FullName        string          `json:"full_name"`
	Department      string          `json:"department"`
	CurrentSalary   decimal.Decimal `json:"current_salary"`
	HireDate        Date            `json:"hire_date"`
	TerminationDate Date            `json:"termination_date"`
	report.Breakdown
}

func NewSeverancePayResponse(r *report.SeverancePayReport) SeverancePayResponse {
	return SeverancePayResponse{
		BadgeNumber:     r.Employee.BadgeNumber,
		FullName:        r.Employee.FullName(),
		Department:      r.Employee.Department,
		CurrentSalary:   r.Employee.CurrentSalary,
		HireDate:        NewDate(r.Employee.CurrentHireDate),
		TerminationDate: NewDate(r.Employee.TerminationDate),
		Breakdown:       r.Breakdown(),
	}
}
