package domain

import "time"

// Termination records the end of an employment period.
type Termination struct {
	ID              string
	EmployeeID      string
	HireDate        time.Time
	TerminationDate time.Time
	Audit
}
