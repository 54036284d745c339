package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gender enumerates the accepted gender codes.
type Gender string

const (
	GenderMale   Gender = "m"
	GenderFemale Gender = "f"
	GenderOther  Gender = "o"
)

// Valid reports whether g is accepted by the schema check constraint.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// MaritalStatus enumerates marital states.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

func (m MaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

// ContractType enumerates employment contracts.
type ContractType string

const (
	ContractFullTime ContractType = "full time"
	ContractPartTime ContractType = "part time"
)

func (c ContractType) Valid() bool {
	return c == ContractFullTime || c == ContractPartTime
}

// NationalService enumerates national service states.
type NationalService string

const (
	NationalServiceReleased     NationalService = "released"
	NationalServiceExempted     NationalService = "exempted"
	NationalServiceServing      NationalService = "serving"
	NationalServiceNotCompleted NationalService = "not completed"
)

func (n NationalService) Valid() bool {
	switch n {
	case NationalServiceReleased, NationalServiceExempted, NationalServiceServing, NationalServiceNotCompleted:
		return true
	}
	return false
}

// Employee is the central HR record.
type Employee struct {
	ID                     string
	BadgeNumber            int64
	FirstName              string
	LastName               string
	GrandfatherName        string
	Gender                 Gender
	BirthDate              time.Time
	BirthPlace             string
	OriginOfBirth          string
	MotherFirstName        string
	MotherLastName         string
	MotherGrandfatherName  string
	CurrentSalary          decimal.Decimal
	CurrentHireDate        time.Time
	DesignationID          string
	SectionID              string
	NationalityID          string
	CountryID              string
	EducationalLevelID     string
	MaritalStatus          MaritalStatus
	PhoneNumber            *string
	NationalID             *string
	ContractType           ContractType
	NationalService        NationalService
	ApprenticeshipFromDate time.Time
	ApprenticeshipToDate   time.Time
	IsActive               bool
	IsTerminated           bool
	Audit
}

// FullName joins the three name parts.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName + " " + e.GrandfatherName
}

// EmployeeFull is an employee joined with the labels of every referenced record.
type EmployeeFull struct {
	Employee
	Division         string
	Department       string
	Unit             string
	Section          string
	EducationalLevel string
	Designation      string
	Nationality      string
	Country          string
}
