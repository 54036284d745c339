package dto

import (
	"github.com/shopspring/decimal"

	"github.com/zaer/hr-service/internal/domain"
)

// CreateEmployeeRequest payload.
type CreateEmployeeRequest struct {
	FirstName              string                 `json:"first_name"`
	LastName               string                 `json:"last_name"`
	GrandfatherName        string                 `json:"grandfather_name"`
	Gender                 domain.Gender          `json:"gender"`
	BirthDate              Date                   `json:"birth_date"`
	BirthPlace             string                 `json:"birth_place"`
	OriginOfBirth          string                 `json:"origin_of_birth"`
	MotherFirstName        string                 `json:"mother_first_name"`
	MotherLastName         string                 `json:"mother_last_name"`
	MotherGrandfatherName  string                 `json:"mother_grandfather_name"`
	CurrentSalary          decimal.Decimal        `json:"current_salary"`
	CurrentHireDate        Date                   `json:"current_hire_date"`
	DesignationID          string                 `json:"designation_uid"`
	SectionID              string                 `json:"section_uid"`
	NationalityID          string                 `json:"nationality_uid"`
	CountryID              string                 `json:"country_uid"`
	EducationalLevelID     string                 `json:"educational_level_uid"`
	MaritalStatus          domain.MaritalStatus   `json:"marital_status"`
	PhoneNumber            *string                `json:"phone_number"`
	NationalID             *string                `json:"national_id"`
	ContractType           domain.ContractType    `json:"contract_type"`
	NationalService        domain.NationalService `json:"national_service"`
	ApprenticeshipFromDate Date                   `json:"apprenticeship_from_date"`
	ApprenticeshipToDate   Date                   `json:"apprenticeship_to_date"`
}

// UpdateEmployeeRequest is a partial update; absent fields stay unchanged.
type UpdateEmployeeRequest struct {
	FirstName              *string                 `json:"first_name"`
	LastName               *string                 `json:"last_name"`
	GrandfatherName        *string                 `json:"grandfather_name"`
	Gender                 *domain.Gender          `json:"gender"`
	BirthDate              *Date                   `json:"birth_date"`
	BirthPlace             *string                 `json:"birth_place"`
	OriginOfBirth          *string                 `json:"origin_of_birth"`
	MotherFirstName        *string                 `json:"mother_first_name"`
	MotherLastName         *string                 `json:"mother_last_name"`
	MotherGrandfatherName  *string                 `json:"mother_grandfather_name"`
	CurrentSalary          *decimal.Decimal        `json:"current_salary"`
	CurrentHireDate        *Date                   `json:"current_hire_date"`
	DesignationID          *string                 `json:"designation_uid"`
	SectionID              *string                 `json:"section_uid"`
	NationalityID          *string                 `json:"nationality_uid"`
	CountryID              *string                 `json:"country_uid"`
	EducationalLevelID     *string                 `json:"educational_level_uid"`
	MaritalStatus          *domain.MaritalStatus   `json:"marital_status"`
	PhoneNumber            *string                 `json:"phone_number"`
	NationalID             *string                 `json:"national_id"`
	ContractType           *domain.ContractType    `json:"contract_type"`
	NationalService        *domain.NationalService `json:"national_service"`
	ApprenticeshipFromDate *Date                   `json:"apprenticeship_from_date"`
	ApprenticeshipToDate   *Date                   `json:"apprenticeship_to_date"`
	IsActive               *bool                   `json:"is_active"`
	IsTerminated           *bool                   `json:"is_terminated"`
}

// EmployeeResponse renders an employee.
type EmployeeResponse struct {
	Audit
	BadgeNumber            int64                  `json:"badge_number"`
	FirstName              string                 `json:"first_name"`
	LastName               string                 `json:"last_name"`
	GrandfatherName        string                 `json:"grandfather_name"`
	Gender                 domain.Gender          `json:"gender"`
	BirthDate              Date                   `json:"birth_date"`
	BirthPlace             string                 `json:"birth_place"`
	OriginOfBirth          string                 `json:"origin_of_birth"`
	MotherFirstName        string                 `json:"mother_first_name"`
	MotherLastName         string                 `json:"mother_last_name"`
	MotherGrandfatherName  string                 `json:"mother_grandfather_name"`
	CurrentSalary          decimal.Decimal        `json:"current_salary"`
	CurrentHireDate        Date                   `json:"current_hire_date"`
	DesignationID          string                 `json:"designation_uid"`
	SectionID              string                 `json:"section_uid"`
	NationalityID          string                 `json:"nationality_uid"`
	CountryID              string                 `json:"country_uid"`
	EducationalLevelID     string                 `json:"educational_level_uid"`
	MaritalStatus          domain.MaritalStatus   `json:"marital_status"`
	PhoneNumber            *string                `json:"phone_number"`
	NationalID             *string                `json:"national_id"`
	ContractType           domain.ContractType    `json:"contract_type"`
	NationalService        domain.NationalService `json:"national_service"`
	ApprenticeshipFromDate Date                   `json:"apprenticeship_from_date"`
	ApprenticeshipToDate   Date                   `json:"apprenticeship_to_date"`
	IsActive               bool                   `json:"is_active"`
	IsTerminated           bool                   `json:"is_terminated"`
}

// EmployeeFullResponse adds the labels of every referenced record.
type EmployeeFullResponse struct {
	EmployeeResponse
	Division         string `json:"division"`
	Department       string `json:"department"`
	Unit             string `json:"unit"`
	Section          string `json:"section"`
	EducationalLevel string `json:"educational_level"`
	Designation      string `json:"designation"`
	Nationality      string `json:"nationality"`
	Country          string `json:"country"`
}

func auditOf(id string, a domain.Audit) Audit {
	return Audit{
		ID:           id,
		CreatedBy:    a.CreatedBy,
		ModifiedBy:   a.ModifiedBy,
		DateCreated:  a.DateCreated,
		DateModified: a.DateModified,
	}
}

// NewEmployeeResponse maps the domain record.
func NewEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		Audit:                  auditOf(e.ID, e.Audit),
		BadgeNumber:            e.BadgeNumber,
		FirstName:              e.FirstName,
		LastName:               e.LastName,
		GrandfatherName:        e.GrandfatherName,
		Gender:                 e.Gender,
		BirthDate:              NewDate(e.BirthDate),
		BirthPlace:             e.BirthPlace,
		OriginOfBirth:          e.OriginOfBirth,
		MotherFirstName:        e.MotherFirstName,
		MotherLastName:         e.MotherLastName,
		MotherGrandfatherName:  e.MotherGrandfatherName,
		CurrentSalary:          e.CurrentSalary,
		CurrentHireDate:        NewDate(e.CurrentHireDate),
		DesignationID:          e.DesignationID,
		SectionID:              e.SectionID,
		NationalityID:          e.NationalityID,
		CountryID:              e.CountryID,
		EducationalLevelID:     e.EducationalLevelID,
		MaritalStatus:          e.MaritalStatus,
		PhoneNumber:            e.PhoneNumber,
		NationalID:             e.NationalID,
		ContractType:           e.ContractType,
		NationalService:        e.NationalService,
		ApprenticeshipFromDate: NewDate(e.ApprenticeshipFromDate),
		ApprenticeshipToDate:   NewDate(e.ApprenticeshipToDate),
		IsActive:               e.IsActive,
		IsTerminated:           e.IsTerminated,
	}
}

// NewEmployeeFullResponse maps the joined projection.
func NewEmployeeFullResponse(e *domain.EmployeeFull) EmployeeFullResponse {
	return EmployeeFullResponse{
		EmployeeResponse: NewEmployeeResponse(&e.Employee),
		Division:         e.Division,
		Department:       e.Department,
		Unit:             e.Unit,
		Section:          e.Section,
		EducationalLevel: e.EducationalLevel,
		Designation:      e.Designation,
		Nationality:      e.Nationality,
		Country:          e.Country,
	}
}
