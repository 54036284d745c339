package dto

import "github.com/zaer/hr-service/internal/domain"

// ChildRequest is used for both create and partial update.
type ChildRequest struct {
	ParentID  *string        `json:"parent_uid"`
	FirstName *string        `json:"first_name"`
	Gender    *domain.Gender `json:"gender"`
	BirthDate *Date          `json:"birth_date"`
}

// ChildResponse renders a child.
type ChildResponse struct {
	Audit
	ParentID  string        `json:"parent_uid"`
	FirstName string        `json:"first_name"`
	Gender    domain.Gender `json:"gender"`
	BirthDate Date          `json:"birth_date"`
}

func NewChildResponse(c *domain.Child) ChildResponse {
	return ChildResponse{
		Audit:     auditOf(c.ID, c.Audit),
		ParentID:  c.ParentID,
		FirstName: c.FirstName,
		Gender:    c.Gender,
		BirthDate: NewDate(c.BirthDate),
	}
}

// AddressRequest is used for both create and partial update.
type AddressRequest struct {
	EmployeeID  *string `json:"employee_uid"`
	City        *string `json:"city"`
	District    *string `json:"district"`
	Street      *string `json:"street"`
	HouseNumber *int    `json:"house_number"`
}

// AddressResponse renders an address.
type AddressResponse struct {
	Audit
	EmployeeID  string `json:"employee_uid"`
	City        string `json:"city"`
	District    string `json:"district"`
	Street      string `json:"street"`
	HouseNumber int    `json:"house_number"`
}

func NewAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{
		Audit:       auditOf(a.ID, a.Audit),
		EmployeeID:  a.EmployeeID,
		City:        a.City,
		District:    a.District,
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
	}
}

// ContactPersonRequest is used for both create and partial update.
type ContactPersonRequest struct {
	EmployeeID             *string `json:"employee_uid"`
	FirstName              *string `json:"first_name"`
	LastName               *string `json:"last_name"`
	PhoneNumber            *string `json:"phone_number"`
	RelationshipToEmployee *string `json:"relationship_to_employee"`
}

// ContactPersonResponse renders a contact person.
type ContactPersonResponse struct {
	Audit
	EmployeeID             string `json:"employee_uid"`
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	PhoneNumber            string `json:"phone_number"`
	RelationshipToEmployee string `json:"relationship_to_employee"`
}

func NewContactPersonResponse(c *domain.ContactPerson) ContactPersonResponse {
	return ContactPersonResponse{
		Audit:                  auditOf(c.ID, c.Audit),
		EmployeeID:             c.EmployeeID,
		FirstName:              c.FirstName,
		LastName:               c.LastName,
		PhoneNumber:            c.PhoneNumber,
		RelationshipToEmployee: c.RelationshipToEmployee,
	}
}
