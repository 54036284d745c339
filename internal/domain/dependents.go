package domain

import "time"

// Child is a dependent child of an employee.
type Child struct {
	ID        string
	ParentID  string
	FirstName string
	Gender    Gender
	BirthDate time.Time
	Audit
}

// Address is the home address of an employee; one per employee.
type Address struct {
	ID          string
	EmployeeID  string
	City        string
	District    string
	Street      string
	HouseNumber int
	Audit
}

// ContactPerson is the emergency contact of an employee; one per employee.
type ContactPerson struct {
	ID                     string
	EmployeeID             string
	FirstName              string
	LastName               string
	PhoneNumber            string
	RelationshipToEmployee string
	Audit
}
