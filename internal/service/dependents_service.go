package service

import (
	"context"
	"time"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

const (
	childResource         = "child"
	addressResource       = "address"
	contactPersonResource = "contact person"
)

// ChildPatch lists the fields a partial child update may change.
type ChildPatch struct {
	ParentID  *string
	FirstName *string
	Gender    *domain.Gender
	BirthDate *time.Time
}

// AddressPatch lists the fields a partial address update may change.
type AddressPatch struct {
	EmployeeID  *string
	City        *string
	District    *string
	Street      *string
	HouseNumber *int
}

// ContactPersonPatch lists the fields a partial contact update may change.
type ContactPersonPatch struct {
	EmployeeID             *string
	FirstName              *string
	LastName               *string
	PhoneNumber            *string
	RelationshipToEmployee *string
}

// DependentsService manages children, addresses and contact persons of employees.
type DependentsService struct {
	children repository.ChildRepository
	address  repository.AddressRepository
	contacts repository.ContactPersonRepository
}

// DependentsDependencies encapsulates repositories required by the service.
type DependentsDependencies struct {
	ChildRepo         repository.ChildRepository
	AddressRepo       repository.AddressRepository
	ContactPersonRepo repository.ContactPersonRepository
}

// NewDependentsService constructs the service.
func NewDependentsService(deps DependentsDependencies) *DependentsService {
	return &DependentsService{
		children: deps.ChildRepo,
		address:  deps.AddressRepo,
		contacts: deps.ContactPersonRepo,
	}
}

func validateChild(c *domain.Child) error {
	fields := fieldErrors{}
	fields.id("parent_uid", c.ParentID)
	fields.text("first_name", c.FirstName, placeMaxLen)
	fields.check(c.Gender.Valid(), "gender", "must be one of m, f, o")
	fields.date("birth_date", c.BirthDate)
	return fields.err()
}

// CreateChild stores a child of an employee.
func (s *DependentsService) CreateChild(ctx context.Context, actor string, child domain.Child) (*domain.Child, error) {
	child.FirstName = normalize(child.FirstName)
	child.Gender = domain.Gender(normalize(string(child.Gender)))
	if err := validateChild(&child); err != nil {
		return nil, err
	}
	child.Stamp(actor)
	if err := s.children.Create(ctx, &child); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &child, nil
}

// GetChild fetches a child.
func (s *DependentsService) GetChild(ctx context.Context, id string) (*domain.Child, error) {
	if err := validateID("uid", id); err != nil {
		return nil, err
	}
	child, err := s.children.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, childResource)
	}
	return child, nil
}

// ListChildren returns every child record.
func (s *DependentsService) ListChildren(ctx context.Context) ([]domain.Child, error) {
	children, err := s.children.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if children == nil {
		children = []domain.Child{}
	}
	return children, nil
}

// ListChildrenByEmployee returns the children of one employee.
func (s *DependentsService) ListChildrenByEmployee(ctx context.Context, employeeID string) ([]domain.Child, error) {
	if err := validateID("uid", employeeID); err != nil {
		return nil, err
	}
	children, err := s.children.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if children == nil {
		children = []domain.Child{}
	}
	return children, nil
}

// UpdateChild applies a partial update.
func (s *DependentsService) UpdateChild(ctx context.Context, actor, id string, patch ChildPatch) (*domain.Child, error) {
	child, err := s.GetChild(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.ParentID != nil {
		child.ParentID = *patch.ParentID
	}
	if patch.FirstName != nil {
		child.FirstName = normalize(*patch.FirstName)
	}
	if patch.Gender != nil {
		child.Gender = domain.Gender(normalize(string(*patch.Gender)))
	}
	if patch.BirthDate != nil {
		child.BirthDate = *patch.BirthDate
	}
	if err := validateChild(child); err != nil {
		return nil, err
	}
	child.ModifiedBy = actor
	if err := s.children.Update(ctx, child); err != nil {
		return nil, apperrors.MapNotFound(err, childResource)
	}
	return child, nil
}

// DeleteChild removes a child.
func (s *DependentsService) DeleteChild(ctx context.Context, id string) error {
	if err := validateID("uid", id); err != nil {
		return err
	}
	return apperrors.MapNotFound(s.children.Delete(ctx, id), childResource)
}

func validateAddress(a *domain.Address) error {
	fields := fieldErrors{}
	fields.id("employee_uid", a.EmployeeID)
	fields.text("city", a.City, placeMaxLen)
	fields.text("district", a.District, placeMaxLen)
	fields.text("street", a.Street, placeMaxLen)
	fields.check(a.HouseNumber > 0, "house_number", "must be positive")
	return fields.err()
}

// CreateAddress stores the address of an employee.
func (s *DependentsService) CreateAddress(ctx context.Context, actor string, address domain.Address) (*domain.Address, error) {
	address.City = normalize(address.City)
	address.District = normalize(address.District)
	address.Street = normalize(address.Street)
	if err := validateAddress(&address); err != nil {
		return nil, err
	}
	address.Stamp(actor)
	if err := s.address.Create(ctx, &address); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &address, nil
}

// GetAddress fetches an address.
func (s *DependentsService) GetAddress(ctx context.Context, id string) (*domain.Address, error) {
	if err := validateID("uid", id); err != nil {
		return nil, err
	}
	address, err := s.address.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, addressResource)
	}
	return address, nil
}

// GetAddressByEmployee fetches the address of an employee.
func (s *DependentsService) GetAddressByEmployee(ctx context.Context, employeeID string) (*domain.Address, error) {
	if err := validateID("uid", employeeID); err != nil {
		return nil, err
	}
	address, err := s.address.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapNotFound(err, addressResource)
	}
	return address, nil
}

// ListAddresses returns every address.
func (s *DependentsService) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	addresses, err := s.address.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if addresses == nil {
		addresses = []domain.Address{}
	}
	return addresses, nil
}

// UpdateAddress applies a partial update.
func (s *DependentsService) UpdateAddress(ctx context.Context, actor, id string, patch AddressPatch) (*domain.Address, error) {
	address, err := s.GetAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.EmployeeID != nil {
		address.EmployeeID = *patch.EmployeeID
	}
	if patch.City != nil {
		address.City = normalize(*patch.City)
	}
	if patch.District != nil {
		address.District = normalize(*patch.District)
	}
	if patch.Street != nil {
		address.Street = normalize(*patch.Street)
	}
	if patch.HouseNumber != nil {
		address.HouseNumber = *patch.HouseNumber
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	address.ModifiedBy = actor
	if err := s.address.Update(ctx, address); err != nil {
		return nil, apperrors.MapNotFound(err, addressResource)
	}
	return address, nil
}

// DeleteAddress removes an address.
func (s *DependentsService) DeleteAddress(ctx context.Context, id string) error {
	if err := validateID("uid", id); err != nil {
		return err
	}
	return apperrors.MapNotFound(s.address.Delete(ctx, id), addressResource)
}

func validateContactPerson(c *domain.ContactPerson) error {
	fields := fieldErrors{}
	fields.id("employee_uid", c.EmployeeID)
	fields.text("first_name", c.FirstName, placeMaxLen)
	fields.text("last_name", c.LastName, placeMaxLen)
	fields.digits("phone_number", c.PhoneNumber)
	fields.text("relationship_to_employee", c.RelationshipToEmployee, placeMaxLen)
	return fields.err()
}

// CreateContactPerson stores the emergency contact of an employee.
func (s *DependentsService) CreateContactPerson(ctx context.Context, actor string, contact domain.ContactPerson) (*domain.ContactPerson, error) {
	contact.FirstName = normalize(contact.FirstName)
	contact.LastName = normalize(contact.LastName)
	contact.PhoneNumber = normalize(contact.PhoneNumber)
	contact.RelationshipToEmployee = normalize(contact.RelationshipToEmployee)
	if err := validateContactPerson(&contact); err != nil {
		return nil, err
	}
	contact.Stamp(actor)
	if err := s.contacts.Create(ctx, &contact); err != nil {
		return nil, apperrors.MapError(err)
	}
	return &contact, nil
}

// GetContactPerson fetches a contact person.
func (s *DependentsService) GetContactPerson(ctx context.Context, id string) (*domain.ContactPerson, error) {
	if err := validateID("uid", id); err != nil {
		return nil, err
	}
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, contactPersonResource)
	}
	return contact, nil
}

// GetContactPersonByEmployee fetches the contact person of an employee.
func (s *DependentsService) GetContactPersonByEmployee(ctx context.Context, employeeID string) (*domain.ContactPerson, error) {
	if err := validateID("uid", employeeID); err != nil {
		return nil, err
	}
	contact, err := s.contacts.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapNotFound(err, contactPersonResource)
	}
	return contact, nil
}

// ListContactPersons returns every contact person.
func (s *DependentsService) ListContactPersons(ctx context.Context) ([]domain.ContactPerson, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if contacts == nil {
		contacts = []domain.ContactPerson{}
	}
	return contacts, nil
}

// UpdateContactPerson applies a partial update.
func (s *DependentsService) UpdateContactPerson(ctx context.Context, actor, id string, patch ContactPersonPatch) (*domain.ContactPerson, error) {
	contact, err := s.GetContactPerson(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.EmployeeID != nil {
		contact.EmployeeID = *patch.EmployeeID
	}
	if patch.FirstName != nil {
		contact.FirstName = normalize(*patch.FirstName)
	}
	if patch.LastName != nil {
		contact.LastName = normalize(*patch.LastName)
	}
	if patch.PhoneNumber != nil {
		contact.PhoneNumber = normalize(*patch.PhoneNumber)
	}
	if patch.RelationshipToEmployee != nil {
		contact.RelationshipToEmployee = normalize(*patch.RelationshipToEmployee)
	}
	if err := validateContactPerson(contact); err != nil {
		return nil, err
	}
	contact.ModifiedBy = actor
	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, apperrors.MapNotFound(err, contactPersonResource)
	}
	return contact, nil
}

// DeleteContactPerson removes a contact person.
func (s *DependentsService) DeleteContactPerson(ctx context.Context, id string) error {
	if err := validateID("uid", id); err != nil {
		return err
	}
	return apperrors.MapNotFound(s.contacts.Delete(ctx, id), contactPersonResource)
}
