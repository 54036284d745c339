package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zaer/hr-service/internal/cache"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/events"
	"github.com/zaer/hr-service/internal/repository"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

const (
	employeeResource = "employee"
	nameMaxLen       = 200
	placeMaxLen      = 100

	// InactiveEmployeeMessage is returned when a write targets a deactivated employee.
	InactiveEmployeeMessage = "can not update inactive employee."
)

// EmployeeInput carries the fields of a new employee.
type EmployeeInput struct {
	FirstName              string
	LastName               string
	GrandfatherName        string
	Gender                 domain.Gender
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
	MaritalStatus          domain.MaritalStatus
	PhoneNumber            *string
	NationalID             *string
	ContractType           domain.ContractType
	NationalService        domain.NationalService
	ApprenticeshipFromDate time.Time
	ApprenticeshipToDate   time.Time
}

// EmployeePatch lists the fields a partial update may change. Nil fields are left as is.
type EmployeePatch struct {
	FirstName              *string
	LastName               *string
	GrandfatherName        *string
	Gender                 *domain.Gender
	BirthDate              *time.Time
	BirthPlace             *string
	OriginOfBirth          *string
	MotherFirstName        *string
	MotherLastName         *string
	MotherGrandfatherName  *string
	CurrentSalary          *decimal.Decimal
	CurrentHireDate        *time.Time
	DesignationID          *string
	SectionID              *string
	NationalityID          *string
	CountryID              *string
	EducationalLevelID     *string
	MaritalStatus          *domain.MaritalStatus
	PhoneNumber            *string
	NationalID             *string
	ContractType           *domain.ContractType
	NationalService        *domain.NationalService
	ApprenticeshipFromDate *time.Time
	ApprenticeshipToDate   *time.Time
	IsActive               *bool
	IsTerminated           *bool
}

// onlyReactivates reports whether the patch does nothing but set is_active.
func (p EmployeePatch) onlyReactivates() bool {
	if p.IsActive == nil || !*p.IsActive {
		return false
	}
	rest := p
	rest.IsActive = nil
	return len(rest.changedFields()) == 0
}

func (p EmployeePatch) changedFields() []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(p.FirstName != nil, "first_name")
	add(p.LastName != nil, "last_name")
	add(p.GrandfatherName != nil, "grandfather_name")
	add(p.Gender != nil, "gender")
	add(p.BirthDate != nil, "birth_date")
	add(p.BirthPlace != nil, "birth_place")
	add(p.OriginOfBirth != nil, "origin_of_birth")
	add(p.MotherFirstName != nil, "mother_first_name")
	add(p.MotherLastName != nil, "mother_last_name")
	add(p.MotherGrandfatherName != nil, "mother_grandfather_name")
	add(p.CurrentSalary != nil, "current_salary")
	add(p.CurrentHireDate != nil, "current_hire_date")
	add(p.DesignationID != nil, "designation_uid")
	add(p.SectionID != nil, "section_uid")
	add(p.NationalityID != nil, "nationality_uid")
	add(p.CountryID != nil, "country_uid")
	add(p.EducationalLevelID != nil, "educational_level_uid")
	add(p.MaritalStatus != nil, "marital_status")
	add(p.PhoneNumber != nil, "phone_number")
	add(p.NationalID != nil, "national_id")
	add(p.ContractType != nil, "contract_type")
	add(p.NationalService != nil, "national_service")
	add(p.ApprenticeshipFromDate != nil, "apprenticeship_from_date")
	add(p.ApprenticeshipToDate != nil, "apprenticeship_to_date")
	add(p.IsActive != nil, "is_active")
	add(p.IsTerminated != nil, "is_terminated")
	return fields
}

// EmployeeService manages employee records.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	cache      cache.Cache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// EmployeeDependencies encapsulates what the employee service needs.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Cache        cache.Cache
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	c := deps.Cache
	if c == nil {
		c = cache.Noop{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{
		employees:  deps.EmployeeRepo,
		cache:      c,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

func validateEmployee(e *domain.Employee) error {
	fields := fieldErrors{}
	fields.text("first_name", e.FirstName, nameMaxLen)
	fields.text("last_name", e.LastName, nameMaxLen)
	fields.text("grandfather_name", e.GrandfatherName, nameMaxLen)
	fields.check(e.Gender.Valid(), "gender", "must be one of m, f, o")
	fields.date("birth_date", e.BirthDate)
	fields.text("birth_place", e.BirthPlace, placeMaxLen)
	fields.text("origin_of_birth", e.OriginOfBirth, placeMaxLen)
	fields.text("mother_first_name", e.MotherFirstName, placeMaxLen)
	fields.text("mother_last_name", e.MotherLastName, placeMaxLen)
	fields.text("mother_grandfather_name", e.MotherGrandfatherName, placeMaxLen)
	fields.check(!e.CurrentSalary.IsNegative(), "current_salary", "must not be negative")
	fields.date("current_hire_date", e.CurrentHireDate)
	fields.id("designation_uid", e.DesignationID)
	fields.id("section_uid", e.SectionID)
	fields.id("nationality_uid", e.NationalityID)
	fields.id("country_uid", e.CountryID)
	fields.id("educational_level_uid", e.EducationalLevelID)
	fields.check(e.MaritalStatus.Valid(), "marital_status", "must be one of single, married, divorced, widowed")
	if e.PhoneNumber != nil {
		fields.digits("phone_number", *e.PhoneNumber)
	}
	fields.optionalText("national_id", e.NationalID, placeMaxLen)
	fields.check(e.ContractType.Valid(), "contract_type", "must be one of full time, part time")
	fields.check(e.NationalService.Valid(), "national_service", "must be one of released, exempted, serving, not completed")
	fields.date("apprenticeship_from_date", e.ApprenticeshipFromDate)
	fields.date("apprenticeship_to_date", e.ApprenticeshipToDate)
	fields.check(!e.ApprenticeshipToDate.Before(e.ApprenticeshipFromDate), "apprenticeship_to_date", "must not precede apprenticeship_from_date")
	return fields.err()
}

func employeePayload(e *domain.Employee, changed []string) events.EmployeePayload {
	return events.EmployeePayload{
		BadgeNumber: e.BadgeNumber,
		FullName:    e.FullName(),
		SectionID:   e.SectionID,
		Changed:     changed,
	}
}

// Create stores a new active employee. The badge number is assigned by the database.
func (s *EmployeeService) Create(ctx context.Context, actor string, in EmployeeInput) (*domain.Employee, error) {
	e := &domain.Employee{
		FirstName:              normalize(in.FirstName),
		LastName:               normalize(in.LastName),
		GrandfatherName:        normalize(in.GrandfatherName),
		Gender:                 domain.Gender(normalize(string(in.Gender))),
		BirthDate:              in.BirthDate,
		BirthPlace:             normalize(in.BirthPlace),
		OriginOfBirth:          normalize(in.OriginOfBirth),
		MotherFirstName:        normalize(in.MotherFirstName),
		MotherLastName:         normalize(in.MotherLastName),
		MotherGrandfatherName:  normalize(in.MotherGrandfatherName),
		CurrentSalary:          in.CurrentSalary,
		CurrentHireDate:        in.CurrentHireDate,
		DesignationID:          in.DesignationID,
		SectionID:              in.SectionID,
		NationalityID:          in.NationalityID,
		CountryID:              in.CountryID,
		EducationalLevelID:     in.EducationalLevelID,
		MaritalStatus:          domain.MaritalStatus(normalize(string(in.MaritalStatus))),
		PhoneNumber:            normalizePtr(in.PhoneNumber),
		NationalID:             normalizePtr(in.NationalID),
		ContractType:           domain.ContractType(normalize(string(in.ContractType))),
		NationalService:        domain.NationalService(normalize(string(in.NationalService))),
		ApprenticeshipFromDate: in.ApprenticeshipFromDate,
		ApprenticeshipToDate:   in.ApprenticeshipToDate,
		IsActive:               true,
	}
	if e.MaritalStatus == "" {
		e.MaritalStatus = domain.MaritalSingle
	}
	if e.ContractType == "" {
		e.ContractType = domain.ContractFullTime
	}
	if e.NationalService == "" {
		e.NationalService = domain.NationalServiceReleased
	}
	if err := validateEmployee(e); err != nil {
		return nil, err
	}
	e.Stamp(actor)

	if err := s.employees.Create(ctx, e); err != nil {
		return nil, apperrors.MapError(err)
	}
	publishEvent(ctx, s.dispatcher, s.logger,
		events.NewEvent(events.EventEmployeeCreated, e.ID, actor, employeePayload(e, nil)))
	return e, nil
}

// Get fetches an employee.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	if err := validateID("uid", id); err != nil {
		return nil, err
	}
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, employeeResource)
	}
	return e, nil
}

// List returns employees matching the filter.
func (s *EmployeeService) List(ctx context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

// Update applies a partial update. Inactive employees may only be reactivated.
func (s *EmployeeService) Update(ctx context.Context, actor, id string, patch EmployeePatch) (*domain.Employee, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.IsActive && !patch.onlyReactivates() {
		return nil, apperrors.NewBadRequest(InactiveEmployeeMessage)
	}

	applyEmployeePatch(e, patch)
	if err := validateEmployee(e); err != nil {
		return nil, err
	}
	e.ModifiedBy = actor

	if err := s.employees.Update(ctx, e); err != nil {
		return nil, apperrors.MapNotFound(err, employeeResource)
	}
	publishEvent(ctx, s.dispatcher, s.logger,
		events.NewEvent(events.EventEmployeeUpdated, e.ID, actor, employeePayload(e, patch.changedFields())))
	return e, nil
}

func applyEmployeePatch(e *domain.Employee, p EmployeePatch) {
	setText := func(dst *string, src *string) {
		if src != nil {
			*dst = normalize(*src)
		}
	}
	setDate := func(dst *time.Time, src *time.Time) {
		if src != nil {
			*dst = *src
		}
	}
	setID := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setText(&e.FirstName, p.FirstName)
	setText(&e.LastName, p.LastName)
	setText(&e.GrandfatherName, p.GrandfatherName)
	if p.Gender != nil {
		e.Gender = domain.Gender(normalize(string(*p.Gender)))
	}
	setDate(&e.BirthDate, p.BirthDate)
	setText(&e.BirthPlace, p.BirthPlace)
	setText(&e.OriginOfBirth, p.OriginOfBirth)
	setText(&e.MotherFirstName, p.MotherFirstName)
	setText(&e.MotherLastName, p.MotherLastName)
	setText(&e.MotherGrandfatherName, p.MotherGrandfatherName)
	if p.CurrentSalary != nil {
		e.CurrentSalary = *p.CurrentSalary
	}
	setDate(&e.CurrentHireDate, p.CurrentHireDate)
	setID(&e.DesignationID, p.DesignationID)
	setID(&e.SectionID, p.SectionID)
	setID(&e.NationalityID, p.NationalityID)
	setID(&e.CountryID, p.CountryID)
	setID(&e.EducationalLevelID, p.EducationalLevelID)
	if p.MaritalStatus != nil {
		e.MaritalStatus = domain.MaritalStatus(normalize(string(*p.MaritalStatus)))
	}
	if p.PhoneNumber != nil {
		e.PhoneNumber = normalizePtr(p.PhoneNumber)
	}
	if p.NationalID != nil {
		e.NationalID = normalizePtr(p.NationalID)
	}
	if p.ContractType != nil {
		e.ContractType = domain.ContractType(normalize(string(*p.ContractType)))
	}
	if p.NationalService != nil {
		e.NationalService = domain.NationalService(normalize(string(*p.NationalService)))
	}
	setDate(&e.ApprenticeshipFromDate, p.ApprenticeshipFromDate)
	setDate(&e.ApprenticeshipToDate, p.ApprenticeshipToDate)
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	if p.IsTerminated != nil {
		e.IsTerminated = *p.IsTerminated
	}
}

// Deactivate marks the employee inactive. Records are never removed.
func (s *EmployeeService) Deactivate(ctx context.Context, actor, id string) error {
	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.employees.Deactivate(ctx, e.ID, actor); err != nil {
		return apperrors.MapNotFound(err, employeeResource)
	}
	e.IsActive = false
	publishEvent(ctx, s.dispatcher, s.logger,
		events.NewEvent(events.EventEmployeeDeactivated, e.ID, actor, employeePayload(e, []string{"is_active"})))
	return nil
}

// GetFull returns the employee joined with the labels of its references.
func (s *EmployeeService) GetFull(ctx context.Context, id string) (*domain.EmployeeFull, error) {
	if err := validateID("uid", id); err != nil {
		return nil, err
	}
	key := cache.EmployeeFullKey(id)
	var cached domain.EmployeeFull
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.logger.Warn("employee cache read failed", zap.String("employee_id", id), zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	full, err := s.employees.GetFullByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, employeeResource)
	}
	if err := s.cache.Set(ctx, key, full); err != nil {
		s.logger.Warn("employee cache write failed", zap.String("employee_id", id), zap.Error(err))
	}
	return full, nil
}

// GetFullByBadge looks an employee up by badge number.
func (s *EmployeeService) GetFullByBadge(ctx context.Context, badge int64) (*domain.EmployeeFull, error) {
	full, err := s.employees.GetFullByBadge(ctx, badge)
	if err != nil {
		return nil, apperrors.MapNotFound(err, employeeResource)
	}
	return full, nil
}

// ListFull returns the joined projection of every employee matching the filter.
func (s *EmployeeService) ListFull(ctx context.Context, filter repository.EmployeeFilter) ([]domain.EmployeeFull, error) {
	employees, err := s.employees.ListFull(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if employees == nil {
		employees = []domain.EmployeeFull{}
	}
	return employees, nil
}
