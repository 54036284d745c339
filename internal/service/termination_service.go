package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/events"
	"github.com/zaer/hr-service/internal/report"
	"github.com/zaer/hr-service/internal/repository"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

const (
	terminationResource = "termination"

	// ActiveEmployeeMessage is returned when terminating an employee that is still active.
	ActiveEmployeeMessage = "can not terminate active employee."
)

// TerminationPatch lists the fields a partial update may change.
type TerminationPatch struct {
	HireDate        *time.Time
	TerminationDate *time.Time
}

// TerminationService records the end of employment and computes severance pay.
type TerminationService struct {
	terminations repository.TerminationRepository
	employees    repository.EmployeeRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// TerminationDependencies encapsulates what the termination service needs.
type TerminationDependencies struct {
	TerminationRepo repository.TerminationRepository
	EmployeeRepo    repository.EmployeeRepository
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// NewTerminationService constructs the service.
func NewTerminationService(deps TerminationDependencies) *TerminationService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TerminationService{
		terminations: deps.TerminationRepo,
		employees:    deps.EmployeeRepo,
		dispatcher:   deps.Dispatcher,
		logger:       logger,
	}
}

func validateTermination(t *domain.Termination) error {
	fields := fieldErrors{}
	fields.date("hire_date", t.HireDate)
	fields.date("termination_date", t.TerminationDate)
	fields.check(!t.TerminationDate.Before(t.HireDate), "termination_date", "must not precede hire_date")
	return fields.err()
}

// Create terminates an inactive employee as of terminationDate. The hire date is
// taken from the employee's current hire date.
func (s *TerminationService) Create(ctx context.Context, actor, employeeID string, terminationDate time.Time) (*domain.Termination, error) {
	if err := validateID("employee_uid", employeeID); err != nil {
		return nil, err
	}
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapNotFound(err, employeeResource)
	}
	if employee.IsActive {
		return nil, apperrors.NewBadRequest(ActiveEmployeeMessage)
	}

	t := &domain.Termination{
		EmployeeID:      employee.ID,
		HireDate:        employee.CurrentHireDate,
		TerminationDate: terminationDate,
	}
	if err := validateTermination(t); err != nil {
		return nil, err
	}
	t.Stamp(actor)
	if err := s.terminations.Create(ctx, t); err != nil {
		return nil, apperrors.MapNotFound(err, employeeResource)
	}

	publishEvent(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventTerminationCreated, employee.ID, actor, events.TerminationPayload{
		TerminationID:   t.ID,
		HireDate:        t.HireDate.Format(time.DateOnly),
		TerminationDate: t.TerminationDate.Format(time.DateOnly),
	}))
	return t, nil
}

// Get fetches a termination.
func (s *TerminationService) Get(ctx context.Context, id string) (*domain.Termination, error) {
	if err := validateID("uid", id); err != nil {
		return nil, err
	}
	t, err := s.terminations.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapNotFound(err, terminationResource)
	}
	return t, nil
}

// List returns every termination.
func (s *TerminationService) List(ctx context.Context) ([]domain.Termination, error) {
	terminations, err := s.terminations.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if terminations == nil {
		terminations = []domain.Termination{}
	}
	return terminations, nil
}

// ListByEmployee returns the terminations of one employee.
func (s *TerminationService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Termination, error) {
	if err := validateID("uid", employeeID); err != nil {
		return nil, err
	}
	terminations, err := s.terminations.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if terminations == nil {
		terminations = []domain.Termination{}
	}
	return terminations, nil
}

// Update applies a partial update.
func (s *TerminationService) Update(ctx context.Context, actor, id string, patch TerminationPatch) (*domain.Termination, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.HireDate != nil {
		t.HireDate = *patch.HireDate
	}
	if patch.TerminationDate != nil {
		t.TerminationDate = *patch.TerminationDate
	}
	if err := validateTermination(t); err != nil {
		return nil, err
	}
	t.ModifiedBy = actor
	if err := s.terminations.Update(ctx, t); err != nil {
		return nil, apperrors.MapNotFound(err, terminationResource)
	}
	return t, nil
}

// Delete removes a termination. The employee stops being flagged as
// terminated once its last termination is gone.
func (s *TerminationService) Delete(ctx context.Context, actor, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.terminations.Delete(ctx, t.ID, actor); err != nil {
		return apperrors.MapNotFound(err, terminationResource)
	}
	publishEvent(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventTerminationDeleted, t.EmployeeID, actor, events.TerminationPayload{
		TerminationID:   t.ID,
		HireDate:        t.HireDate.Format(time.DateOnly),
		TerminationDate: t.TerminationDate.Format(time.DateOnly),
	}))
	return nil
}

// SeverancePay builds the severance report of a termination from the
// employee's current salary and department.
func (s *TerminationService) SeverancePay(ctx context.Context, id string, includeEndDate bool) (*report.SeverancePayReport, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	employee, err := s.employees.GetFullByID(ctx, t.EmployeeID)
	if err != nil {
		return nil, apperrors.MapNotFound(err, employeeResource)
	}
	return report.NewSeverancePayReport(report.SeveranceEmployee{
		FirstName:       employee.FirstName,
		LastName:        employee.LastName,
		GrandfatherName: employee.GrandfatherName,
		BadgeNumber:     employee.BadgeNumber,
		Department:      employee.Department,
		CurrentSalary:   employee.CurrentSalary,
		CurrentHireDate: t.HireDate,
		TerminationDate: t.TerminationDate,
	}, includeEndDate), nil
}
