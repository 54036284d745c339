package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/zaer/hr-service/internal/domain"
)

// EmployeeFilter narrows employee listings.
type EmployeeFilter struct {
	IsActive     *bool
	IsTerminated *bool
	SectionID    *string
	Search       *string
	Limit        int
	Offset       int
}

// EmployeeRepository encapsulates employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	Deactivate(ctx context.Context, id, actor string) error
	GetFullByID(ctx context.Context, id string) (*domain.EmployeeFull, error)
	GetFullByBadge(ctx context.Context, badge int64) (*domain.EmployeeFull, error)
	ListFull(ctx context.Context, filter EmployeeFilter) ([]domain.EmployeeFull, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository instantiates repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

const employeeColumns = `
        e.uid, e.badge_number, e.first_name, e.last_name, e.grandfather_name, e.gender,
        e.birth_date, e.birth_place, e.origin_of_birth, e.mother_first_name, e.mother_last_name,
        e.mother_grandfather_name, e.current_salary::text, e.current_hire_date, e.designation_uid,
        e.section_uid, e.nationality_uid, e.country_uid, e.educational_level_uid, e.marital_status,
        e.phone_number, e.national_id, e.contract_type, e.national_service,
        e.apprenticeship_from_date, e.apprenticeship_to_date, e.is_active, e.is_terminated,
        e.created_by, e.modified_by, e.date_created, e.date_modified`

const employeeFullJoins = `
        FROM employee e
        JOIN section s ON s.uid = e.section_uid
        JOIN unit u ON u.uid = s.unit_uid
        JOIN department d ON d.uid = u.department_uid
        JOIN division dv ON dv.uid = d.division_uid
        JOIN educational_level el ON el.uid = e.educational_level_uid
        JOIN designation ds ON ds.uid = e.designation_uid
        JOIN nationality n ON n.uid = e.nationality_uid
        JOIN country c ON c.uid = e.country_uid`

const employeeFullColumns = employeeColumns + `,
        dv.name, d.name, u.name, s.name, el.level, ds.title, n.name, c.name`

func employeeTargets(e *domain.Employee, salary *string) []any {
	return []any{
		&e.ID,
		&e.BadgeNumber,
		&e.FirstName,
		&e.LastName,
		&e.GrandfatherName,
		&e.Gender,
		&e.BirthDate,
		&e.BirthPlace,
		&e.OriginOfBirth,
		&e.MotherFirstName,
		&e.MotherLastName,
		&e.MotherGrandfatherName,
		salary,
		&e.CurrentHireDate,
		&e.DesignationID,
		&e.SectionID,
		&e.NationalityID,
		&e.CountryID,
		&e.EducationalLevelID,
		&e.MaritalStatus,
		&e.PhoneNumber,
		&e.NationalID,
		&e.ContractType,
		&e.NationalService,
		&e.ApprenticeshipFromDate,
		&e.ApprenticeshipToDate,
		&e.IsActive,
		&e.IsTerminated,
		&e.CreatedBy,
		&e.ModifiedBy,
		&e.DateCreated,
		&e.DateModified,
	}
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var (
		employee domain.Employee
		salary   string
	)
	if err := row.Scan(employeeTargets(&employee, &salary)...); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(salary)
	if err != nil {
		return nil, fmt.Errorf("parse salary: %w", err)
	}
	employee.CurrentSalary = parsed
	return &employee, nil
}

func scanEmployeeFull(row pgx.Row) (*domain.EmployeeFull, error) {
	var (
		full   domain.EmployeeFull
		salary string
	)
	targets := append(employeeTargets(&full.Employee, &salary),
		&full.Division,
		&full.Department,
		&full.Unit,
		&full.Section,
		&full.EducationalLevel,
		&full.Designation,
		&full.Nationality,
		&full.Country,
	)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(salary)
	if err != nil {
		return nil, fmt.Errorf("parse salary: %w", err)
	}
	full.CurrentSalary = parsed
	return &full, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	const query = `
        INSERT INTO employee (first_name, last_name, grandfather_name, gender, birth_date, birth_place,
            origin_of_birth, mother_first_name, mother_last_name, mother_grandfather_name, current_salary,
            current_hire_date, designation_uid, section_uid, nationality_uid, country_uid,
            educational_level_uid, marital_status, phone_number, national_id, contract_type,
            national_service, apprenticeship_from_date, apprenticeship_to_date, is_active,
            created_by, modified_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11::text::numeric,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)
        RETURNING uid, badge_number, is_terminated, date_created, date_modified`
	return r.pool.QueryRow(ctx, query,
		e.FirstName,
		e.LastName,
		e.GrandfatherName,
		e.Gender,
		e.BirthDate,
		e.BirthPlace,
		e.OriginOfBirth,
		e.MotherFirstName,
		e.MotherLastName,
		e.MotherGrandfatherName,
		e.CurrentSalary.String(),
		e.CurrentHireDate,
		e.DesignationID,
		e.SectionID,
		e.NationalityID,
		e.CountryID,
		e.EducationalLevelID,
		e.MaritalStatus,
		e.PhoneNumber,
		e.NationalID,
		e.ContractType,
		e.NationalService,
		e.ApprenticeshipFromDate,
		e.ApprenticeshipToDate,
		e.IsActive,
		e.CreatedBy,
		e.ModifiedBy,
	).Scan(&e.ID, &e.BadgeNumber, &e.IsTerminated, &e.DateCreated, &e.DateModified)
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	const query = `
        UPDATE employee SET first_name=$1, last_name=$2, grandfather_name=$3, gender=$4, birth_date=$5,
            birth_place=$6, origin_of_birth=$7, mother_first_name=$8, mother_last_name=$9,
            mother_grandfather_name=$10, current_salary=$11::text::numeric, current_hire_date=$12,
            designation_uid=$13, section_uid=$14, nationality_uid=$15, country_uid=$16,
            educational_level_uid=$17, marital_status=$18, phone_number=$19, national_id=$20,
            contract_type=$21, national_service=$22, apprenticeship_from_date=$23,
            apprenticeship_to_date=$24, is_active=$25, is_terminated=$26, modified_by=$27,
            date_modified=NOW()
        WHERE uid=$28
        RETURNING date_modified`
	return r.pool.QueryRow(ctx, query,
		e.FirstName,
		e.LastName,
		e.GrandfatherName,
		e.Gender,
		e.BirthDate,
		e.BirthPlace,
		e.OriginOfBirth,
		e.MotherFirstName,
		e.MotherLastName,
		e.MotherGrandfatherName,
		e.CurrentSalary.String(),
		e.CurrentHireDate,
		e.DesignationID,
		e.SectionID,
		e.NationalityID,
		e.CountryID,
		e.EducationalLevelID,
		e.MaritalStatus,
		e.PhoneNumber,
		e.NationalID,
		e.ContractType,
		e.NationalService,
		e.ApprenticeshipFromDate,
		e.ApprenticeshipToDate,
		e.IsActive,
		e.IsTerminated,
		e.ModifiedBy,
		e.ID,
	).Scan(&e.DateModified)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT` + employeeColumns + ` FROM employee e WHERE e.uid=$1`
	return scanEmployee(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) Deactivate(ctx context.Context, id, actor string) error {
	const query = `
        UPDATE employee SET is_active=FALSE, modified_by=$1, date_modified=NOW()
        WHERE uid=$2`
	cmd, err := r.pool.Exec(ctx, query, actor, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	where, args := employeeWhere(filter)
	query := `SELECT` + employeeColumns + ` FROM employee e` + where

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) GetFullByID(ctx context.Context, id string) (*domain.EmployeeFull, error) {
	query := `SELECT` + employeeFullColumns + employeeFullJoins + ` WHERE e.uid=$1`
	return scanEmployeeFull(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetFullByBadge(ctx context.Context, badge int64) (*domain.EmployeeFull, error) {
	query := `SELECT` + employeeFullColumns + employeeFullJoins + ` WHERE e.badge_number=$1`
	return scanEmployeeFull(r.pool.QueryRow(ctx, query, badge))
}

func (r *employeeRepository) ListFull(ctx context.Context, filter EmployeeFilter) ([]domain.EmployeeFull, error) {
	where, args := employeeWhere(filter)
	query := `SELECT` + employeeFullColumns + employeeFullJoins + where

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EmployeeFull
	for rows.Next() {
		full, err := scanEmployeeFull(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *full)
	}
	return result, rows.Err()
}

// employeeWhere renders the filter as a WHERE/ORDER/LIMIT tail over alias e.
// A zero Limit returns every matching row.
func employeeWhere(filter EmployeeFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	idx := 1

	if filter.IsActive != nil {
		clauses = append(clauses, fmt.Sprintf("e.is_active = $%d", idx))
		args = append(args, *filter.IsActive)
		idx++
	}
	if filter.IsTerminated != nil {
		clauses = append(clauses, fmt.Sprintf("e.is_terminated = $%d", idx))
		args = append(args, *filter.IsTerminated)
		idx++
	}
	if filter.SectionID != nil {
		clauses = append(clauses, fmt.Sprintf("e.section_uid = $%d", idx))
		args = append(args, *filter.SectionID)
		idx++
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		clauses = append(clauses, fmt.Sprintf("(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.grandfather_name ILIKE $%d)", idx, idx, idx))
		args = append(args, "%"+strings.TrimSpace(*filter.Search)+"%")
		idx++
	}

	tail := " WHERE " + strings.Join(clauses, " AND ") + " ORDER BY e.badge_number"
	if filter.Limit > 0 {
		tail += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, filter.Limit)
		idx++
	}
	if filter.Offset > 0 {
		tail += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, filter.Offset)
	}
	return tail, args
}
