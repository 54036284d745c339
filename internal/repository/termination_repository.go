package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zaer/hr-service/internal/domain"
)

// TerminationRepository persists terminations.
type TerminationRepository interface {
	// Create stores the termination and flags the employee as terminated atomically.
	Create(ctx context.Context, termination *domain.Termination) error
	Update(ctx context.Context, termination *domain.Termination) error
	GetByID(ctx context.Context, id string) (*domain.Termination, error)
	List(ctx context.Context) ([]domain.Termination, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Termination, error)
	// Delete removes the termination and clears the employee's terminated flag
	// once no termination is left, atomically.
	Delete(ctx context.Context, id, actor string) error
}

type terminationRepository struct {
	pool *pgxpool.Pool
}

// NewTerminationRepository instantiates repository.
func NewTerminationRepository(pool *pgxpool.Pool) TerminationRepository {
	return &terminationRepository{pool: pool}
}

const terminationColumns = `uid, employee_uid, hire_date, termination_date, created_by, modified_by, date_created, date_modified`

func scanTermination(row pgx.Row) (*domain.Termination, error) {
	var t domain.Termination
	if err := row.Scan(
		&t.ID,
		&t.EmployeeID,
		&t.HireDate,
		&t.TerminationDate,
		&t.CreatedBy,
		&t.ModifiedBy,
		&t.DateCreated,
		&t.DateModified,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *terminationRepository) Create(ctx context.Context, t *domain.Termination) error {
	const insert = `
        INSERT INTO termination (employee_uid, hire_date, termination_date, created_by, modified_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING uid, date_created, date_modified`
	const flag = `
        UPDATE employee SET is_terminated=TRUE, modified_by=$1, date_modified=NOW()
        WHERE uid=$2`

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insert,
			t.EmployeeID,
			t.HireDate,
			t.TerminationDate,
			t.CreatedBy,
			t.ModifiedBy,
		).Scan(&t.ID, &t.DateCreated, &t.DateModified); err != nil {
			return err
		}
		cmd, err := tx.Exec(ctx, flag, t.ModifiedBy, t.EmployeeID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func (r *terminationRepository) Update(ctx context.Context, t *domain.Termination) error {
	const query = `
        UPDATE termination SET hire_date=$1, termination_date=$2, modified_by=$3, date_modified=NOW()
        WHERE uid=$4
        RETURNING date_modified`
	return r.pool.QueryRow(ctx, query,
		t.HireDate,
		t.TerminationDate,
		t.ModifiedBy,
		t.ID,
	).Scan(&t.DateModified)
}

func (r *terminationRepository) GetByID(ctx context.Context, id string) (*domain.Termination, error) {
	const query = `SELECT ` + terminationColumns + ` FROM termination WHERE uid=$1`
	return scanTermination(r.pool.QueryRow(ctx, query, id))
}

func (r *terminationRepository) List(ctx context.Context) ([]domain.Termination, error) {
	const query = `SELECT ` + terminationColumns + ` FROM termination ORDER BY termination_date DESC`
	return r.list(ctx, query)
}

func (r *terminationRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Termination, error) {
	const query = `SELECT ` + terminationColumns + ` FROM termination WHERE employee_uid=$1 ORDER BY termination_date DESC`
	return r.list(ctx, query, employeeID)
}

func (r *terminationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Termination, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Termination
	for rows.Next() {
		t, err := scanTermination(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	return result, rows.Err()
}

func (r *terminationRepository) Delete(ctx context.Context, id, actor string) error {
	const remove = `DELETE FROM termination WHERE uid=$1 RETURNING employee_uid`
	const unflag = `
        UPDATE employee SET is_terminated=FALSE, modified_by=$1, date_modified=NOW()
        WHERE uid=$2 AND is_terminated
          AND NOT EXISTS (SELECT 1 FROM termination WHERE employee_uid=$2)`

	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var employeeID string
		if err := tx.QueryRow(ctx, remove, id).Scan(&employeeID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, unflag, actor, employeeID)
		return err
	})
}
