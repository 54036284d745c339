package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zaer/hr-service/internal/domain"
)

// OrgUnitRepository manages departments, units, sections and sub-sections.
type OrgUnitRepository interface {
	Create(ctx context.Context, unit *domain.OrgUnit) error
	Update(ctx context.Context, unit *domain.OrgUnit) error
	GetByID(ctx context.Context, level domain.OrgLevel, id string) (*domain.OrgUnit, error)
	List(ctx context.Context, level domain.OrgLevel, parentID *string) ([]domain.OrgUnit, error)
	Delete(ctx context.Context, level domain.OrgLevel, id string) error
}

type orgUnitRepository struct {
	pool *pgxpool.Pool
}

// NewOrgUnitRepository builds the repository.
func NewOrgUnitRepository(pool *pgxpool.Pool) OrgUnitRepository {
	return &orgUnitRepository{pool: pool}
}

func orgUnitColumns(level domain.OrgLevel) string {
	return fmt.Sprintf("uid, name, %s, created_by, modified_by, date_created, date_modified", level.ParentKey())
}

func scanOrgUnit(row pgx.Row, level domain.OrgLevel) (*domain.OrgUnit, error) {
	unit := domain.OrgUnit{Level: level}
	if err := row.Scan(
		&unit.ID,
		&unit.Name,
		&unit.ParentID,
		&unit.CreatedBy,
		&unit.ModifiedBy,
		&unit.DateCreated,
		&unit.DateModified,
	); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *orgUnitRepository) Create(ctx context.Context, unit *domain.OrgUnit) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (name, %s, created_by, modified_by)
        VALUES ($1,$2,$3,$4)
        RETURNING uid, date_created, date_modified`, unit.Level.Table(), unit.Level.ParentKey())
	return r.pool.QueryRow(ctx, query,
		unit.Name,
		unit.ParentID,
		unit.CreatedBy,
		unit.ModifiedBy,
	).Scan(&unit.ID, &unit.DateCreated, &unit.DateModified)
}

func (r *orgUnitRepository) Update(ctx context.Context, unit *domain.OrgUnit) error {
	query := fmt.Sprintf(`
        UPDATE %s SET name=$1, %s=$2, modified_by=$3, date_modified=NOW()
        WHERE uid=$4
        RETURNING date_modified`, unit.Level.Table(), unit.Level.ParentKey())
	return r.pool.QueryRow(ctx, query,
		unit.Name,
		unit.ParentID,
		unit.ModifiedBy,
		unit.ID,
	).Scan(&unit.DateModified)
}

func (r *orgUnitRepository) GetByID(ctx context.Context, level domain.OrgLevel, id string) (*domain.OrgUnit, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE uid=$1`, orgUnitColumns(level), level.Table())
	return scanOrgUnit(r.pool.QueryRow(ctx, query, id), level)
}

func (r *orgUnitRepository) List(ctx context.Context, level domain.OrgLevel, parentID *string) ([]domain.OrgUnit, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, orgUnitColumns(level), level.Table())
	args := []any{}
	if parentID != nil {
		args = append(args, *parentID)
		query += fmt.Sprintf(" WHERE %s=$1", level.ParentKey())
	}
	query += " ORDER BY name"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrgUnit
	for rows.Next() {
		unit, err := scanOrgUnit(rows, level)
		if err != nil {
			return nil, err
		}
		result = append(result, *unit)
	}
	return result, rows.Err()
}

func (r *orgUnitRepository) Delete(ctx context.Context, level domain.OrgLevel, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE uid=$1`, level.Table())
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
