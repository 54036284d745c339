package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zaer/hr-service/internal/domain"
)

// LookupRepository manages the flat reference tables (divisions, designations,
// current jobs, nationalities, countries, educational levels).
type LookupRepository interface {
	Create(ctx context.Context, item *domain.Lookup) error
	Update(ctx context.Context, item *domain.Lookup) error
	GetByID(ctx context.Context, kind domain.LookupKind, id string) (*domain.Lookup, error)
	List(ctx context.Context, kind domain.LookupKind) ([]domain.Lookup, error)
	Delete(ctx context.Context, kind domain.LookupKind, id string) error
}

type lookupRepository struct {
	pool *pgxpool.Pool
}

// NewLookupRepository builds the repository.
func NewLookupRepository(pool *pgxpool.Pool) LookupRepository {
	return &lookupRepository{pool: pool}
}

// Table and column names come from domain.LookupKind, never from user input.
func lookupColumns(kind domain.LookupKind) string {
	return fmt.Sprintf("uid, %s, created_by, modified_by, date_created, date_modified", kind.Field())
}

func scanLookup(row pgx.Row, kind domain.LookupKind) (*domain.Lookup, error) {
	item := domain.Lookup{Kind: kind}
	if err := row.Scan(
		&item.ID,
		&item.Label,
		&item.CreatedBy,
		&item.ModifiedBy,
		&item.DateCreated,
		&item.DateModified,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *lookupRepository) Create(ctx context.Context, item *domain.Lookup) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (%s, created_by, modified_by)
        VALUES ($1,$2,$3)
        RETURNING uid, date_created, date_modified`, item.Kind.Table(), item.Kind.Field())
	return r.pool.QueryRow(ctx, query,
		item.Label,
		item.CreatedBy,
		item.ModifiedBy,
	).Scan(&item.ID, &item.DateCreated, &item.DateModified)
}

func (r *lookupRepository) Update(ctx context.Context, item *domain.Lookup) error {
	query := fmt.Sprintf(`
        UPDATE %s SET %s=$1, modified_by=$2, date_modified=NOW()
        WHERE uid=$3
        RETURNING date_modified`, item.Kind.Table(), item.Kind.Field())
	return r.pool.QueryRow(ctx, query,
		item.Label,
		item.ModifiedBy,
		item.ID,
	).Scan(&item.DateModified)
}

func (r *lookupRepository) GetByID(ctx context.Context, kind domain.LookupKind, id string) (*domain.Lookup, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE uid=$1`, lookupColumns(kind), kind.Table())
	return scanLookup(r.pool.QueryRow(ctx, query, id), kind)
}

func (r *lookupRepository) List(ctx context.Context, kind domain.LookupKind) ([]domain.Lookup, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, lookupColumns(kind), kind.Table(), kind.Field())
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Lookup
	for rows.Next() {
		item, err := scanLookup(rows, kind)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	return result, rows.Err()
}

func (r *lookupRepository) Delete(ctx context.Context, kind domain.LookupKind, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE uid=$1`, kind.Table())
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
