package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zaer/hr-service/internal/domain"
)

// ChildRepository persists employee children.
type ChildRepository interface {
	Create(ctx context.Context, child *domain.Child) error
	Update(ctx context.Context, child *domain.Child) error
	GetByID(ctx context.Context, id string) (*domain.Child, error)
	List(ctx context.Context) ([]domain.Child, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Child, error)
	Delete(ctx context.Context, id string) error
}

// AddressRepository persists employee addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	Update(ctx context.Context, address *domain.Address) error
	GetByID(ctx context.Context, id string) (*domain.Address, error)
	GetByEmployee(ctx context.Context, employeeID string) (*domain.Address, error)
	List(ctx context.Context) ([]domain.Address, error)
	Delete(ctx context.Context, id string) error
}

// ContactPersonRepository persists emergency contacts.
type ContactPersonRepository interface {
	Create(ctx context.Context, contact *domain.ContactPerson) error
	Update(ctx context.Context, contact *domain.ContactPerson) error
	GetByID(ctx context.Context, id string) (*domain.ContactPerson, error)
	GetByEmployee(ctx context.Context, employeeID string) (*domain.ContactPerson, error)
	List(ctx context.Context) ([]domain.ContactPerson, error)
	Delete(ctx context.Context, id string) error
}

type childRepository struct {
	pool *pgxpool.Pool
}

type addressRepository struct {
	pool *pgxpool.Pool
}

type contactPersonRepository struct {
	pool *pgxpool.Pool
}

// NewChildRepository builds a Postgres-backed child store.
func NewChildRepository(pool *pgxpool.Pool) ChildRepository {
	return &childRepository{pool: pool}
}

// NewAddressRepository builds a Postgres-backed address store.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

// NewContactPersonRepository builds a Postgres-backed contact person store.
func NewContactPersonRepository(pool *pgxpool.Pool) ContactPersonRepository {
	return &contactPersonRepository{pool: pool}
}

func execDelete(ctx context.Context, pool *pgxpool.Pool, query, id string) error {
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const childColumns = `uid, parent_uid, first_name, gender, birth_date, created_by, modified_by, date_created, date_modified`

func scanChild(row pgx.Row) (*domain.Child, error) {
	var child domain.Child
	if err := row.Scan(
		&child.ID,
		&child.ParentID,
		&child.FirstName,
		&child.Gender,
		&child.BirthDate,
		&child.CreatedBy,
		&child.ModifiedBy,
		&child.DateCreated,
		&child.DateModified,
	); err != nil {
		return nil, err
	}
	return &child, nil
}

func collectChildren(rows pgx.Rows) ([]domain.Child, error) {
	defer rows.Close()
	var result []domain.Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *child)
	}
	return result, rows.Err()
}

func (r *childRepository) Create(ctx context.Context, child *domain.Child) error {
	const query = `
        INSERT INTO child (parent_uid, first_name, gender, birth_date, created_by, modified_by)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING uid, date_created, date_modified`
	return r.pool.QueryRow(ctx, query,
		child.ParentID,
		child.FirstName,
		child.Gender,
		child.BirthDate,
		child.CreatedBy,
		child.ModifiedBy,
	).Scan(&child.ID, &child.DateCreated, &child.DateModified)
}

func (r *childRepository) Update(ctx context.Context, child *domain.Child) error {
	const query = `
        UPDATE child SET parent_uid=$1, first_name=$2, gender=$3, birth_date=$4, modified_by=$5, date_modified=NOW()
        WHERE uid=$6
        RETURNING date_modified`
	return r.pool.QueryRow(ctx, query,
		child.ParentID,
		child.FirstName,
		child.Gender,
		child.BirthDate,
		child.ModifiedBy,
		child.ID,
	).Scan(&child.DateModified)
}

func (r *childRepository) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	const query = `SELECT ` + childColumns + ` FROM child WHERE uid=$1`
	return scanChild(r.pool.QueryRow(ctx, query, id))
}

func (r *childRepository) List(ctx context.Context) ([]domain.Child, error) {
	const query = `SELECT ` + childColumns + ` FROM child ORDER BY date_created`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectChildren(rows)
}

func (r *childRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Child, error) {
	const query = `SELECT ` + childColumns + ` FROM child WHERE parent_uid=$1 ORDER BY birth_date`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return collectChildren(rows)
}

func (r *childRepository) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.pool, `DELETE FROM child WHERE uid=$1`, id)
}

const addressColumns = `uid, employee_uid, city, district, street, house_number, created_by, modified_by, date_created, date_modified`

func scanAddress(row pgx.Row) (*domain.Address, error) {
	var address domain.Address
	if err := row.Scan(
		&address.ID,
		&address.EmployeeID,
		&address.City,
		&address.District,
		&address.Street,
		&address.HouseNumber,
		&address.CreatedBy,
		&address.ModifiedBy,
		&address.DateCreated,
		&address.DateModified,
	); err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) error {
	const query = `
        INSERT INTO address (employee_uid, city, district, street, house_number, created_by, modified_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING uid, date_created, date_modified`
	return r.pool.QueryRow(ctx, query,
		address.EmployeeID,
		address.City,
		address.District,
		address.Street,
		address.HouseNumber,
		address.CreatedBy,
		address.ModifiedBy,
	).Scan(&address.ID, &address.DateCreated, &address.DateModified)
}

func (r *addressRepository) Update(ctx context.Context, address *domain.Address) error {
	const query = `
        UPDATE address SET employee_uid=$1, city=$2, district=$3, street=$4, house_number=$5,
            modified_by=$6, date_modified=NOW()
        WHERE uid=$7
        RETURNING date_modified`
	return r.pool.QueryRow(ctx, query,
		address.EmployeeID,
		address.City,
		address.District,
		address.Street,
		address.HouseNumber,
		address.ModifiedBy,
		address.ID,
	).Scan(&address.DateModified)
}

func (r *addressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM address WHERE uid=$1`
	return scanAddress(r.pool.QueryRow(ctx, query, id))
}

func (r *addressRepository) GetByEmployee(ctx context.Context, employeeID string) (*domain.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM address WHERE employee_uid=$1`
	return scanAddress(r.pool.QueryRow(ctx, query, employeeID))
}

func (r *addressRepository) List(ctx context.Context) ([]domain.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM address ORDER BY date_created`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *address)
	}
	return result, rows.Err()
}

func (r *addressRepository) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.pool, `DELETE FROM address WHERE uid=$1`, id)
}

const contactPersonColumns = `uid, employee_uid, first_name, last_name, phone_number, relationship_to_employee,
        created_by, modified_by, date_created, date_modified`

func scanContactPerson(row pgx.Row) (*domain.ContactPerson, error) {
	var contact domain.ContactPerson
	if err := row.Scan(
		&contact.ID,
		&contact.EmployeeID,
		&contact.FirstName,
		&contact.LastName,
		&contact.PhoneNumber,
		&contact.RelationshipToEmployee,
		&contact.CreatedBy,
		&contact.ModifiedBy,
		&contact.DateCreated,
		&contact.DateModified,
	); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactPersonRepository) Create(ctx context.Context, contact *domain.ContactPerson) error {
	const query = `
        INSERT INTO contact_person (employee_uid, first_name, last_name, phone_number, relationship_to_employee,
            created_by, modified_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING uid, date_created, date_modified`
	return r.pool.QueryRow(ctx, query,
		contact.EmployeeID,
		contact.FirstName,
		contact.LastName,
		contact.PhoneNumber,
		contact.RelationshipToEmployee,
		contact.CreatedBy,
		contact.ModifiedBy,
	).Scan(&contact.ID, &contact.DateCreated, &contact.DateModified)
}

func (r *contactPersonRepository) Update(ctx context.Context, contact *domain.ContactPerson) error {
	const query = `
        UPDATE contact_person SET employee_uid=$1, first_name=$2, last_name=$3, phone_number=$4,
            relationship_to_employee=$5, modified_by=$6, date_modified=NOW()
        WHERE uid=$7
        RETURNING date_modified`
	return r.pool.QueryRow(ctx, query,
		contact.EmployeeID,
		contact.FirstName,
		contact.LastName,
		contact.PhoneNumber,
		contact.RelationshipToEmployee,
		contact.ModifiedBy,
		contact.ID,
	).Scan(&contact.DateModified)
}

func (r *contactPersonRepository) GetByID(ctx context.Context, id string) (*domain.ContactPerson, error) {
	const query = `SELECT ` + contactPersonColumns + ` FROM contact_person WHERE uid=$1`
	return scanContactPerson(r.pool.QueryRow(ctx, query, id))
}

func (r *contactPersonRepository) GetByEmployee(ctx context.Context, employeeID string) (*domain.ContactPerson, error) {
	const query = `SELECT ` + contactPersonColumns + ` FROM contact_person WHERE employee_uid=$1`
	return scanContactPerson(r.pool.QueryRow(ctx, query, employeeID))
}

func (r *contactPersonRepository) List(ctx context.Context) ([]domain.ContactPerson, error) {
	const query = `SELECT ` + contactPersonColumns + ` FROM contact_person ORDER BY date_created`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactPerson
	for rows.Next() {
		contact, err := scanContactPerson(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *contact)
	}
	return result, rows.Err()
}

func (r *contactPersonRepository) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.pool, `DELETE FROM contact_person WHERE uid=$1`, id)
}
