package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	id "docflow/pkg/domain"
	"docflow/pkg/platform/sentinel"
)

// PostgresStore persists directory records in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE offices (
//	    id   UUID PRIMARY KEY,
//	    name TEXT NOT NULL
//	);
//	CREATE TABLE employees (
//	    id         UUID PRIMARY KEY,
//	    name       TEXT NOT NULL,
//	    name_key   TEXT NOT NULL UNIQUE,
//	    position   TEXT NOT NULL,
//	    department TEXT NOT NULL DEFAULT '',
//	    office_id  UUID REFERENCES offices(id)
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) SaveEmployee(ctx context.Context, employee Employee) error {
	query := `
		INSERT INTO employees (id, name, name_key, position, department, office_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			name_key = EXCLUDED.name_key,
			position = EXCLUDED.position,
			department = EXCLUDED.department,
			office_id = EXCLUDED.office_id
	`
	var officeID *uuid.UUID
	if !employee.OfficeID.IsNil() {
		u := uuid.UUID(employee.OfficeID)
		officeID = &u
	}
	_, err := s.pool.Exec(ctx, query,
		uuid.UUID(employee.ID), employee.Name, nameKey(employee.Name),
		employee.Position, employee.Department, officeID,
	)
	if err != nil {
		return fmt.Errorf("save employee: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindEmployeeByID(ctx context.Context, empID id.EmployeeID) (Employee, error) {
	query := `
		SELECT id, name, position, department, office_id
		FROM employees WHERE id = $1
	`
	return s.scanEmployee(s.pool.QueryRow(ctx, query, uuid.UUID(empID)))
}

func (s *PostgresStore) FindEmployeeByName(ctx context.Context, name string) (Employee, error) {
	query := `
		SELECT id, name, position, department, office_id
		FROM employees WHERE name_key = $1
	`
	return s.scanEmployee(s.pool.QueryRow(ctx, query, nameKey(name)))
}

func (s *PostgresStore) scanEmployee(row pgx.Row) (Employee, error) {
	var (
		employee Employee
		empID    uuid.UUID
		officeID *uuid.UUID
	)
	err := row.Scan(&empID, &employee.Name, &employee.Position, &employee.Department, &officeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, sentinel.ErrNotFound
		}
		return Employee{}, fmt.Errorf("scan employee: %w", err)
	}
	employee.ID = id.EmployeeID(empID)
	if officeID != nil {
		employee.OfficeID = id.OfficeID(*officeID)
	}
	return employee, nil
}

func (s *PostgresStore) SaveOffice(ctx context.Context, office Office) error {
	query := `
		INSERT INTO offices (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`
	if _, err := s.pool.Exec(ctx, query, uuid.UUID(office.ID), office.Name); err != nil {
		return fmt.Errorf("save office: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindOffice(ctx context.Context, officeID id.OfficeID) (Office, error) {
	var (
		office Office
		oid    uuid.UUID
	)
	err := s.pool.QueryRow(ctx, `SELECT id, name FROM offices WHERE id = $1`, uuid.UUID(officeID)).
		Scan(&oid, &office.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Office{}, sentinel.ErrNotFound
		}
		return Office{}, fmt.Errorf("scan office: %w", err)
	}
	office.ID = id.OfficeID(oid)
	return office, nil
}
