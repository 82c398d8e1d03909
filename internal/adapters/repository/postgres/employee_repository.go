package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
	pgdb "github.com/ogurasousui/codex-grpc-hr/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

const (
	findEmployeeByIDQuery = `
        SELECT id, full_name, hourly_rate::text
          FROM employees
         WHERE id = $1
         LIMIT 1
    `
	listEmployeesQuery = `
        SELECT id, full_name, hourly_rate::text
          FROM employees
         ORDER BY id
    `
)

// EmployeeRepository は PostgreSQL 上の社員名簿を参照する実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

var _ employee.Repository = (*EmployeeRepository)(nil)

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id int) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, findEmployeeByIDQuery, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// List は名簿の全社員を ID 順で取得します。
func (r *EmployeeRepository) List(ctx context.Context) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, listEmployeesQuery)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id       int
		fullName string
		rateText string
	)

	if err := row.Scan(&id, &fullName, &rateText); err != nil {
		return nil, err
	}

	rate, err := decimal.NewFromString(rateText)
	if err != nil {
		return nil, fmt.Errorf("employee %d: parse hourly_rate %q: %w", id, rateText, employee.ErrInvalidHourlyRate)
	}

	return &employee.Employee{
		ID:         id,
		FullName:   fullName,
		HourlyRate: rate,
	}, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}
	return err
}
