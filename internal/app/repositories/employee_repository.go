package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/hrdirectory/internal/app/models"
	"github.com/yigit/hrdirectory/internal/pkg/apperrors"
)

const employeeColumns = `id, name, department_id, created_at, updated_at`

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db DBTX
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db DBTX) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var employee models.Employee
	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.DepartmentID,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees in store order
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*models.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning employee: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// Create inserts an employee. A nil name is passed through so the NOT NULL
// constraint decides; timestamps come from the column defaults.
func (r *EmployeeRepository) Create(ctx context.Context, name *string, departmentID *int64) (*models.Employee, error) {
	query := `
		INSERT INTO employees (name, department_id)
		VALUES ($1, $2)
		RETURNING ` + employeeColumns

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, name, departmentID))
	if err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}

	return employee, nil
}

// Update overwrites name and department_id and refreshes updated_at.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, name *string, departmentID *int64) (*models.Employee, error) {
	query := `
		UPDATE employees
		SET name = $1, department_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING ` + employeeColumns

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, name, departmentID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating employee %d: %w", id, err)
	}

	return employee, nil
}

// Delete removes an employee by ID
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting employee %d: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}
