package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/hrdirectory/internal/app/models"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db DBTX
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db DBTX) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create inserts a department and stores the generated id on it
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, department.Name).Scan(&department.ID); err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetAll retrieves all departments in store order
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name
		FROM departments
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}
