package services

import (
	"context"

	"github.com/yigit/hrdirectory/internal/app/models"
)

// Services defined in this package:
// - DepartmentService: read access to departments
// - EmployeeService: employee CRUD
//
// Each service method issues exactly one repository call.

// DepartmentStore is the persistence surface DepartmentService needs
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// EmployeeStore is the persistence surface EmployeeService needs
type EmployeeStore interface {
	GetAll(ctx context.Context) ([]*models.Employee, error)
	Create(ctx context.Context, name *string, departmentID *int64) (*models.Employee, error)
	Update(ctx context.Context, id int64, name *string, departmentID *int64) (*models.Employee, error)
	Delete(ctx context.Context, id int64) error
}
