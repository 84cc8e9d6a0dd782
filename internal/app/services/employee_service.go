package services

import (
	"context"

	"github.com/yigit/hrdirectory/internal/app/models"
	"github.com/yigit/hrdirectory/internal/app/models/dto"
	"github.com/yigit/hrdirectory/internal/pkg/apperrors"
)

// Operation names used in logs
const (
	OpListEmployees  = "employees.list"
	OpCreateEmployee = "employees.create"
	OpUpdateEmployee = "employees.update"
	OpDeleteEmployee = "employees.delete"
)

// EmployeeService defines the interface for employee-related operations
type EmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]*models.Employee, error)
	CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*models.Employee, error)
	// UpdateEmployee replaces both fields. It returns apperrors.ErrEmployeeNotFound when id matches no row.
	UpdateEmployee(ctx context.Context, id int64, req dto.EmployeeRequest) (*models.Employee, error)
	// DeleteEmployee returns apperrors.ErrEmployeeNotFound when id matches no row.
	DeleteEmployee(ctx context.Context, id int64) error
}

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	employeeRepo EmployeeStore
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo EmployeeStore) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func (s *employeeServiceImpl) GetAllEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(OpListEmployees, err)
	}
	return employees, nil
}

// CreateEmployee passes the request through without validation; the store's
// constraints are the only check.
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.Create(ctx, req.Name, req.DepartmentID)
	if err != nil {
		return nil, apperrors.Wrap(OpCreateEmployee, err)
	}
	return employee, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, req dto.EmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.Update(ctx, id, req.Name, req.DepartmentID)
	if err != nil {
		return nil, apperrors.Wrap(OpUpdateEmployee, err)
	}
	return employee, nil
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return apperrors.Wrap(OpDeleteEmployee, s.employeeRepo.Delete(ctx, id))
}
