package services

import (
	"context"

	"github.com/yigit/hrdirectory/internal/app/models"
	"github.com/yigit/hrdirectory/internal/pkg/apperrors"
)

// Operation names used in logs
const (
	OpListDepartments = "departments.list"
)

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo DepartmentStore) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
	}
}

// GetAllDepartments retrieves all departments
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(OpListDepartments, err)
	}
	return departments, nil
}
