package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/hrdirectory/internal/app/models"
	"github.com/yigit/hrdirectory/internal/app/repositories"
	"github.com/yigit/hrdirectory/internal/pkg/apperrors"
	"github.com/yigit/hrdirectory/internal/pkg/dberrors"
	"github.com/yigit/hrdirectory/internal/pkg/testdb"
)

func ptr[T any](v T) *T { return &v }

func TestEmployeeRepositoryLifecycle(t *testing.T) {
	pool := testdb.Pool(t)
	testdb.Reset(t, pool)
	ctx := context.Background()
	repo := repositories.NewEmployeeRepository(pool)

	created, err := repo.Create(ctx, ptr("Eve"), ptr(int64(1)))
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)
	assert.Equal(t, "Eve", created.Name)
	assert.Equal(t, int64(1), *created.DepartmentID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	updated, err := repo.Update(ctx, created.ID, ptr("Eve2"), ptr(int64(2)))
	require.NoError(t, err)
	assert.Equal(t, "Eve2", updated.Name)
	assert.Equal(t, int64(2), *updated.DepartmentID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	cleared, err := repo.Update(ctx, created.ID, ptr("Eve3"), nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.DepartmentID)

	employees, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 6)
	assert.Contains(t, employeeNames(employees), "Eve3")

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, created.ID), apperrors.ErrEmployeeNotFound))

	employees, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 5)
	assert.NotContains(t, employeeNames(employees), "Eve3")
}

func employeeNames(employees []*models.Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.Name)
	}
	return out
}

func TestEmployeeRepositoryUpdateMissing(t *testing.T) {
	pool := testdb.Pool(t)
	testdb.Reset(t, pool)

	_, err := repositories.NewEmployeeRepository(pool).Update(context.Background(), 9999, ptr("Ghost"), nil)
	assert.True(t, errors.Is(err, apperrors.ErrEmployeeNotFound))
}

func TestEmployeeRepositoryConstraintViolations(t *testing.T) {
	pool := testdb.Pool(t)
	testdb.Reset(t, pool)
	ctx := context.Background()
	repo := repositories.NewEmployeeRepository(pool)

	_, err := repo.Create(ctx, ptr("Mallory"), ptr(int64(42)))
	require.Error(t, err)
	assert.True(t, dberrors.IsForeignKeyViolation(err))

	_, err = repo.Create(ctx, nil, ptr(int64(1)))
	require.Error(t, err)
	assert.True(t, dberrors.IsNotNullViolation(err))

	employees, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 5)
}

func TestDepartmentRepositoryGetAll(t *testing.T) {
	pool := testdb.Pool(t)
	testdb.Reset(t, pool)

	departments, err := repositories.NewDepartmentRepository(pool).GetAll(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Software Engineering", "Human Resources", "Finance", "Sales"}, names)
}
