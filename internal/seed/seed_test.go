package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appRepos "github.com/yigit/hrdirectory/internal/app/repositories"
	"github.com/yigit/hrdirectory/internal/pkg/testdb"
	"github.com/yigit/hrdirectory/internal/seed"
)

func TestDefaultEmployeesReferenceKnownDepartments(t *testing.T) {
	for _, e := range seed.DefaultEmployees {
		assert.GreaterOrEqual(t, e.Department, 1, e.Name)
		assert.LessOrEqual(t, e.Department, len(seed.DefaultDepartments), e.Name)
	}
}

func TestCreateDefaultData(t *testing.T) {
	pool := testdb.Pool(t)
	testdb.Reset(t, pool)
	ctx := context.Background()

	departments, err := appRepos.NewDepartmentRepository(pool).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 4)
	for i, d := range departments {
		assert.Equal(t, int64(i+1), d.ID)
		assert.Equal(t, seed.DefaultDepartments[i], d.Name)
	}

	employees, err := appRepos.NewEmployeeRepository(pool).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 5)
	for i, e := range employees {
		assert.Equal(t, seed.DefaultEmployees[i].Name, e.Name)
		require.NotNil(t, e.DepartmentID)
		assert.Equal(t, int64(seed.DefaultEmployees[i].Department), *e.DepartmentID)
		assert.Equal(t, e.CreatedAt, e.UpdatedAt)
	}
}
