package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/hrdirectory/internal/app/models"
	appRepos "github.com/yigit/hrdirectory/internal/app/repositories"
)

// DefaultDepartments are inserted in this order, so they receive ids 1..4 on a fresh schema.
var DefaultDepartments = []string{
	"Software Engineering",
	"Human Resources",
	"Finance",
	"Sales",
}

// DefaultEmployee references a department by its position in DefaultDepartments (1-based).
type DefaultEmployee struct {
	Name       string
	Department int
}

// DefaultEmployees are inserted after the departments.
var DefaultEmployees = []DefaultEmployee{
	{Name: "Alice", Department: 1},
	{Name: "Bob", Department: 2},
	{Name: "Charlie", Department: 3},
	{Name: "David", Department: 4},
	{Name: "Sonia", Department: 3},
}

// CreateDefaultData inserts the fixed departments and employees. It expects freshly
// created tables and stops at the first error.
func CreateDefaultData(ctx context.Context, db appRepos.DBTX, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(db)
	employeeRepo := appRepos.NewEmployeeRepository(db)

	lgr.Info().Msg("Seeding default departments and employees...")

	ids := make([]int64, 0, len(DefaultDepartments))
	for _, name := range DefaultDepartments {
		department := &appModels.Department{Name: name}
		if err := departmentRepo.Create(ctx, department); err != nil {
			return fmt.Errorf("seed department %q: %w", name, err)
		}
		ids = append(ids, department.ID)
	}

	for _, e := range DefaultEmployees {
		if e.Department < 1 || e.Department > len(ids) {
			return fmt.Errorf("seed employee %q: unknown department #%d", e.Name, e.Department)
		}
		name := e.Name
		departmentID := ids[e.Department-1]
		if _, err := employeeRepo.Create(ctx, &name, &departmentID); err != nil {
			return fmt.Errorf("seed employee %q: %w", e.Name, err)
		}
	}

	lgr.Info().
		Int("departments", len(DefaultDepartments)).
		Int("employees", len(DefaultEmployees)).
		Msg("Default data seeded")
	return nil
}
