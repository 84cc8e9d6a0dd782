package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
// Each repository call runs exactly one statement through it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	EmployeeRepository   *EmployeeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		EmployeeRepository:   NewEmployeeRepository(db),
	}
}
