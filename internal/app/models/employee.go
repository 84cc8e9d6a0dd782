package models

import "time"

// Employee represents an employee, optionally attached to a department.
// CreatedAt is set once by the store; UpdatedAt is refreshed on every update.
type Employee struct {
	ID           int64     `json:"id" example:"1"`
	Name         string    `json:"name" example:"Alice"`
	DepartmentID *int64    `json:"department_id" example:"1"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
