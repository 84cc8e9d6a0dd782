package dto

// EmployeeRequest is the body of POST /api/employees and PUT /api/employees/:id.
// Both fields are written as given; an absent field is sent to the store as NULL.
type EmployeeRequest struct {
	Name         *string `json:"name" example:"Eve"`
	DepartmentID *int64  `json:"department_id" example:"1"`
}
