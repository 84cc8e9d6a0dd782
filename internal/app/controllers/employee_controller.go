package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrdirectory/internal/app/models/dto"
	"github.com/yigit/hrdirectory/internal/app/services"
	"github.com/yigit/hrdirectory/internal/config"
	"github.com/yigit/hrdirectory/internal/middleware"
	"github.com/yigit/hrdirectory/internal/pkg/apperrors"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService  services.EmployeeService
	missingRowPolicy config.MissingRowPolicy
}

// NewEmployeeController creates a new EmployeeController. The policy decides what
// PUT and DELETE answer when the id matches no employee.
func NewEmployeeController(employeeService services.EmployeeService, policy config.MissingRowPolicy) *EmployeeController {
	if policy == "" {
		policy = config.MissingRowIgnore
	}
	return &EmployeeController{
		employeeService:  employeeService,
		missingRowPolicy: policy,
	}
}

// parseEmployeeID reads the :id path parameter. Failures are reported like any
// other store-side error, so they end up as a generic 500.
func parseEmployeeID(ctx *gin.Context, op string) (int64, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		invalid := apperrors.NewCustomError(apperrors.ErrInvalidID, "invalid employee id").
			WithDetails(map[string]interface{}{"id": idStr})
		middleware.HandleAPIError(ctx, apperrors.Wrap(op, invalid))
		return 0, false
	}
	return id, true
}

func bindEmployeeRequest(ctx *gin.Context, op string) (dto.EmployeeRequest, bool) {
	var req dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalid := apperrors.NewCustomError(apperrors.ErrBadRequest, "invalid employee body").
			WithDetails(map[string]interface{}{"bind_error": err.Error()})
		middleware.HandleAPIError(ctx, apperrors.Wrap(op, invalid))
		return req, false
	}
	return req, true
}

// ignoreMissing reports whether a not-found error should be answered as success.
func (c *EmployeeController) ignoreMissing(err error) bool {
	return c.missingRowPolicy == config.MissingRowIgnore && errors.Is(err, apperrors.ErrEmployeeNotFound)
}

// GetAllEmployees retrieves all employees
// @Summary List employees
// @Description Returns every employee in store order
// @Tags employees
// @Produce json
// @Success 200 {array} models.Employee "Employees"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/employees [get]
func (c *EmployeeController) GetAllEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.GetAllEmployees(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employees)
}

// CreateEmployee handles employee creation
// @Summary Create an employee
// @Description Inserts an employee; created_at and updated_at are set by the database
// @Tags employees
// @Accept json
// @Produce json
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 201 {object} models.Employee "Created employee"
// @Failure 500 {object} dto.ErrorResponse "Internal server error, including constraint violations"
// @Router /api/employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	req, ok := bindEmployeeRequest(ctx, services.OpCreateEmployee)
	if !ok {
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, employee)
}

// UpdateEmployee replaces name and department of an employee
// @Summary Update an employee
// @Description Overwrites name and department_id (omitted fields become null) and refreshes updated_at
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 200 {object} models.Employee "Updated employee, or an empty body when the id does not exist"
// @Failure 404 {object} dto.ErrorResponse "Employee not found (missing_row_policy=not_found)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/employees/{id} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx, services.OpUpdateEmployee)
	if !ok {
		return
	}

	req, ok := bindEmployeeRequest(ctx, services.OpUpdateEmployee)
	if !ok {
		return
	}

	employee, err := c.employeeService.UpdateEmployee(ctx.Request.Context(), id, req)
	if c.ignoreMissing(err) {
		ctx.Status(http.StatusOK)
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, employee)
}

// DeleteEmployee deletes an employee
// @Summary Delete an employee
// @Description Deletes an employee by id; repeated deletes also answer 204
// @Tags employees
// @Param id path int true "Employee ID"
// @Success 204 "Employee deleted"
// @Failure 404 {object} dto.ErrorResponse "Employee not found (missing_row_policy=not_found)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseEmployeeID(ctx, services.OpDeleteEmployee)
	if !ok {
		return
	}

	err := c.employeeService.DeleteEmployee(ctx.Request.Context(), id)
	if err != nil && !c.ignoreMissing(err) {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
