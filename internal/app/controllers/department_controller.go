package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrdirectory/internal/app/services"
	"github.com/yigit/hrdirectory/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// GetAllDepartments retrieves all departments
// @Summary List departments
// @Description Returns every department in store order
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department "Departments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}
