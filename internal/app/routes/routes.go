package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/hrdirectory/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	departmentController *controllers.DepartmentController,
	employeeController *controllers.EmployeeController,
	healthController *controllers.HealthController,
) {
	router.GET("/ping", healthController.Ping)

	api := router.Group("/api")

	departments := api.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
	}

	employees := api.Group("/employees")
	{
		employees.GET("", employeeController.GetAllEmployees)
		employees.POST("", employeeController.CreateEmployee)
		employees.PUT("/:id", employeeController.UpdateEmployee)
		employees.DELETE("/:id", employeeController.DeleteEmployee)
	}
}
