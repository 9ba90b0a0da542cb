package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"device-inventory-service/internal/domain/services"
	"device-inventory-service/internal/domain/services/container"
	"device-inventory-service/internal/error/code"
	"device-inventory-service/internal/error/response"
	Logger "device-inventory-service/pkg/logger"
)

// InterfaceEmployeeController defines the employee controller interface
type InterfaceEmployeeController interface {
	GetEmployees()
	GetEmployee()
	GetEmployeeDevices()
}

// EmployeeController handles employee requests
type EmployeeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(ctx *gin.Context, container *container.ServiceContainer) *EmployeeController {
	return &EmployeeController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleEmployeeFunc returns a gin handler that dispatches to an employee controller method
func HandleEmployeeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEmployeeController(ctx, container)

		switch method {
		case "getEmployees":
			controller.GetEmployees()
		case "getEmployee":
			controller.GetEmployee()
		case "getEmployeeDevices":
			controller.GetEmployeeDevices()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *EmployeeController) service() services.InterfaceEmployeeService {
	return c.Container.GetService("employee").(services.InterfaceEmployeeService)
}

// 1 GetEmployees lists all employees
// @Summary      List employees
// @Description  Returns every employee as id and "first middle last" name
// @Tags         Employee
// @Produce      json
// @Success      200  {array}   models.EmployeeSummary
// @Failure      500  {object}  ErrorResponse
// @Router       /employees [get]
func (c *EmployeeController) GetEmployees() {
	employees, err := c.service().GetAllEmployees(c.Ctx.Request.Context())
	if err != nil {
		Logger.Error("failed to list employees: %v", err)
		response.ServerError(c.Ctx, "failed to list employees", err)
		return
	}
	response.OK(c.Ctx, employees)
}

// 2 GetEmployee returns personal data and position of an employee
// @Summary      Get employee
// @Tags         Employee
// @Produce      json
// @Param        id   path      int  true  "Employee ID" example:"3"
// @Success      200  {object}  models.EmployeeDetail
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /employees/{id} [get]
func (c *EmployeeController) GetEmployee() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	employee, err := c.service().GetEmployeeByID(c.Ctx.Request.Context(), id)
	if err != nil {
		c.handleError(id, "failed to get employee", err)
		return
	}
	response.OK(c.Ctx, employee)
}

// 3 GetEmployeeDevices returns the devices issued to an employee
// @Summary      Employee assignment history
// @Tags         Employee
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {array}   models.EmployeeAssignment
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /employees/{id}/devices [get]
func (c *EmployeeController) GetEmployeeDevices() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	history, err := c.service().GetEmployeeAssignments(c.Ctx.Request.Context(), id)
	if err != nil {
		c.handleError(id, "failed to get employee devices", err)
		return
	}
	response.OK(c.Ctx, history)
}

func (c *EmployeeController) handleError(id uint, action string, err error) {
	if errors.Is(err, services.ErrEmployeeNotFound) {
		response.NotFound(c.Ctx, code.ErrEmployeeNotFound, fmt.Sprintf("Employee with ID %d not found.", id))
		return
	}
	Logger.Error("%s: %v", action, err)
	response.ServerError(c.Ctx, action, err)
}
