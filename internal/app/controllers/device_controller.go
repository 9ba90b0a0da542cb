package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"device-inventory-service/internal/domain/services"
	"device-inventory-service/internal/domain/services/container"
	"device-inventory-service/internal/error/code"
	"device-inventory-service/internal/error/response"
	"device-inventory-service/internal/infrastructure/export"
	Logger "device-inventory-service/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InterfaceDeviceController defines the device controller interface
type InterfaceDeviceController interface {
	GetDevices()
	GetDevice()
	CreateDevice()
	UpdateDevice()
	DeleteDevice()
	GetDeviceAssignments()
	GetDeviceTypes()
	ExportDevices()
}

// DeviceController handles device requests
type DeviceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// DeviceRequest is the body of create and update. isEnabled is a pointer so
// that an explicit false passes the required check.
type DeviceRequest struct {
	Name                 string `json:"name" binding:"required" example:"Laptop"`
	DeviceTypeName       string `json:"deviceTypeName" binding:"required" example:"Laptop"`
	IsEnabled            *bool  `json:"isEnabled" binding:"required" example:"true"`
	AdditionalProperties string `json:"additionalProperties" binding:"required" example:"{\"ram\":\"16GB\"}"`
}

func (r DeviceRequest) input() services.DeviceInput {
	return services.DeviceInput{
		Name:                 r.Name,
		DeviceTypeName:       r.DeviceTypeName,
		IsEnabled:            *r.IsEnabled,
		AdditionalProperties: r.AdditionalProperties,
	}
}

// NewDeviceController creates a new device controller
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDeviceFunc returns a gin handler that dispatches to a device controller method
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getDevice":
			controller.GetDevice()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		case "getDeviceAssignments":
			controller.GetDeviceAssignments()
		case "getDeviceTypes":
			controller.GetDeviceTypes()
		case "exportDevices":
			controller.ExportDevices()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *DeviceController) service() services.InterfaceDeviceService {
	return c.Container.GetService("device").(services.InterfaceDeviceService)
}

// 1 GetDevices lists all devices
// @Summary      List devices
// @Description  Returns the id and name of every device
// @Tags         Device
// @Produce      json
// @Success      200  {array}   models.DeviceSummary
// @Failure      500  {object}  ErrorResponse
// @Router       /devices [get]
func (c *DeviceController) GetDevices() {
	devices, err := c.service().GetAllDevices(c.Ctx.Request.Context())
	if err != nil {
		response.ServerError(c.Ctx, "failed to list devices", err)
		return
	}
	response.OK(c.Ctx, devices)
}

// 2 GetDevice returns a device with its type, properties and current holder
// @Summary      Get device
// @Description  Returns the device detail. properties is null when the stored JSON is malformed.
// @Tags         Device
// @Produce      json
// @Param        id   path      int  true  "Device ID" example:"7"
// @Success      200  {object}  models.DeviceDetail
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /devices/{id} [get]
func (c *DeviceController) GetDevice() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	device, err := c.service().GetDeviceByID(c.Ctx.Request.Context(), id)
	if err != nil {
		c.handleError(id, "", "failed to get device", err)
		return
	}
	response.OK(c.Ctx, device)
}

// 3 CreateDevice creates a device of an existing type
// @Summary      Create device
// @Description  Creates a device. deviceTypeName must name an existing device type.
// @Tags         Device
// @Accept       json
// @Produce      json
// @Param        request  body      DeviceRequest  true  "Device"
// @Success      201      {object}  CreatedResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /devices [post]
func (c *DeviceController) CreateDevice() {
	var req DeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	id, err := c.service().CreateDevice(c.Ctx.Request.Context(), req.input())
	if err != nil {
		c.handleError(0, req.DeviceTypeName, "failed to create device", err)
		return
	}

	Logger.Info("device %d created, type %s", id, req.DeviceTypeName)
	c.Ctx.Header("Location", fmt.Sprintf("/api/devices/%d", id))
	response.Created(c.Ctx, CreatedResponse{ID: id})
}

// 4 UpdateDevice overwrites a device
// @Summary      Update device
// @Description  Overwrites name, type, enabled flag and properties of a device
// @Tags         Device
// @Accept       json
// @Produce      json
// @Param        id       path      int            true  "Device ID"
// @Param        request  body      DeviceRequest  true  "Device"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /devices/{id} [put]
func (c *DeviceController) UpdateDevice() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	var req DeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	if err := c.service().UpdateDevice(c.Ctx.Request.Context(), id, req.input()); err != nil {
		c.handleError(id, req.DeviceTypeName, "failed to update device", err)
		return
	}
	response.Message(c.Ctx, fmt.Sprintf("Device %d updated.", id))
}

// 5 DeleteDevice removes a device that was never assigned
// @Summary      Delete device
// @Description  Deletes a device. Devices with any assignment history can not be deleted.
// @Tags         Device
// @Produce      json
// @Param        id   path      int  true  "Device ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /devices/{id} [delete]
func (c *DeviceController) DeleteDevice() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	if err := c.service().DeleteDevice(c.Ctx.Request.Context(), id); err != nil {
		c.handleError(id, "", "failed to delete device", err)
		return
	}

	Logger.Info("device %d deleted", id)
	response.Message(c.Ctx, fmt.Sprintf("Device %d deleted.", id))
}

// 6 GetDeviceAssignments returns the assignment history of a device
// @Summary      Device assignment history
// @Tags         Device
// @Produce      json
// @Param        id   path      int  true  "Device ID"
// @Success      200  {array}   models.DeviceAssignment
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /devices/{id}/assignments [get]
func (c *DeviceController) GetDeviceAssignments() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	history, err := c.service().GetDeviceAssignments(c.Ctx.Request.Context(), id)
	if err != nil {
		c.handleError(id, "", "failed to get device assignments", err)
		return
	}
	response.OK(c.Ctx, history)
}

// 7 GetDeviceTypes lists valid device type names
// @Summary      List device types
// @Tags         Device
// @Produce      json
// @Success      200  {array}   models.DeviceTypeSummary
// @Failure      500  {object}  ErrorResponse
// @Router       /device-types [get]
func (c *DeviceController) GetDeviceTypes() {
	types, err := c.service().GetDeviceTypes(c.Ctx.Request.Context())
	if err != nil {
		response.ServerError(c.Ctx, "failed to list device types", err)
		return
	}
	response.OK(c.Ctx, types)
}

// 8 ExportDevices downloads every device as an xlsx workbook
// @Summary      Export devices
// @Tags         Device
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      500  {object}  ErrorResponse
// @Router       /devices/export [get]
func (c *DeviceController) ExportDevices() {
	rows, err := c.service().GetDeviceExportRows(c.Ctx.Request.Context())
	if err != nil {
		response.ServerError(c.Ctx, "failed to load devices", err)
		return
	}

	content, err := export.GenerateDeviceWorkbook(rows)
	if err != nil {
		Logger.Error("device export failed: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrExportFailed, code.GetMessage(code.ErrExportFailed)+": "+err.Error(), nil)
		return
	}

	filename := fmt.Sprintf("devices-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Ctx.Data(http.StatusOK, xlsxContentType, content)
}

// handleError maps service errors onto the error envelope
func (c *DeviceController) handleError(id uint, typeName, action string, err error) {
	switch {
	case errors.Is(err, services.ErrDeviceNotFound):
		response.NotFound(c.Ctx, code.ErrDeviceNotFound, fmt.Sprintf("Device with ID %d not found.", id))
	case errors.Is(err, services.ErrDeviceTypeNotFound):
		response.FailWithMessage(c.Ctx, code.ErrDeviceTypeNotFound,
			fmt.Sprintf("Device type '%s' does not exist.", typeName), nil)
	case errors.Is(err, services.ErrDeviceAssigned):
		response.FailWithMessage(c.Ctx, code.ErrDeviceAssigned,
			fmt.Sprintf("Device %d can not be deleted because it is associated with an employee.", id), nil)
	case errors.Is(err, services.ErrDevicePropertiesInvalid):
		Logger.Error("device %d: %v", id, err)
		response.FailWithMessage(c.Ctx, code.ErrDevicePropertiesInvalid, err.Error(), nil)
	default:
		Logger.Error("%s: %v", action, err)
		response.ServerError(c.Ctx, action, err)
	}
}
