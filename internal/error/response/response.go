package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"device-inventory-service/internal/error/code"
)

// Response is the error envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageResponse acknowledges a write that returns no resource
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes one failed validation rule
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// OK writes a 200 with the bare payload
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the bare payload
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message writes a 200 acknowledgment
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Fail writes the envelope with the default message of errorCode
func Fail(c *gin.Context, errorCode int, data interface{}) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode), data)
}

// FailWithMessage writes the envelope with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// BindError reports a request that could not be bound. Validator failures
// are flattened into field-level detail.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		Fail(c, code.ErrValidation, fields)
		return
	}
	FailWithMessage(c, code.ErrBind, "invalid request body: "+err.Error(), nil)
}

// ParamError reports an invalid path or query parameter
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message, nil)
}

// NotFound reports a missing resource
func NotFound(c *gin.Context, errorCode int, message string) {
	if message == "" {
		message = code.GetMessage(errorCode)
	}
	FailWithMessage(c, errorCode, message, nil)
}

// ServerError reports an unexpected failure and carries its message
func ServerError(c *gin.Context, message string, err error) {
	if err != nil {
		message += ": " + err.Error()
	}
	FailWithMessage(c, code.ErrDatabase, message, nil)
}
