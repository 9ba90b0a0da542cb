package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"device-inventory-service/internal/error/response"
)

// ErrorResponse is the error envelope as documented in swagger
type ErrorResponse struct {
	Code    int         `json:"code" example:"102000"`
	Message string      `json:"message" example:"Device with ID 7 not found."`
	Data    interface{} `json:"data"`
}

// CreatedResponse carries the id of a created resource
type CreatedResponse struct {
	ID uint `json:"id" example:"7"`
}

// parseID reads the :id path parameter. It writes a 400 and returns false
// when the value is not a positive integer.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ParamError(ctx, "invalid id parameter: "+ctx.Param("id"))
		return 0, false
	}
	return uint(id), true
}
