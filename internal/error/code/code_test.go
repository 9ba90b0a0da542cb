package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCodeHasMessageAndStatus(t *testing.T) {
	for c := range codeMessageMap {
		_, ok := codeStatusMap[c]
		assert.True(t, ok, "code %d has a message but no status", c)
	}
	for c := range codeStatusMap {
		_, ok := codeMessageMap[c]
		assert.True(t, ok, "code %d has a status but no message", c)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		code   int
		status int
	}{
		{ErrValidation, StatusBadRequest},
		{ErrDeviceNotFound, StatusNotFound},
		{ErrDeviceTypeNotFound, StatusBadRequest},
		{ErrDeviceAssigned, StatusBadRequest},
		{ErrEmployeeNotFound, StatusNotFound},
		{ErrDatabase, StatusInternalServerError},
		{ErrTooManyRequests, StatusTooManyRequests},
		{999999, StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, GetStatus(tt.code), "code %d", tt.code)
	}
	assert.Equal(t, "unknown error", GetMessage(999999))
}
