package code

var codeMessageMap = map[int]string{
	// common
	ErrSuccess:         "success",
	ErrUnknown:         "unknown error",
	ErrBind:            "invalid request body",
	ErrValidation:      "request validation failed",
	ErrTooManyRequests: "too many requests, please retry later",
	ErrUnavailable:     "service unavailable",

	// devices
	ErrDeviceNotFound:          "device not found",
	ErrDeviceTypeNotFound:      "device type does not exist",
	ErrDeviceAssigned:          "device is associated with an employee",
	ErrDevicePropertiesInvalid: "stored device properties are not valid JSON",

	// employees
	ErrEmployeeNotFound: "employee not found",

	// database
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",

	// export
	ErrExportFailed: "export failed",
}

var codeStatusMap = map[int]int{
	// common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrUnavailable:     StatusServiceUnavailable,

	// devices
	ErrDeviceNotFound:          StatusNotFound,
	ErrDeviceTypeNotFound:      StatusBadRequest,
	ErrDeviceAssigned:          StatusBadRequest,
	ErrDevicePropertiesInvalid: StatusInternalServerError,

	// employees
	ErrEmployeeNotFound: StatusNotFound,

	// database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// export
	ErrExportFailed: StatusInternalServerError,
}

// GetMessage returns the default message of an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status of an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
