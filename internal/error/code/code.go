package code

// HTTP status codes.
const (
	// StatusOK - 200: OK.
	StatusOK = 200
	// StatusCreated - 201: created.
	StatusCreated = 201
	// StatusBadRequest - 400: bad request.
	StatusBadRequest = 400
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: dependency unavailable.
	StatusServiceUnavailable = 503
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request failed validation.
	ErrValidation
	// ErrTooManyRequests - 429: rate limit exceeded.
	ErrTooManyRequests
	// ErrUnavailable - 503: a dependency is unavailable.
	ErrUnavailable
)

// Device error codes (102xxx).
const (
	// ErrDeviceNotFound - 404: device does not exist.
	ErrDeviceNotFound int = iota + 102000
	// ErrDeviceTypeNotFound - 400: device type name does not resolve.
	ErrDeviceTypeNotFound
	// ErrDeviceAssigned - 400: device is referenced by assignment rows.
	ErrDeviceAssigned
	// ErrDevicePropertiesInvalid - 500: stored properties are not valid JSON.
	ErrDevicePropertiesInvalid
)

// Employee error codes (103xxx).
const (
	// ErrEmployeeNotFound - 404: employee does not exist.
	ErrEmployeeNotFound int = iota + 103000
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)

// Export error codes (106xxx).
const (
	// ErrExportFailed - 500: workbook generation failed.
	ErrExportFailed int = iota + 106000
)
