package services

import "errors"

var (
	// ErrDeviceNotFound is returned when a device id does not resolve
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceTypeNotFound is returned when a device type name does not resolve
	ErrDeviceTypeNotFound = errors.New("device type not found")
	// ErrDeviceAssigned blocks deleting a device that has assignment rows
	ErrDeviceAssigned = errors.New("device is associated with an employee")
	// ErrDevicePropertiesInvalid is returned in strict mode when stored properties are not JSON
	ErrDevicePropertiesInvalid = errors.New("device properties are not valid JSON")
	// ErrEmployeeNotFound is returned when an employee id does not resolve
	ErrEmployeeNotFound = errors.New("employee not found")
)
