package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Response shapes returned by the API. They are decoupled from the
// storage entities above.

// DeviceSummary is a device row in the listing
type DeviceSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DeviceTypeSummary is a device type row in the listing
type DeviceTypeSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// EmployeeSummary identifies an employee by id and full name
type EmployeeSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DeviceDetail is the single-device view
type DeviceDetail struct {
	Name           string           `json:"name"`
	DeviceTypeName *string          `json:"deviceTypeName"`
	IsEnabled      bool             `json:"isEnabled"`
	Properties     interface{}      `json:"properties"`
	EmployeeInfo   *EmployeeSummary `json:"employeeInfo"`
}

// PositionInfo is the nested position of an employee
type PositionInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// EmployeeDetail is the single-employee view
type EmployeeDetail struct {
	FirstName      string          `json:"firstName"`
	MiddleName     *string         `json:"middleName"`
	LastName       string          `json:"lastName"`
	PassportNumber string          `json:"passportNumber"`
	PhoneNumber    string          `json:"phoneNumber"`
	Email          string          `json:"email"`
	Salary         decimal.Decimal `json:"salary"`
	PositionInfo   PositionInfo    `json:"positionInfo"`
	HireDate       time.Time       `json:"hireDate"`
}

// DeviceAssignment is one row of a device's assignment history
type DeviceAssignment struct {
	ID           uint            `json:"id"`
	EmployeeInfo EmployeeSummary `json:"employeeInfo"`
	IssueDate    time.Time       `json:"issueDate"`
	ReturnDate   *time.Time      `json:"returnDate"`
	Active       bool            `json:"active"`
}

// EmployeeAssignment is one row of an employee's assignment history
type EmployeeAssignment struct {
	ID         uint          `json:"id"`
	Device     DeviceSummary `json:"device"`
	IssueDate  time.Time     `json:"issueDate"`
	ReturnDate *time.Time    `json:"returnDate"`
	Active     bool          `json:"active"`
}

// DeviceExportRow is one line of the device workbook
type DeviceExportRow struct {
	ID                   uint
	Name                 string
	DeviceTypeName       string
	IsEnabled            bool
	AdditionalProperties string
	CurrentHolder        string
}
