package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Salaries are rendered as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Person holds the identity attributes of an employee
type Person struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	FirstName      string  `gorm:"type:varchar(100);not null" json:"firstName"`
	MiddleName     *string `gorm:"type:varchar(100)" json:"middleName"`
	LastName       string  `gorm:"type:varchar(100);not null" json:"lastName"`
	PassportNumber string  `gorm:"type:varchar(30);not null" json:"passportNumber"`
	PhoneNumber    string  `gorm:"type:varchar(20)" json:"phoneNumber"`
	Email          string  `gorm:"type:varchar(150)" json:"email"`
}

// FullName joins first, middle and last name with single spaces. A missing
// middle name is kept as an empty segment, so the result has a double space.
func (p Person) FullName() string {
	middle := ""
	if p.MiddleName != nil {
		middle = *p.MiddleName
	}
	return p.FirstName + " " + middle + " " + p.LastName
}

// Position is a job title with a minimum experience requirement
type Position struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	MinExpYears int    `gorm:"not null;default:0" json:"minExpYears"`

	Employees []Employee `gorm:"foreignKey:PositionID" json:"employees,omitempty"`
}

// Employee links a person to a position
type Employee struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Salary     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"salary"`
	HireDate   time.Time       `gorm:"not null" json:"hireDate"`
	PersonID   uint            `gorm:"uniqueIndex;not null" json:"personId"`
	PositionID uint            `gorm:"index;not null" json:"positionId"`

	Person          Person           `gorm:"foreignKey:PersonID" json:"person"`
	Position        Position         `gorm:"foreignKey:PositionID" json:"position"`
	DeviceEmployees []DeviceEmployee `gorm:"foreignKey:EmployeeID" json:"deviceEmployees,omitempty"`
}

// All returns every persisted model in dependency order, for migrations.
func All() []interface{} {
	return []interface{}{
		&Person{},
		&Position{},
		&Employee{},
		&DeviceType{},
		&Device{},
		&DeviceEmployee{},
	}
}
