package models

import "time"

// DeviceEmployee records that a device was issued to an employee.
// A nil ReturnDate marks the assignment as active.
type DeviceEmployee struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	DeviceID   uint       `gorm:"index;not null" json:"deviceId"`
	EmployeeID uint       `gorm:"index;not null" json:"employeeId"`
	IssueDate  time.Time  `gorm:"not null" json:"issueDate"`
	ReturnDate *time.Time `json:"returnDate"`

	Device   Device   `gorm:"foreignKey:DeviceID" json:"device,omitempty"`
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// Active reports whether the device is still checked out.
func (de DeviceEmployee) Active() bool {
	return de.ReturnDate == nil
}
