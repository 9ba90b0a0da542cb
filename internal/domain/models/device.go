package models

// DeviceType classifies devices, e.g. "Laptop" or "Smartphone"
type DeviceType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	Devices []Device `gorm:"foreignKey:DeviceTypeID" json:"devices,omitempty"`
}

// Device represents a piece of company hardware that can be issued to employees
type Device struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(150);not null" json:"name"`
	IsEnabled bool   `gorm:"not null" json:"isEnabled"`
	// AdditionalProperties is a free-form JSON document kept as text and
	// parsed only when a device is read.
	AdditionalProperties string `gorm:"type:text;not null" json:"additionalProperties"`
	DeviceTypeID         *uint  `gorm:"index" json:"deviceTypeId"`

	// Relations
	DeviceType      *DeviceType      `gorm:"foreignKey:DeviceTypeID" json:"deviceType,omitempty"`
	DeviceEmployees []DeviceEmployee `gorm:"foreignKey:DeviceID" json:"deviceEmployees,omitempty"`
}
