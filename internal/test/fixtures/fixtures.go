// Package fixtures builds in-memory databases with a known data set for tests.
package fixtures

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"device-inventory-service/internal/domain/models"
	"device-inventory-service/internal/infrastructure/config"
	"device-inventory-service/internal/infrastructure/database"
)

// Well-known ids of the seeded rows
const (
	LaptopTypeID     uint = 1
	SmartphoneTypeID uint = 2
	PCTypeID         uint = 3

	JaneID uint = 1 // Jane Q Doe, holds the assigned laptop
	JohnID uint = 2 // John Smith, no middle name

	AssignedLaptopID  uint = 7 // active assignment to Jane
	ReturnedPhoneID   uint = 8 // returned by John, no active holder
	FreeTabletID      uint = 9 // never assigned, no device type
	BrokenPropsDevice uint = 10
)

// IssueDate is the issue date of every seeded assignment
var IssueDate = time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC)

// Config returns a configuration for an in-memory sqlite database
func Config() *config.Config {
	return &config.Config{
		EnvType:          "LOCAL",
		ServiceName:      "device-inventory-test",
		DBDriver:         "sqlite",
		DBName:           ":memory:",
		DBMigrationMode:  "auto",
		DBLogLevel:       "silent",
		DBMaxIdleConns:   1,
		DBMaxOpenConns:   1,
		ServerPort:       "8080",
		GinMode:          "test",
		LogLevel:         "error",
		LogFormat:        "console",
		CacheTTL:         time.Minute,
		CORSAllowOrigins: []string{"*"},
	}
}

// NewDB opens a migrated, empty in-memory database that is closed with the test
func NewDB(tb testing.TB, cfg *config.Config) *gorm.DB {
	tb.Helper()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		tb.Fatalf("open database: %v", err)
	}
	tb.Cleanup(func() { _ = pool.Close() })

	if err := database.Migrate(pool.GetDB(), "auto"); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return pool.GetDB()
}

// NewSeededDB opens an in-memory database holding the Seed data set
func NewSeededDB(tb testing.TB, cfg *config.Config) *gorm.DB {
	tb.Helper()

	db := NewDB(tb, cfg)
	if err := Seed(db); err != nil {
		tb.Fatalf("seed: %v", err)
	}
	return db
}

// Seed inserts three device types, two employees, four devices and their
// assignments
func Seed(db *gorm.DB) error {
	middle := "Q"
	returned := IssueDate.AddDate(0, 6, 0)
	laptopType, phoneType := LaptopTypeID, SmartphoneTypeID

	rows := []interface{}{
		&[]models.DeviceType{
			{ID: LaptopTypeID, Name: "Laptop"},
			{ID: SmartphoneTypeID, Name: "Smartphone"},
			{ID: PCTypeID, Name: "PC"},
		},
		&[]models.Position{
			{ID: 1, Name: "Engineer", MinExpYears: 2},
			{ID: 2, Name: "Support", MinExpYears: 0},
		},
		&[]models.Person{
			{ID: 1, FirstName: "Jane", MiddleName: &middle, LastName: "Doe", PassportNumber: "AB123456",
				PhoneNumber: "+1-555-0100", Email: "jane.doe@example.com"},
			{ID: 2, FirstName: "John", LastName: "Smith", PassportNumber: "CD654321",
				PhoneNumber: "+1-555-0101", Email: "john.smith@example.com"},
		},
		&[]models.Employee{
			{ID: JaneID, PersonID: 1, PositionID: 1, Salary: decimal.RequireFromString("5200.50"),
				HireDate: time.Date(2021, 5, 17, 0, 0, 0, 0, time.UTC)},
			{ID: JohnID, PersonID: 2, PositionID: 2, Salary: decimal.RequireFromString("3100.00"),
				HireDate: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)},
		},
		&[]models.Device{
			{ID: AssignedLaptopID, Name: "Laptop", IsEnabled: true, DeviceTypeID: &laptopType,
				AdditionalProperties: `{"ram":"16GB","cpu":"i7"}`},
			{ID: ReturnedPhoneID, Name: "Phone", IsEnabled: false, DeviceTypeID: &phoneType,
				AdditionalProperties: `{"imei":"356938035643809"}`},
			{ID: FreeTabletID, Name: "Tablet", IsEnabled: true,
				AdditionalProperties: `[]`},
			{ID: BrokenPropsDevice, Name: "Scanner", IsEnabled: true, DeviceTypeID: &laptopType,
				AdditionalProperties: `{not json`},
		},
		&[]models.DeviceEmployee{
			{ID: 1, DeviceID: AssignedLaptopID, EmployeeID: JaneID, IssueDate: IssueDate},
			{ID: 2, DeviceID: ReturnedPhoneID, EmployeeID: JohnID, IssueDate: IssueDate, ReturnDate: &returned},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, r := range rows {
			if err := tx.Create(r).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
