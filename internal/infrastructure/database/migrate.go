package database

import (
	"fmt"

	"gorm.io/gorm"

	"device-inventory-service/internal/domain/models"
	Logger "device-inventory-service/pkg/logger"
)

// Migrate brings the schema in line with the models.
// mode: "auto" adds missing tables and columns, "drop" drops and recreates
// every table, "none" leaves the schema untouched.
func Migrate(db *gorm.DB, mode string) error {
	switch mode {
	case "none":
		Logger.Info("schema migration disabled")
		return nil
	case "drop":
		Logger.Warning("running in drop mode, all tables will be dropped and recreated")
		if err := db.Migrator().DropTable(reversed(models.All())...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	case "auto", "":
	default:
		return fmt.Errorf("unknown migration mode %q", mode)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	Logger.Info("database migration completed")
	return nil
}

// EnsureDeviceTypes seeds the device type table when it is empty
func EnsureDeviceTypes(db *gorm.DB, names []string) error {
	var count int64
	if err := db.Model(&models.DeviceType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(names) == 0 {
		return nil
	}

	types := make([]models.DeviceType, 0, len(names))
	for _, name := range names {
		types = append(types, models.DeviceType{Name: name})
	}
	if err := db.Create(&types).Error; err != nil {
		return fmt.Errorf("seed device types: %w", err)
	}

	Logger.Info("seeded %d default device types", len(types))
	return nil
}

func reversed(in []interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, m := range in {
		out[len(in)-1-i] = m
	}
	return out
}
