package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"device-inventory-service/internal/domain/models"
	"device-inventory-service/internal/infrastructure/config"
	Logger "device-inventory-service/pkg/logger"
)

// InterfaceDeviceService defines the device service interface
type InterfaceDeviceService interface {
	GetAllDevices(ctx context.Context) ([]models.DeviceSummary, error)
	GetDeviceByID(ctx context.Context, id uint) (*models.DeviceDetail, error)
	CreateDevice(ctx context.Context, input DeviceInput) (uint, error)
	UpdateDevice(ctx context.Context, id uint, input DeviceInput) error
	DeleteDevice(ctx context.Context, id uint) error
	GetDeviceAssignments(ctx context.Context, id uint) ([]models.DeviceAssignment, error)
	GetDeviceTypes(ctx context.Context) ([]models.DeviceTypeSummary, error)
	GetDeviceExportRows(ctx context.Context) ([]models.DeviceExportRow, error)
}

// DeviceInput carries the writable fields of a device
type DeviceInput struct {
	Name                 string
	DeviceTypeName       string
	IsEnabled            bool
	AdditionalProperties string
}

// DeviceService implements device queries and writes on gorm
type DeviceService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceCacheService
}

// NewDeviceService creates a new device service
func NewDeviceService(db *gorm.DB, cfg *config.Config, cache InterfaceCacheService) InterfaceDeviceService {
	if cache == nil {
		cache = noopCacheService{}
	}
	return &DeviceService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// 1 GetAllDevices lists every device as {id, name}
func (s *DeviceService) GetAllDevices(ctx context.Context) ([]models.DeviceSummary, error) {
	devices := make([]models.DeviceSummary, 0)
	if err := s.DB.WithContext(ctx).
		Model(&models.Device{}).
		Select("id", "name").
		Order("id").
		Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// deviceRecord is the cacheable part of a device detail. Assignments are
// written outside this service, so the holder is never cached.
type deviceRecord struct {
	ID                   uint    `json:"id"`
	Name                 string  `json:"name"`
	IsEnabled            bool    `json:"isEnabled"`
	AdditionalProperties string  `json:"additionalProperties"`
	DeviceTypeName       *string `json:"deviceTypeName"`
}

// 2 GetDeviceByID returns the device with its type, parsed properties and
// current holder
func (s *DeviceService) GetDeviceByID(ctx context.Context, id uint) (*models.DeviceDetail, error) {
	record, err := s.loadDeviceRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	employeeInfo, err := s.currentHolder(ctx, id)
	if err != nil {
		return nil, err
	}

	properties, err := s.parseProperties(record.ID, record.AdditionalProperties)
	if err != nil {
		return nil, err
	}

	return &models.DeviceDetail{
		Name:           record.Name,
		DeviceTypeName: record.DeviceTypeName,
		IsEnabled:      record.IsEnabled,
		Properties:     properties,
		EmployeeInfo:   employeeInfo,
	}, nil
}

func (s *DeviceService) loadDeviceRecord(ctx context.Context, id uint) (*deviceRecord, error) {
	var record deviceRecord
	if hit := cacheGet(ctx, s.Cache, deviceDetailKey(id), &record); hit {
		return &record, nil
	}

	var device models.Device
	if err := s.DB.WithContext(ctx).Preload("DeviceType").First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}

	record = deviceRecord{
		ID:                   device.ID,
		Name:                 device.Name,
		IsEnabled:            device.IsEnabled,
		AdditionalProperties: device.AdditionalProperties,
	}
	if device.DeviceType != nil {
		name := device.DeviceType.Name
		record.DeviceTypeName = &name
	}

	cacheSet(ctx, s.Cache, deviceDetailKey(id), record)
	return &record, nil
}

// currentHolder returns the employee whose assignment has no return date yet
func (s *DeviceService) currentHolder(ctx context.Context, id uint) (*models.EmployeeSummary, error) {
	var current models.DeviceEmployee
	err := s.DB.WithContext(ctx).
		Preload("Employee.Person").
		Where("device_id = ? AND return_date IS NULL", id).
		Order("id").
		First(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.EmployeeSummary{
		ID:   current.Employee.ID,
		Name: current.Employee.Person.FullName(),
	}, nil
}

// 3 CreateDevice inserts a device referencing the named type
func (s *DeviceService) CreateDevice(ctx context.Context, input DeviceInput) (uint, error) {
	typeID, err := s.resolveDeviceType(ctx, input.DeviceTypeName)
	if err != nil {
		return 0, err
	}

	device := models.Device{
		Name:                 input.Name,
		IsEnabled:            input.IsEnabled,
		AdditionalProperties: input.AdditionalProperties,
		DeviceTypeID:         &typeID,
	}
	if err := s.DB.WithContext(ctx).Create(&device).Error; err != nil {
		return 0, err
	}
	return device.ID, nil
}

// 4 UpdateDevice overwrites every writable field of a device
func (s *DeviceService) UpdateDevice(ctx context.Context, id uint, input DeviceInput) error {
	var device models.Device
	if err := s.DB.WithContext(ctx).First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	typeID, err := s.resolveDeviceType(ctx, input.DeviceTypeName)
	if err != nil {
		return err
	}

	// a map so that is_enabled=false is written too
	if err := s.DB.WithContext(ctx).Model(&device).Updates(map[string]interface{}{
		"name":                  input.Name,
		"is_enabled":            input.IsEnabled,
		"additional_properties": input.AdditionalProperties,
		"device_type_id":        typeID,
	}).Error; err != nil {
		return err
	}

	cacheDelete(ctx, s.Cache, deviceDetailKey(id))
	return nil
}

// 5 DeleteDevice removes a device that has never been assigned
func (s *DeviceService) DeleteDevice(ctx context.Context, id uint) error {
	// returned assignments block deletion too; rows are never cascaded
	var assignments int64
	if err := s.DB.WithContext(ctx).
		Model(&models.DeviceEmployee{}).
		Where("device_id = ?", id).
		Count(&assignments).Error; err != nil {
		return err
	}
	if assignments > 0 {
		return ErrDeviceAssigned
	}

	var device models.Device
	if err := s.DB.WithContext(ctx).First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}

	if err := s.DB.WithContext(ctx).Delete(&device).Error; err != nil {
		return err
	}

	cacheDelete(ctx, s.Cache, deviceDetailKey(id))
	return nil
}

// 6 GetDeviceAssignments returns the assignment history of a device, newest first
func (s *DeviceService) GetDeviceAssignments(ctx context.Context, id uint) ([]models.DeviceAssignment, error) {
	if err := s.ensureDeviceExists(ctx, id); err != nil {
		return nil, err
	}

	var rows []models.DeviceEmployee
	if err := s.DB.WithContext(ctx).
		Preload("Employee.Person").
		Where("device_id = ?", id).
		Order("issue_date DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	history := make([]models.DeviceAssignment, 0, len(rows))
	for _, row := range rows {
		history = append(history, models.DeviceAssignment{
			ID: row.ID,
			EmployeeInfo: models.EmployeeSummary{
				ID:   row.Employee.ID,
				Name: row.Employee.Person.FullName(),
			},
			IssueDate:  row.IssueDate,
			ReturnDate: row.ReturnDate,
			Active:     row.Active(),
		})
	}
	return history, nil
}

// 7 GetDeviceTypes lists the known device types
func (s *DeviceService) GetDeviceTypes(ctx context.Context) ([]models.DeviceTypeSummary, error) {
	types := make([]models.DeviceTypeSummary, 0)
	if err := s.DB.WithContext(ctx).
		Model(&models.DeviceType{}).
		Select("id", "name").
		Order("id").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// 8 GetDeviceExportRows flattens every device with its type and current holder
func (s *DeviceService) GetDeviceExportRows(ctx context.Context) ([]models.DeviceExportRow, error) {
	var devices []models.Device
	if err := s.DB.WithContext(ctx).Preload("DeviceType").Order("id").Find(&devices).Error; err != nil {
		return nil, err
	}

	var active []models.DeviceEmployee
	if err := s.DB.WithContext(ctx).
		Preload("Employee.Person").
		Where("return_date IS NULL").
		Order("id").
		Find(&active).Error; err != nil {
		return nil, err
	}
	holders := make(map[uint]string, len(active))
	for _, a := range active {
		if _, seen := holders[a.DeviceID]; !seen {
			holders[a.DeviceID] = a.Employee.Person.FullName()
		}
	}

	rows := make([]models.DeviceExportRow, 0, len(devices))
	for _, d := range devices {
		row := models.DeviceExportRow{
			ID:                   d.ID,
			Name:                 d.Name,
			IsEnabled:            d.IsEnabled,
			AdditionalProperties: d.AdditionalProperties,
			CurrentHolder:        holders[d.ID],
		}
		if d.DeviceType != nil {
			row.DeviceTypeName = d.DeviceType.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *DeviceService) resolveDeviceType(ctx context.Context, name string) (uint, error) {
	var deviceType models.DeviceType
	if err := s.DB.WithContext(ctx).Where("name = ?", name).First(&deviceType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: %q", ErrDeviceTypeNotFound, name)
		}
		return 0, err
	}
	return deviceType.ID, nil
}

func (s *DeviceService) ensureDeviceExists(ctx context.Context, id uint) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Device{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

// parseProperties decodes the stored JSON text. Malformed text yields nil
// unless strict mode is enabled.
func (s *DeviceService) parseProperties(id uint, raw string) (interface{}, error) {
	var properties interface{}
	if err := json.Unmarshal([]byte(raw), &properties); err != nil {
		if s.Config != nil && s.Config.StrictDeviceProperties {
			return nil, fmt.Errorf("%w: device %d: %v", ErrDevicePropertiesInvalid, id, err)
		}
		Logger.L().Debug("ignoring malformed device properties",
			zap.Uint("device_id", id), zap.Error(err))
		return nil, nil
	}
	return properties, nil
}
