package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"device-inventory-service/internal/domain/models"
	"device-inventory-service/internal/test/fixtures"
)

func newSeededDeviceService(t *testing.T) (*DeviceService, *gorm.DB) {
	t.Helper()
	cfg := fixtures.Config()
	db := fixtures.NewSeededDB(t, cfg)
	return NewDeviceService(db, cfg, nil).(*DeviceService), db
}

// newMockDB returns a gorm handle whose every statement is scripted through sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestGetAllDevices(t *testing.T) {
	svc, _ := newSeededDeviceService(t)

	devices, err := svc.GetAllDevices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.DeviceSummary{
		{ID: fixtures.AssignedLaptopID, Name: "Laptop"},
		{ID: fixtures.ReturnedPhoneID, Name: "Phone"},
		{ID: fixtures.FreeTabletID, Name: "Tablet"},
		{ID: fixtures.BrokenPropsDevice, Name: "Scanner"},
	}, devices)
}

func TestGetAllDevicesEmpty(t *testing.T) {
	cfg := fixtures.Config()
	svc := NewDeviceService(fixtures.NewDB(t, cfg), cfg, nil)

	devices, err := svc.GetAllDevices(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}

func TestGetDeviceByIDWithActiveHolder(t *testing.T) {
	svc, _ := newSeededDeviceService(t)

	device, err := svc.GetDeviceByID(context.Background(), fixtures.AssignedLaptopID)
	require.NoError(t, err)

	require.NotNil(t, device.DeviceTypeName)
	assert.Equal(t, "Laptop", *device.DeviceTypeName)
	assert.Equal(t, "Laptop", device.Name)
	assert.True(t, device.IsEnabled)
	assert.Equal(t, map[string]interface{}{"ram": "16GB", "cpu": "i7"}, device.Properties)
	require.NotNil(t, device.EmployeeInfo)
	assert.Equal(t, models.EmployeeSummary{ID: fixtures.JaneID, Name: "Jane Q Doe"}, *device.EmployeeInfo)
}

func TestGetDeviceByIDReturnedAssignment(t *testing.T) {
	svc, _ := newSeededDeviceService(t)

	device, err := svc.GetDeviceByID(context.Background(), fixtures.ReturnedPhoneID)
	require.NoError(t, err)
	assert.False(t, device.IsEnabled)
	assert.Nil(t, device.EmployeeInfo)
}

func TestGetDeviceByIDWithoutType(t *testing.T) {
	svc, _ := newSeededDeviceService(t)

	device, err := svc.GetDeviceByID(context.Background(), fixtures.FreeTabletID)
	require.NoError(t, err)
	assert.Nil(t, device.DeviceTypeName)
	assert.Equal(t, []interface{}{}, device.Properties)
}

func TestGetDeviceByIDMalformedProperties(t *testing.T) {
	svc, _ := newSeededDeviceService(t)

	device, err := svc.GetDeviceByID(context.Background(), fixtures.BrokenPropsDevice)
	require.NoError(t, err)
	assert.Nil(t, device.Properties)
	assert.Equal(t, "Scanner", device.Name)

	svc.Config.StrictDeviceProperties = true
	_, err = svc.GetDeviceByID(context.Background(), fixtures.BrokenPropsDevice)
	assert.ErrorIs(t, err, ErrDevicePropertiesInvalid)
}

func TestGetDeviceByIDNotFound(t *testing.T) {
	svc, _ := newSeededDeviceService(t)

	_, err := svc.GetDeviceByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestCreateDevice(t *testing.T) {
	svc, db := newSeededDeviceService(t)

	id, err := svc.CreateDevice(context.Background(), DeviceInput{
		Name:                 "Pixel",
		DeviceTypeName:       "Smartphone",
		IsEnabled:            false,
		AdditionalProperties: `{ "color" : "black" }`,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	var stored models.Device
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "Pixel", stored.Name)
	assert.False(t, stored.IsEnabled)
	assert.Equal(t, `{ "color" : "black" }`, stored.AdditionalProperties)
	require.NotNil(t, stored.DeviceTypeID)
	assert.Equal(t, fixtures.SmartphoneTypeID, *stored.DeviceTypeID)
}

func TestCreateDeviceUnknownType(t *testing.T) {
	svc, db := newSeededDeviceService(t)

	_, err := svc.CreateDevice(context.Background(), DeviceInput{
		Name:                 "Mystery",
		DeviceTypeName:       "Nonexistent",
		IsEnabled:            true,
		AdditionalProperties: "{}",
	})
	assert.ErrorIs(t, err, ErrDeviceTypeNotFound)
	assert.Contains(t, err.Error(), "Nonexistent")

	var count int64
	require.NoError(t, db.Model(&models.Device{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestUpdateDevice(t *testing.T) {
	svc, db := newSeededDeviceService(t)

	err := svc.UpdateDevice(context.Background(), fixtures.AssignedLaptopID, DeviceInput{
		Name:                 "Workstation",
		DeviceTypeName:       "PC",
		IsEnabled:            false,
		AdditionalProperties: `{"ram":"64GB"}`,
	})
	require.NoError(t, err)

	var stored models.Device
	require.NoError(t, db.Preload("DeviceType").First(&stored, fixtures.AssignedLaptopID).Error)
	assert.Equal(t, "Workstation", stored.Name)
	assert.False(t, stored.IsEnabled)
	assert.Equal(t, `{"ram":"64GB"}`, stored.AdditionalProperties)
	require.NotNil(t, stored.DeviceType)
	assert.Equal(t, "PC", stored.DeviceType.Name)
}

func TestUpdateDeviceErrors(t *testing.T) {
	svc, _ := newSeededDeviceService(t)
	ctx := context.Background()

	valid := DeviceInput{Name: "x", DeviceTypeName: "PC", IsEnabled: true, AdditionalProperties: "{}"}
	assert.ErrorIs(t, svc.UpdateDevice(ctx, 999, valid), ErrDeviceNotFound)

	unknownType := valid
	unknownType.DeviceTypeName = "Nonexistent"
	assert.ErrorIs(t, svc.UpdateDevice(ctx, fixtures.FreeTabletID, unknownType), ErrDeviceTypeNotFound)

	// a missing device wins over a missing type
	assert.ErrorIs(t, svc.UpdateDevice(ctx, 999, unknownType), ErrDeviceNotFound)
}

func TestDeleteDevice(t *testing.T) {
	svc, db := newSeededDeviceService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteDevice(ctx, fixtures.FreeTabletID))

	var count int64
	require.NoError(t, db.Model(&models.Device{}).Where("id = ?", fixtures.FreeTabletID).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.DeleteDevice(ctx, fixtures.FreeTabletID), ErrDeviceNotFound)
}

func TestDeleteDeviceWithAssignments(t *testing.T) {
	svc, db := newSeededDeviceService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteDevice(ctx, fixtures.AssignedLaptopID), ErrDeviceAssigned)
	// a returned assignment still blocks deletion
	assert.ErrorIs(t, svc.DeleteDevice(ctx, fixtures.ReturnedPhoneID), ErrDeviceAssigned)

	var count int64
	require.NoError(t, db.Model(&models.Device{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
	require.NoError(t, db.Model(&models.DeviceEmployee{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestDeleteDeviceOrphanAssignmentCheckedFirst(t *testing.T) {
	svc, db := newSeededDeviceService(t)

	// an assignment row that references a device id with no device row
	require.NoError(t, db.Create(&models.DeviceEmployee{
		DeviceID: 500, EmployeeID: fixtures.JaneID, IssueDate: fixtures.IssueDate,
	}).Error)

	assert.ErrorIs(t, svc.DeleteDevice(context.Background(), 500), ErrDeviceAssigned)
}

func TestGetDeviceAssignments(t *testing.T) {
	svc, _ := newSeededDeviceService(t)
	ctx := context.Background()

	history, err := svc.GetDeviceAssignments(ctx, fixtures.AssignedLaptopID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.EmployeeSummary{ID: fixtures.JaneID, Name: "Jane Q Doe"}, history[0].EmployeeInfo)
	assert.True(t, history[0].Active)
	assert.Nil(t, history[0].ReturnDate)
	assert.True(t, fixtures.IssueDate.Equal(history[0].IssueDate))

	history, err = svc.GetDeviceAssignments(ctx, fixtures.ReturnedPhoneID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].Active)
	assert.Equal(t, "John  Smith", history[0].EmployeeInfo.Name)

	history, err = svc.GetDeviceAssignments(ctx, fixtures.FreeTabletID)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = svc.GetDeviceAssignments(ctx, 999)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestGetDeviceTypes(t *testing.T) {
	svc, _ := newSeededDeviceService(t)

	types, err := svc.GetDeviceTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.DeviceTypeSummary{
		{ID: fixtures.LaptopTypeID, Name: "Laptop"},
		{ID: fixtures.SmartphoneTypeID, Name: "Smartphone"},
		{ID: fixtures.PCTypeID, Name: "PC"},
	}, types)
}

func TestGetDeviceExportRows(t *testing.T) {
	svc, _ := newSeededDeviceService(t)

	rows, err := svc.GetDeviceExportRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, models.DeviceExportRow{
		ID:                   fixtures.AssignedLaptopID,
		Name:                 "Laptop",
		DeviceTypeName:       "Laptop",
		IsEnabled:            true,
		AdditionalProperties: `{"ram":"16GB","cpu":"i7"}`,
		CurrentHolder:        "Jane Q Doe",
	}, rows[0])
	assert.Empty(t, rows[1].CurrentHolder)
	assert.Empty(t, rows[2].DeviceTypeName)
}

func TestDeviceServiceDatabaseErrors(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewDeviceService(db, nil, nil)
	boom := errors.New("connection reset")
	ctx := context.Background()

	mock.ExpectQuery("SELECT").WillReturnError(boom)
	_, err := svc.GetAllDevices(ctx)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery("SELECT").WillReturnError(boom)
	_, err = svc.GetDeviceByID(ctx, 7)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDeviceNotFound)

	mock.ExpectQuery("SELECT count").WillReturnError(boom)
	assert.ErrorIs(t, svc.DeleteDevice(ctx, 7), boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}
