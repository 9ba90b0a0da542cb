package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"device-inventory-service/internal/domain/models"
)

// DeviceSheetName is the worksheet holding the device rows
const DeviceSheetName = "Devices"

// DeviceExportHeader is the header row of the device workbook
var DeviceExportHeader = []string{
	"ID",
	"Name",
	"Device Type",
	"Enabled",
	"Additional Properties",
	"Current Holder",
}

// GenerateDeviceWorkbook renders devices as an xlsx document
func GenerateDeviceWorkbook(rows []models.DeviceExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(DeviceSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range DeviceExportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(DeviceSheetName, cell, title); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(DeviceExportHeader), 1)
	if err := f.SetCellStyle(DeviceSheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, row := range rows {
		values := []interface{}{
			row.ID,
			row.Name,
			row.DeviceTypeName,
			row.IsEnabled,
			row.AdditionalProperties,
			row.CurrentHolder,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(DeviceSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(DeviceSheetName, "B", "B", 30); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(DeviceSheetName, "E", "F", 40); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
