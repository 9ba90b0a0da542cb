package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"device-inventory-service/internal/domain/models"
	"device-inventory-service/internal/infrastructure/config"
)

// InterfaceEmployeeService defines the employee service interface
type InterfaceEmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]models.EmployeeSummary, error)
	GetEmployeeByID(ctx context.Context, id uint) (*models.EmployeeDetail, error)
	GetEmployeeAssignments(ctx context.Context, id uint) ([]models.EmployeeAssignment, error)
}

// EmployeeService implements employee lookups on gorm
type EmployeeService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceCacheService
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(db *gorm.DB, cfg *config.Config, cache InterfaceCacheService) InterfaceEmployeeService {
	if cache == nil {
		cache = noopCacheService{}
	}
	return &EmployeeService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// 1 GetAllEmployees lists every employee with the person's full name
func (s *EmployeeService) GetAllEmployees(ctx context.Context) ([]models.EmployeeSummary, error) {
	var employees []models.Employee
	if err := s.DB.WithContext(ctx).Preload("Person").Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}

	summaries := make([]models.EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		summaries = append(summaries, models.EmployeeSummary{
			ID:   e.ID,
			Name: e.Person.FullName(),
		})
	}
	return summaries, nil
}

// 2 GetEmployeeByID returns personal data, salary, hire date and position
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id uint) (*models.EmployeeDetail, error) {
	var detail models.EmployeeDetail
	if hit := cacheGet(ctx, s.Cache, employeeDetailKey(id), &detail); hit {
		return &detail, nil
	}

	var employee models.Employee
	if err := s.DB.WithContext(ctx).
		Preload("Person").
		Preload("Position").
		First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	detail = models.EmployeeDetail{
		FirstName:      employee.Person.FirstName,
		MiddleName:     employee.Person.MiddleName,
		LastName:       employee.Person.LastName,
		PassportNumber: employee.Person.PassportNumber,
		PhoneNumber:    employee.Person.PhoneNumber,
		Email:          employee.Person.Email,
		Salary:         employee.Salary,
		PositionInfo: models.PositionInfo{
			ID:   employee.Position.ID,
			Name: employee.Position.Name,
		},
		HireDate: employee.HireDate,
	}

	cacheSet(ctx, s.Cache, employeeDetailKey(id), detail)
	return &detail, nil
}

// 3 GetEmployeeAssignments returns the devices issued to an employee, newest first
func (s *EmployeeService) GetEmployeeAssignments(ctx context.Context, id uint) ([]models.EmployeeAssignment, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEmployeeNotFound
	}

	var rows []models.DeviceEmployee
	if err := s.DB.WithContext(ctx).
		Preload("Device").
		Where("employee_id = ?", id).
		Order("issue_date DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	history := make([]models.EmployeeAssignment, 0, len(rows))
	for _, row := range rows {
		history = append(history, models.EmployeeAssignment{
			ID: row.ID,
			Device: models.DeviceSummary{
				ID:   row.Device.ID,
				Name: row.Device.Name,
			},
			IssueDate:  row.IssueDate,
			ReturnDate: row.ReturnDate,
			Active:     row.Active(),
		})
	}
	return history, nil
}
