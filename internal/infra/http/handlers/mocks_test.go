package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/renatoc1/leadtrack/internal/entity"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

// MockLeadStore
type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) FindLeads(ctx context.Context, filter usecase.ResolvedFilter) ([]entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadStore) CreateLeads(ctx context.Context, batch []usecase.NormalizedLead) (int64, error) {
	args := m.Called(ctx, batch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadStore) UpdateLead(ctx context.Context, id string, input usecase.UpdateLeadInput) (*entity.Lead, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadStore) DeleteLead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadStore) SoldStats(ctx context.Context, employeeIDs []string) (int64, float64, error) {
	args := m.Called(ctx, employeeIDs)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

// MockEmployeeLookup
type MockEmployeeLookup struct {
	mock.Mock
}

func (m *MockEmployeeLookup) FindEmployeeIDs(ctx context.Context, departmentID string) ([]string, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEmployeeLookup) FindEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

// MockEmployeeWriter
type MockEmployeeWriter struct {
	mock.Mock
}

func (m *MockEmployeeWriter) Create(ctx context.Context, input usecase.CreateEmployeeInput) (*entity.Employee, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *MockEmployeeWriter) Update(ctx context.Context, id string, input usecase.UpdateEmployeeInput) (*entity.Employee, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Employee), args.Error(1)
}

// MockDepartmentStore
type MockDepartmentStore struct {
	mock.Mock
}

func (m *MockDepartmentStore) FindSummaries(ctx context.Context) ([]usecase.DepartmentSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.DepartmentSummary), args.Error(1)
}
