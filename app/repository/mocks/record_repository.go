package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	models "academy-dashboard/app/models/mongodb"
)

type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockRecordRepo) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockRecordRepo) GetAllAttendance(ctx context.Context) ([]models.Attendance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}

func (m *MockRecordRepo) HasAnyRecords(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepo) InsertStudents(ctx context.Context, students []models.Student) error {
	args := m.Called(ctx, students)
	return args.Error(0)
}

func (m *MockRecordRepo) InsertCourses(ctx context.Context, courses []models.Course) error {
	args := m.Called(ctx, courses)
	return args.Error(0)
}

func (m *MockRecordRepo) InsertAttendance(ctx context.Context, attendance []models.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}
