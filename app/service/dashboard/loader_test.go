package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	models "academy-dashboard/app/models/mongodb"
	"academy-dashboard/app/repository/mocks"
	service "academy-dashboard/app/service/dashboard"
)

// --- SETUP HELPERS ---

func setupLoaderTest() (*service.DashboardService, *mocks.MockRecordRepo, *observer.ObservedLogs) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	mockRecordRepo := new(mocks.MockRecordRepo)
	state := service.NewDashboardState(zap.NewNop())
	svc := service.NewDashboardService(mockRecordRepo, state, logger)

	return svc, mockRecordRepo, logs
}

// --- TEST CASES ---

func TestLoadAllSuccess(t *testing.T) {
	svc, mockRecordRepo, _ := setupLoaderTest()

	mockRecordRepo.On("GetAllStudents", mock.Anything).Return(demoStudents(), nil)
	mockRecordRepo.On("GetAllCourses", mock.Anything).Return(demoCourses(), nil)
	mockRecordRepo.On("GetAllAttendance", mock.Anything).Return(make([]models.Attendance, 5), nil)

	svc.LoadAll(context.Background())

	stats, loading, _ := svc.State().Snapshot()
	assert.False(t, loading)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 3, stats.TotalCourses)
	assert.Equal(t, 5, stats.TotalAttendance)
	assert.Len(t, stats.RecentStudents, 1)

	mockRecordRepo.AssertExpectations(t)
}

func TestLoadAllPartialFailure(t *testing.T) {
	svc, mockRecordRepo, logs := setupLoaderTest()

	mockRecordRepo.On("GetAllStudents", mock.Anything).Return(nil, errors.New("connection reset"))
	mockRecordRepo.On("GetAllCourses", mock.Anything).Return(demoCourses(), nil)
	mockRecordRepo.On("GetAllAttendance", mock.Anything).Return(make([]models.Attendance, 5), nil)

	svc.LoadAll(context.Background())

	// The failed slot keeps its empty first-load value, the loading flag
	// clears anyway, and nothing beyond the log records the failure.
	stats, loading, _ := svc.State().Snapshot()
	assert.False(t, loading)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 3, stats.TotalCourses)
	assert.Equal(t, 5, stats.TotalAttendance)

	assert.Equal(t, 1, logs.FilterMessage("failed to fetch students").Len())

	mockRecordRepo.AssertExpectations(t)
}

func TestLoadAllEveryFetchFails(t *testing.T) {
	svc, mockRecordRepo, logs := setupLoaderTest()

	mockRecordRepo.On("GetAllStudents", mock.Anything).Return(nil, errors.New("timeout"))
	mockRecordRepo.On("GetAllCourses", mock.Anything).Return(nil, errors.New("timeout"))
	mockRecordRepo.On("GetAllAttendance", mock.Anything).Return(nil, errors.New("timeout"))

	svc.LoadAll(context.Background())

	// Looks exactly like an empty store.
	stats, loading, _ := svc.State().Snapshot()
	assert.False(t, loading)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0, stats.TotalCourses)
	assert.Equal(t, 0, stats.TotalAttendance)

	assert.Equal(t, 3, logs.Len())
}

func TestLoadAllEmptyStore(t *testing.T) {
	svc, mockRecordRepo, logs := setupLoaderTest()

	mockRecordRepo.On("GetAllStudents", mock.Anything).Return([]models.Student{}, nil)
	mockRecordRepo.On("GetAllCourses", mock.Anything).Return([]models.Course{}, nil)
	mockRecordRepo.On("GetAllAttendance", mock.Anything).Return([]models.Attendance{}, nil)

	svc.LoadAll(context.Background())

	stats, loading, _ := svc.State().Snapshot()
	assert.False(t, loading)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0, logs.Len(), "an empty store is not an error")
}
