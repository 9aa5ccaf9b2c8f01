package charts_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"academy-dashboard/app/charts"
	models "academy-dashboard/app/models/mongodb"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestOverviewPNG(t *testing.T) {
	stats := models.DashboardStatistics{
		TotalStudents:   2,
		TotalCourses:    3,
		TotalAttendance: 5,
	}

	png, err := charts.OverviewPNG(stats)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestOverviewPNGWithZeroTotals(t *testing.T) {
	// Before the first load completes every total is zero; the chart must
	// still render.
	png, err := charts.OverviewPNG(models.DashboardStatistics{})

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestStudentsLinePNGSinglePoint(t *testing.T) {
	recent := []models.Student{{Name: "Alya Putri"}}

	png, err := charts.StudentsLinePNG(recent)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestStudentsLinePNGMultiplePoints(t *testing.T) {
	recent := []models.Student{
		{Name: "Alya Putri"},
		{Name: "Budi Santoso"},
		{Name: "Citra Lestari"},
	}

	png, err := charts.StudentsLinePNG(recent)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestStudentsLinePNGEmpty(t *testing.T) {
	png, err := charts.StudentsLinePNG(nil)

	assert.Error(t, err)
	assert.Nil(t, png)
}

func TestCoursesPiePNG(t *testing.T) {
	completion := []models.CourseCompletion{
		{Name: "Algoritma dan Struktur Data", CompletionRate: 40},
		{Name: "Basis Data", CompletionRate: 75},
		{Name: "Kecerdasan Buatan", CompletionRate: 12},
	}

	png, err := charts.CoursesPiePNG(completion)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestCoursesPiePNGEmpty(t *testing.T) {
	png, err := charts.CoursesPiePNG(nil)

	assert.Error(t, err)
	assert.Nil(t, png)
}
