package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	models "academy-dashboard/app/models/mongodb"
	service "academy-dashboard/app/service/dashboard"
)

// --- SETUP HELPERS ---

func enrolledDaysAgo(days int) string {
	return time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
}

func demoStudents() []models.Student {
	return []models.Student{
		{Name: "Alya Putri", EnrollmentDate: enrolledDaysAgo(1)},
		{Name: "Eko Prasetyo", EnrollmentDate: enrolledDaysAgo(60)},
	}
}

func demoCourses() []models.Course {
	return []models.Course{
		{Name: "Algoritma dan Struktur Data"},
		{Name: "Basis Data"},
		{Name: "Pemrograman Web"},
	}
}

// --- TEST CASES ---

func TestNewDashboardState(t *testing.T) {
	state := service.NewDashboardState(zap.NewNop())

	stats, loading, mode := state.Snapshot()

	assert.True(t, loading)
	assert.Equal(t, service.ViewOverview, mode)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0, stats.TotalCourses)
	assert.Equal(t, 0, stats.TotalAttendance)

	// The overview chart exists from the start, even with nothing loaded.
	assert.NotNil(t, state.OverviewPNG())
	// No detail surface in overview mode.
	assert.Nil(t, state.DetailPNG())
}

func TestSetStudentsRecomputesAndRerenders(t *testing.T) {
	state := service.NewDashboardState(zap.NewNop())
	overviewBefore, _ := state.Generations()

	state.SetStudents(demoStudents())

	stats, _, _ := state.Snapshot()
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Len(t, stats.RecentStudents, 1)
	assert.Equal(t, "Alya Putri", stats.RecentStudents[0].Name)

	overviewAfter, _ := state.Generations()
	assert.Greater(t, overviewAfter, overviewBefore, "publishing a slot must rebuild the overview chart")
}

func TestSetModeMountsAndUnmountsDetail(t *testing.T) {
	state := service.NewDashboardState(zap.NewNop())
	state.SetStudents(demoStudents())
	state.SetCourses(demoCourses())

	state.SetMode(service.ViewCourses)
	_, _, mode := state.Snapshot()
	assert.Equal(t, service.ViewCourses, mode)
	assert.NotNil(t, state.DetailPNG())

	state.SetMode(service.ViewOverview)
	_, _, mode = state.Snapshot()
	assert.Equal(t, service.ViewOverview, mode)
	assert.Nil(t, state.DetailPNG(), "overview mode must tear the detail surface down")

	state.SetMode(service.ViewStudents)
	assert.NotNil(t, state.DetailPNG())
}

func TestSetModeSameModeStillSwapsHandles(t *testing.T) {
	state := service.NewDashboardState(zap.NewNop())
	state.SetCourses(demoCourses())

	state.SetMode(service.ViewCourses)
	_, detailBefore := state.Generations()

	// Re-selecting the active mode is not a no-op: the chart is rebuilt.
	state.SetMode(service.ViewCourses)
	_, detailAfter := state.Generations()

	assert.Greater(t, detailAfter, detailBefore)
	assert.NotNil(t, state.DetailPNG())
}

func TestStudentsDetailWithNoRecentStudentsStaysEmpty(t *testing.T) {
	state := service.NewDashboardState(zap.NewNop())

	// Nothing loaded yet: there are no recent students to plot, the render
	// fails and the surface stays empty.
	state.SetMode(service.ViewStudents)
	assert.Nil(t, state.DetailPNG())

	// Data arriving re-renders the mounted surface.
	state.SetStudents(demoStudents())
	assert.NotNil(t, state.DetailPNG())
}

func TestCoursesDetailFailureLeavesSurfaceEmpty(t *testing.T) {
	state := service.NewDashboardState(zap.NewNop())

	// No courses at all: the pie has nothing to slice, the render fails and
	// the surface stays empty instead of holding a stale chart.
	state.SetMode(service.ViewCourses)

	_, _, mode := state.Snapshot()
	assert.Equal(t, service.ViewCourses, mode)
	assert.Nil(t, state.DetailPNG())
}

func TestFinishLoadingClearsFlag(t *testing.T) {
	state := service.NewDashboardState(zap.NewNop())

	state.FinishLoading()

	_, loading, _ := state.Snapshot()
	assert.False(t, loading)
}
