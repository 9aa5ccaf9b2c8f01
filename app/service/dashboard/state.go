package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"academy-dashboard/app/charts"
	models "academy-dashboard/app/models/mongodb"
	"academy-dashboard/app/statistics"
)

// DashboardState is the single owner of everything the dashboard shows: the
// three record slots, the loading flag, the active view mode, the derived
// statistics and the two chart surfaces. Each slot has exactly one mutation
// path, and every mutation recomputes the statistics and rebuilds the charts
// before the lock is released, so readers never see a half-updated view.
type DashboardState struct {
	mu sync.RWMutex

	students   []models.Student
	courses    []models.Course
	attendance []models.Attendance

	loading bool
	mode    ViewMode
	stats   models.DashboardStatistics

	overview *charts.Surface
	detail   *charts.Surface

	log *zap.Logger
}

func NewDashboardState(log *zap.Logger) *DashboardState {
	s := &DashboardState{
		loading:  true,
		mode:     ViewOverview,
		overview: charts.NewSurface(),
		detail:   charts.NewSurface(),
		log:      log,
	}
	// Overview mode has no detail surface.
	s.detail.Unmount()

	s.mu.Lock()
	s.refreshLocked()
	s.mu.Unlock()
	return s
}

// SetStudents replaces the students slot wholesale.
func (s *DashboardState) SetStudents(students []models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = students
	s.refreshLocked()
}

// SetCourses replaces the courses slot wholesale.
func (s *DashboardState) SetCourses(courses []models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = courses
	s.refreshLocked()
}

// SetAttendance replaces the attendance slot wholesale.
func (s *DashboardState) SetAttendance(attendance []models.Attendance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance = attendance
	s.refreshLocked()
}

// SetMode switches the detail view. Re-selecting the active mode is not a
// no-op: the detail chart is still torn down and rebuilt, which is how the
// dashboard has always behaved.
func (s *DashboardState) SetMode(mode ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = mode
	if mode == ViewOverview {
		s.detail.Unmount()
	} else {
		s.detail.Mount()
	}
	s.refreshLocked()
}

// FinishLoading clears the loading flag once the initial load has joined.
// Called exactly once, whether or not the individual fetches succeeded.
func (s *DashboardState) FinishLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.refreshLocked()
}

// Snapshot returns the current statistics, loading flag and view mode as
// one consistent read.
func (s *DashboardState) Snapshot() (models.DashboardStatistics, bool, ViewMode) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, s.loading, s.mode
}

// OverviewPNG returns the overview chart bytes, or nil when no chart has
// rendered yet.
func (s *DashboardState) OverviewPNG() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overview.Handle().PNG()
}

// DetailPNG returns the detail chart bytes, or nil when the detail surface
// is unmounted (overview mode) or its last render failed.
func (s *DashboardState) DetailPNG() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detail.Handle().PNG()
}

// Generations exposes the surfaces' render counters. A mode reselect bumps
// the detail generation even though the mode did not change.
func (s *DashboardState) Generations() (overview, detail uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overview.Generation(), s.detail.Generation()
}

// refreshLocked recomputes the statistics from the current slots and
// rebuilds both surfaces. Callers must hold the write lock.
func (s *DashboardState) refreshLocked() {
	s.stats = statistics.Compute(s.students, s.courses, s.attendance, time.Now())

	stats := s.stats
	if err := s.overview.Render(func() ([]byte, error) {
		return charts.OverviewPNG(stats)
	}); err != nil {
		s.log.Warn("overview chart render failed", zap.Error(err))
	}

	switch s.mode {
	case ViewStudents:
		if err := s.detail.Render(func() ([]byte, error) {
			return charts.StudentsLinePNG(stats.RecentStudents)
		}); err != nil {
			s.log.Warn("detail chart render failed",
				zap.String("mode", s.mode.String()),
				zap.Error(err))
		}
	case ViewCourses:
		if err := s.detail.Render(func() ([]byte, error) {
			return charts.CoursesPiePNG(stats.CourseCompletion)
		}); err != nil {
			s.log.Warn("detail chart render failed",
				zap.String("mode", s.mode.String()),
				zap.Error(err))
		}
	}
}
