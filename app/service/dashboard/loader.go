package service

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// === One-Shot Data Load ===

// LoadAll fetches the three record collections concurrently and publishes
// each result into the state as it lands. It runs exactly once, at startup:
// the dashboard never refetches, so whatever this load produces is what the
// dashboard shows.
//
// A failed fetch is logged and swallowed; the slot keeps its previous value
// (empty on this first load) and the other fetches keep going. The loading
// flag clears after all three have finished, success or not, so the UI never
// spins forever and an empty store is indistinguishable from a failed one.
func (s *DashboardService) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		students, err := s.repo.GetAllStudents(ctx)
		if err != nil {
			s.log.Error("failed to fetch students", zap.Error(err))
			return
		}
		s.state.SetStudents(students)
	}()

	go func() {
		defer wg.Done()
		courses, err := s.repo.GetAllCourses(ctx)
		if err != nil {
			s.log.Error("failed to fetch courses", zap.Error(err))
			return
		}
		s.state.SetCourses(courses)
	}()

	go func() {
		defer wg.Done()
		attendance, err := s.repo.GetAllAttendance(ctx)
		if err != nil {
			s.log.Error("failed to fetch attendance", zap.Error(err))
			return
		}
		s.state.SetAttendance(attendance)
	}()

	wg.Wait()
	s.state.FinishLoading()

	stats, _, _ := s.state.Snapshot()
	s.log.Info("dashboard load complete",
		zap.Int("students", stats.TotalStudents),
		zap.Int("courses", stats.TotalCourses),
		zap.Int("attendance", stats.TotalAttendance),
	)
}
