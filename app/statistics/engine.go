package statistics

import (
	"math/rand"
	"time"

	models "academy-dashboard/app/models/mongodb"
	"academy-dashboard/utils"
)

// RecentWindow is how far back an enrollment may lie and still count as
// recent on the dashboard.
const RecentWindow = 30 * 24 * time.Hour

// Compute derives the dashboard statistics from the three record snapshots.
// Pure apart from the completion-rate placeholder: same records and clock in,
// same totals and recent list out.
func Compute(students []models.Student, courses []models.Course, attendance []models.Attendance, now time.Time) models.DashboardStatistics {
	stats := models.DashboardStatistics{
		TotalStudents:   len(students),
		TotalCourses:    len(courses),
		TotalAttendance: len(attendance),
		// Initialized empty so the JSON renders [] instead of null.
		RecentStudents:   make([]models.Student, 0),
		CourseCompletion: make([]models.CourseCompletion, 0, len(courses)),
	}

	cutoff := now.Add(-RecentWindow)
	for _, s := range students {
		enrolledAt, ok := utils.ParseDate(s.EnrollmentDate)
		if !ok {
			// Unparseable or missing date: the student exists in the
			// totals but can never be "recent".
			continue
		}
		if enrolledAt.After(cutoff) {
			stats.RecentStudents = append(stats.RecentStudents, s)
		}
	}

	for _, c := range courses {
		stats.CourseCompletion = append(stats.CourseCompletion, models.CourseCompletion{
			Name: c.Name,
			// Placeholder until per-course progress tracking lands: a
			// uniform random percentage, re-drawn on every recompute.
			CompletionRate: rand.Intn(100),
		})
	}

	return stats
}
