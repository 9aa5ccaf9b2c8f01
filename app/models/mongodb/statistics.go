package models

// DashboardStatistics is the derived view of the three record collections.
// It is recomputed from the records on every change and never persisted.
type DashboardStatistics struct {
	TotalStudents    int                `json:"totalStudents"`
	TotalCourses     int                `json:"totalCourses"`
	TotalAttendance  int                `json:"totalAttendance"`
	RecentStudents   []Student          `json:"recentStudents"`
	CourseCompletion []CourseCompletion `json:"courseCompletion"`
}

type CourseCompletion struct {
	Name           string `json:"name"`
	CompletionRate int    `json:"completionRate"`
}
