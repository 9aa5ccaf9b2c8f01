package service

import "fmt"

// ViewMode selects which detail chart the dashboard shows. The set is
// closed: anything else is rejected at the HTTP boundary.
type ViewMode int

const (
	ViewOverview ViewMode = iota
	ViewStudents
	ViewCourses
)

func (m ViewMode) String() string {
	switch m {
	case ViewStudents:
		return "students"
	case ViewCourses:
		return "courses"
	default:
		return "overview"
	}
}

func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "overview":
		return ViewOverview, nil
	case "students":
		return ViewStudents, nil
	case "courses":
		return ViewCourses, nil
	}
	return ViewOverview, fmt.Errorf("unknown view mode %q", s)
}
