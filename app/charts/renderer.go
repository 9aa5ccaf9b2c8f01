package charts

import (
	"bytes"
	"errors"
	"math/rand"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	models "academy-dashboard/app/models/mongodb"
)

const (
	chartWidth  = 720
	chartHeight = 360
	pieWidth    = 560
	pieHeight   = 400
)

// Fixed dashboard palette, applied in order so the same slot always gets
// the same color.
var palette = []drawing.Color{
	drawing.ColorFromHex("36a2eb"), // blue
	drawing.ColorFromHex("ff6384"), // pink
	drawing.ColorFromHex("4bc0c0"), // teal
	drawing.ColorFromHex("ffcd56"), // yellow
	drawing.ColorFromHex("9966ff"), // purple
	drawing.ColorFromHex("ff9f40"), // orange
}

func barStyle(col drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   col,
		StrokeColor: col,
		StrokeWidth: 0,
	}
}

// OverviewPNG renders the always-present overview bar chart: one bar per
// record collection, whatever the current totals are (all-zero included).
func OverviewPNG(stats models.DashboardStatistics) ([]byte, error) {
	maxTotal := stats.TotalStudents
	if stats.TotalCourses > maxTotal {
		maxTotal = stats.TotalCourses
	}
	if stats.TotalAttendance > maxTotal {
		maxTotal = stats.TotalAttendance
	}
	if maxTotal < 1 {
		// Keep the y-range non-degenerate before any data arrives.
		maxTotal = 1
	}

	graph := chart.BarChart{
		Title:      "Academy Overview",
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   80,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(maxTotal + maxTotal/5 + 1)},
		},
		Bars: []chart.Value{
			{Label: "Students", Value: float64(stats.TotalStudents), Style: barStyle(palette[0])},
			{Label: "Courses", Value: float64(stats.TotalCourses), Style: barStyle(palette[1])},
			{Label: "Attendance", Value: float64(stats.TotalAttendance), Style: barStyle(palette[2])},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StudentsLinePNG renders the students detail chart: one point per recent
// student, labeled by name. With no recent students there is nothing to
// plot and the render fails, like the pie with no courses. The y values are
// placeholders drawn fresh on every render, so the chart changes shape each
// time until real per-student activity tracking lands.
func StudentsLinePNG(recent []models.Student) ([]byte, error) {
	n := len(recent)
	if n == 0 {
		return nil, errors.New("no recent students to chart")
	}

	xs := make([]float64, n, n+1)
	ys := make([]float64, n, n+1)
	ticks := make([]chart.Tick, 0, n+1)
	for i, s := range recent {
		xs[i] = float64(i)
		ys[i] = float64(rand.Intn(100))
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: s.Name})
	}

	// go-chart sizes the x axis from the ticks, and a single tick collapses
	// it to a zero-width range the renderer rejects. Pad to two x values with
	// a duplicated y and a blank tick.
	if n == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
		ticks = append(ticks, chart.Tick{Value: 1, Label: ""})
	}

	graph := chart.Chart{
		Title:      "Recent Student Activity",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		XAxis:      chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Activity",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: palette[0],
					StrokeWidth: 2.5,
					DotColor:    palette[0],
					DotWidth:    5,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CoursesPiePNG renders the courses detail chart: one slice per course,
// sized by its completion rate.
func CoursesPiePNG(completion []models.CourseCompletion) ([]byte, error) {
	if len(completion) == 0 {
		return nil, errors.New("no courses to chart")
	}

	values := make([]chart.Value, 0, len(completion))
	for i, cc := range completion {
		col := palette[i%len(palette)]
		values = append(values, chart.Value{
			Label: cc.Name,
			Value: float64(cc.CompletionRate),
			Style: chart.Style{
				FillColor:   col,
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.PieChart{
		Title:  "Course Completion",
		Width:  pieWidth,
		Height: pieHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
