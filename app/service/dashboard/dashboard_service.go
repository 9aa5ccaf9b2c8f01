package service

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	repository "academy-dashboard/app/repository/mongodb"
)

type DashboardService struct {
	repo  repository.RecordRepository
	state *DashboardState
	log   *zap.Logger
}

func NewDashboardService(repo repository.RecordRepository, state *DashboardState, log *zap.Logger) *DashboardService {
	return &DashboardService{repo: repo, state: state, log: log}
}

// State exposes the container, mainly so tests can drive it directly.
func (s *DashboardService) State() *DashboardState {
	return s.state
}

// === Dashboard JSON API ===

// GetDashboard returns everything the page needs in one response: the
// loading flag, the active view mode and the derived statistics. There is
// no error field: a failed fetch and an empty store look exactly the same
// here.
func (s *DashboardService) GetDashboard(c *fiber.Ctx) error {
	stats, loading, mode := s.state.Snapshot()

	return c.JSON(fiber.Map{
		"loading":    loading,
		"mode":       mode.String(),
		"statistics": stats,
	})
}

// SetViewMode switches the detail view. Unknown modes are rejected before
// they reach the state container.
func (s *DashboardService) SetViewMode(c *fiber.Ctx) error {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	mode, err := ParseViewMode(req.Mode)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	s.state.SetMode(mode)

	return c.JSON(fiber.Map{"mode": mode.String()})
}

// === Chart Surfaces ===

func (s *DashboardService) GetOverviewChart(c *fiber.Ctx) error {
	png := s.state.OverviewPNG()
	if png == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Overview chart not rendered"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	// Every render redraws the chart, never serve a stale copy.
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(png)
}

func (s *DashboardService) GetDetailChart(c *fiber.Ctx) error {
	png := s.state.DetailPNG()
	if png == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No detail chart for the current view"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(png)
}

// === Health ===

func (s *DashboardService) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
