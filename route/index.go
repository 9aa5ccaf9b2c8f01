package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	repoMongo "academy-dashboard/app/repository/mongodb"
	dashboard "academy-dashboard/app/service/dashboard"
)

// SetupDashboardRoutes wires the record repository and the dashboard service
// into the app. It returns the service so main can kick off the one-shot
// data load once the server is up.
func SetupDashboardRoutes(app *fiber.App, db *mongo.Database, log *zap.Logger) *dashboard.DashboardService {
	// Repositories
	recordRepo := repoMongo.NewRecordRepository(db)

	// Services
	state := dashboard.NewDashboardState(log)
	dashboardService := dashboard.NewDashboardService(recordRepo, state, log)

	// Dashboard page
	app.Get("/", dashboardService.GetPage)

	api := app.Group("/api/v1")
	api.Get("/health", dashboardService.Health)
	api.Get("/dashboard", dashboardService.GetDashboard)
	api.Put("/dashboard/view", dashboardService.SetViewMode)

	// Chart surfaces
	charts := app.Group("/charts")
	charts.Get("/overview.png", dashboardService.GetOverviewChart)
	charts.Get("/detail.png", dashboardService.GetDetailChart)

	return dashboardService
}
