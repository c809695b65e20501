package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
)

// Handler serves the admin dashboard, the student roster upload, and
// the report/template downloads.
type Handler struct {
	provider database.Provider
}

func SetupAdminRoutes(app *fiber.App, provider database.Provider) {
	h := &Handler{provider: provider}

	admin := app.Group("/admin")
	admin.Get("/", h.DashboardPage)
	admin.Post("/subir_excel", h.UploadStudentsAPI)
	admin.Get("/reporte_hoy", h.ReportTodayAPI)
	admin.Get("/reporte_rango", h.ReportRangeAPI)
	admin.Get("/plantilla/:tipo", h.TemplateAPI)
}

func (h *Handler) DashboardPage(c *fiber.Ctx) error {
	db, err := h.provider.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error BD")
	}
	defer db.Close()

	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("admin_dashboard", fiber.Map{
		"Title":           "Panel Administrador",
		"TotalHoy":        stats.TotalToday,
		"TotalVisitantes": stats.VisitorsToday,
		"Pisos":           stats.ByFloor,
		"Horas":           stats.ByHour,
		"Origenes":        stats.TopOrigins,
		"Ultimos":         stats.Recent,
	})
}
