package visitantes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
)

// Handler serves the visitor admin page, the create/update endpoints,
// and the visitor roster upload.
type Handler struct {
	provider database.Provider
}

func SetupVisitantesRoutes(app *fiber.App, provider database.Provider) {
	h := &Handler{provider: provider}

	admin := app.Group("/admin")
	admin.Get("/visitantes", h.VisitorsPage)
	admin.Post("/agregar_visitante", h.CreateVisitorAPI)
	admin.Post("/editar_visitante", h.UpdateVisitorAPI)
	admin.Post("/subir_excel_visitantes", h.UploadVisitorsAPI)
}

func (h *Handler) VisitorsPage(c *fiber.Ctx) error {
	db, err := h.provider.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error BD")
	}
	defer db.Close()

	visitors, err := database.ListVisitors(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Render("admin_visitantes", fiber.Map{
		"Title":      "Gestión de Visitantes",
		"Visitantes": visitors,
	})
}
