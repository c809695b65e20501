package ingreso

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
)

// Handler serves the floor pages and the turnstile scan endpoint.
type Handler struct {
	provider database.Provider
}

func SetupIngresoRoutes(app *fiber.App, provider database.Provider) {
	h := &Handler{provider: provider}

	app.Get("/", h.IndexPage)
	app.Get("/piso1", h.FloorPage(1))
	app.Get("/piso2", h.FloorPage(2))
	app.Get("/piso3", h.FloorPage(3))

	app.Post("/procesar_ingreso", h.ProcessEntryAPI)
}

func (h *Handler) IndexPage(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "Servidor Biblioteca UNDAC",
	})
}

// FloorPage renders the scan page bound to one floor.
func (h *Handler) FloorPage(floor int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("ingreso", fiber.Map{
			"Title": "Control de Ingreso",
			"Piso":  floor,
		})
	}
}
