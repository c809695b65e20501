package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/config"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/routes/admin"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/routes/ingreso"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/routes/visitantes"
)

// errorHandler converts errors that escape a handler into a plain
// response. The JSON endpoints shape their own error payloads, so
// whatever reaches this point is answered as text.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).SendString(err.Error())
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Archivo .env no encontrado, usando variables del sistema")
	}

	cfg := config.Load()
	provider := database.NewProvider(cfg)

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	ingreso.SetupIngresoRoutes(app, provider)
	admin.SetupAdminRoutes(app, provider)
	visitantes.SetupVisitantesRoutes(app, provider)

	log.Printf("Servidor Biblioteca UNDAC escuchando en %s", cfg.Addr())
	log.Fatal(app.Listen(cfg.Addr()))
}
