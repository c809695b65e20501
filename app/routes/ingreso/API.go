package ingreso

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
)

type scanRequest struct {
	Codigo string `json:"codigo"`
	Piso   int    `json:"piso"`
}

// ProcessEntryAPI handles a turnstile scan. The stored procedure decides
// whether the entry is granted, a duplicate for the current shift, or
// rejected; this handler only classifies its message and shapes the
// JSON the scan page expects.
func (h *Handler) ProcessEntryAPI(c *fiber.Ctx) error {
	var req scanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Solicitud inválida"})
	}

	if req.Codigo == "" {
		return c.JSON(fiber.Map{"status": "error", "msg": "Código vacío"})
	}

	db, err := h.provider.Open()
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Error BD"})
	}
	defer db.Close()

	result, err := database.RegisterEntry(db, req.Codigo, req.Piso)
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}
	if result == nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Error desconocido en BD"})
	}

	switch {
	case strings.Contains(result.Message, "CONCEDIDO"):
		return c.JSON(fiber.Map{
			"status":   "success",
			"msg":      result.Message,
			"alumno":   result.Name,
			"escuela":  result.School,
			"semestre": result.Semester,
		})
	case strings.Contains(result.Message, "YA REGISTRADO"):
		// Duplicate scan this shift: a warning, but the page still
		// shows who scanned.
		return c.JSON(fiber.Map{
			"status":   "warning",
			"msg":      result.Message,
			"alumno":   result.Name,
			"escuela":  result.School,
			"semestre": result.Semester,
		})
	default:
		return c.JSON(fiber.Map{"status": "error", "msg": result.Message})
	}
}
