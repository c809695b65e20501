package visitantes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/excel"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/models"
)

type visitorRequest struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	DNI         string `json:"dni"`
	Correo      string `json:"correo"`
	Institucion string `json:"institucion"`
}

func (r visitorRequest) toModel() models.Visitor {
	institution := r.Institucion
	if institution == "" {
		institution = models.DefaultInstitution
	}
	return models.Visitor{
		ID:          r.ID,
		FullName:    r.Nombre,
		DNI:         r.DNI,
		Email:       r.Correo,
		Institution: institution,
	}
}

// CreateVisitorAPI registers a visitor. The DNI pre-check and the
// insert are two statements, matching the operational behavior the
// front desk depends on: a duplicate DNI is answered with a readable
// message, not a constraint violation.
func (h *Handler) CreateVisitorAPI(c *fiber.Ctx) error {
	var req visitorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Solicitud inválida"})
	}
	if req.DNI == "" || req.Nombre == "" {
		return c.JSON(fiber.Map{"status": "error", "msg": "DNI y Nombre son obligatorios"})
	}

	db, err := h.provider.Open()
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Error BD"})
	}
	defer db.Close()

	exists, err := database.VisitorExistsByDNI(db, req.DNI)
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}
	if exists {
		return c.JSON(fiber.Map{"status": "error", "msg": "DNI ya existe"})
	}

	if err := database.InsertVisitor(db, req.toModel()); err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success", "msg": "Guardado"})
}

// UpdateVisitorAPI overwrites a visitor by id. No DNI uniqueness
// re-check against other visitors happens on this path.
func (h *Handler) UpdateVisitorAPI(c *fiber.Ctx) error {
	var req visitorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Solicitud inválida"})
	}
	if req.ID == 0 || req.DNI == "" || req.Nombre == "" {
		return c.JSON(fiber.Map{"status": "error", "msg": "Faltan datos del visitante"})
	}

	db, err := h.provider.Open()
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Error BD"})
	}
	defer db.Close()

	if err := database.UpdateVisitor(db, req.toModel()); err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success", "msg": "Actualizado"})
}

// UploadVisitorsAPI imports a visitor roster spreadsheet. Unlike the
// student import, rows whose DNI already exists are left untouched and
// only actual inserts are counted.
func (h *Handler) UploadVisitorsAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("archivo_excel_vis")
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Falta archivo"})
	}
	if fileHeader.Filename == "" {
		return c.JSON(fiber.Map{"status": "error", "msg": "Nombre vacío"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}
	defer file.Close()

	visitors, err := excel.ReadVisitorRoster(file)
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}

	db, err := h.provider.Open()
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": "Error BD"})
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}

	count := 0
	for _, v := range visitors {
		if v.DNI == "" {
			continue
		}
		if v.Institution == "" {
			v.Institution = models.DefaultInstitution
		}
		inserted, err := database.InsertVisitorIfAbsent(tx, v)
		if err != nil {
			tx.Rollback()
			return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
		}
		if inserted {
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success", "msg": fmt.Sprintf("Procesados %d visitantes.", count)})
}
