package admin

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/excel"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// UploadStudentsAPI imports a student roster spreadsheet. Rows without
// a usable DNI (blank or shorter than 5 characters) are skipped without
// counting; the rest are upserted by DNI in a single transaction that
// commits only after the whole sheet is processed.
func (h *Handler) UploadStudentsAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("archivo_excel")
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

	students, err := excel.ReadStudentRoster(file)
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
	for _, s := range students {
		if s.DNI == "" || len(s.DNI) < 5 {
			continue
		}
		if err := database.UpsertStudent(tx, s); err != nil {
			tx.Rollback()
			return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(fiber.Map{"status": "error", "msg": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "success", "msg": fmt.Sprintf("Procesados %d alumnos.", count)})
}

// ReportTodayAPI downloads today's entries. Same report as the ranged
// one, with both bounds set to today.
func (h *Handler) ReportTodayAPI(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	db, err := h.provider.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error BD")
	}
	defer db.Close()

	report, err := database.GetEntriesBetween(db, today, today)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	buf, err := excel.WriteEntriesReport(report, "Reporte_Hoy")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return sendWorkbook(c, buf, fmt.Sprintf("Reporte_%s.xlsx", today))
}

// ReportRangeAPI downloads the entries of an inclusive date range
// supplied as ?inicio=YYYY-MM-DD&fin=YYYY-MM-DD.
func (h *Handler) ReportRangeAPI(c *fiber.Ctx) error {
	inicio := c.Query("inicio")
	fin := c.Query("fin")
	if inicio == "" || fin == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Error: Debes seleccionar ambas fechas")
	}

	db, err := h.provider.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error BD")
	}
	defer db.Close()

	report, err := database.GetEntriesBetween(db, inicio, fin)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	buf, err := excel.WriteEntriesReport(report, "Reporte_Rango")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return sendWorkbook(c, buf, fmt.Sprintf("Reporte_%s_al_%s.xlsx", inicio, fin))
}

// TemplateAPI downloads a header-only workbook for one of the two
// upload formats (:tipo is "alumnos" or "visitantes").
func (h *Handler) TemplateAPI(c *fiber.Ctx) error {
	tipo := c.Params("tipo")

	buf, ok, err := excel.TemplateWorkbook(tipo)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("Error: Tipo de plantilla no válido")
	}
	return sendWorkbook(c, buf, fmt.Sprintf("Plantilla_%s.xlsx", tipo))
}

func sendWorkbook(c *fiber.Ctx, buf *bytes.Buffer, filename string) error {
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
