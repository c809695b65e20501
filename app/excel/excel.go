// Package excel reads roster uploads and writes report and template
// workbooks. Every cell is handled as text; DNIs and enrollment codes
// in particular must keep their leading zeros.
package excel

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/models"
)

// Header rows of the two upload formats. Imports map columns by these
// exact names, so they double as the template downloads.
var (
	StudentHeaders = []string{"APELLIDOS Y NOMBRE", "DNI", "CODIGO DE MATRICULA", "ESCUELA", "SEMESTRE"}
	VisitorHeaders = []string{"NOMBRE", "DNI", "CORREO", "INSTITUCION"}
)

var reportHeaders = []string{"ID", "Persona", "DNI", "Origen", "Tipo", "Piso_Acceso", "Turno", "Hora", "Fecha"}

// ReadStudentRoster parses an uploaded student sheet into one Student
// per data row. Rows are returned as-is apart from trimming; the caller
// decides which rows qualify for the upsert.
func ReadStudentRoster(r io.Reader) ([]models.Student, error) {
	rows, idx, err := sheetRows(r)
	if err != nil {
		return nil, err
	}

	var students []models.Student
	for _, row := range rows {
		students = append(students, models.Student{
			FullName:       cell(row, idx, "APELLIDOS Y NOMBRE"),
			DNI:            strings.TrimSpace(cell(row, idx, "DNI")),
			EnrollmentCode: strings.TrimSpace(cell(row, idx, "CODIGO DE MATRICULA")),
			School:         cell(row, idx, "ESCUELA"),
			Semester:       cell(row, idx, "SEMESTRE"),
		})
	}
	return students, nil
}

// ReadStudentRosterFull parses the extended roster layout the bulk
// loader consumes, which also carries emails and faculty. Columns the
// sheet does not have simply come back empty.
func ReadStudentRosterFull(r io.Reader) ([]models.Student, error) {
	rows, idx, err := sheetRows(r)
	if err != nil {
		return nil, err
	}

	var students []models.Student
	for _, row := range rows {
		students = append(students, models.Student{
			FullName:           cell(row, idx, "APELLIDOS Y NOMBRE"),
			DNI:                strings.TrimSpace(cell(row, idx, "DNI")),
			EnrollmentCode:     strings.TrimSpace(cell(row, idx, "CODIGO DE MATRICULA")),
			InstitutionalEmail: cell(row, idx, "CORREO INSTITUCIONAL"),
			PersonalEmail:      cell(row, idx, "CORREO PERSONAL"),
			School:             cell(row, idx, "ESCUELA"),
			Faculty:            cell(row, idx, "FACULTAD"),
			Semester:           cell(row, idx, "SEMESTRE"),
		})
	}
	return students, nil
}

// ReadVisitorRoster parses an uploaded visitor sheet.
func ReadVisitorRoster(r io.Reader) ([]models.Visitor, error) {
	rows, idx, err := sheetRows(r)
	if err != nil {
		return nil, err
	}

	var visitors []models.Visitor
	for _, row := range rows {
		visitors = append(visitors, models.Visitor{
			FullName:    cell(row, idx, "NOMBRE"),
			DNI:         strings.TrimSpace(cell(row, idx, "DNI")),
			Email:       cell(row, idx, "CORREO"),
			Institution: strings.TrimSpace(cell(row, idx, "INSTITUCION")),
		})
	}
	return visitors, nil
}

// WriteEntriesReport renders report rows as a workbook with a header
// row followed by one row per entry.
func WriteEntriesReport(report []models.ReportRow, sheet string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := writeRow(f, sheet, 1, toCells(reportHeaders)); err != nil {
		return nil, err
	}
	for i, r := range report {
		row := []interface{}{r.ID, r.Name, r.DNI, r.Origin, r.Kind, r.Floor, r.Shift, r.Time, r.Date}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}

// TemplateWorkbook builds a header-only workbook for one of the two
// upload formats. ok is false for an unknown kind.
func TemplateWorkbook(kind string) (*bytes.Buffer, bool, error) {
	var headers []string
	switch kind {
	case "alumnos":
		headers = StudentHeaders
	case "visitantes":
		headers = VisitorHeaders
	default:
		return nil, false, nil
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := writeRow(f, "Sheet1", 1, toCells(headers)); err != nil {
		return nil, false, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, false, err
	}
	return buf, true, nil
}

// sheetRows opens a workbook, reads the first sheet, and returns its
// data rows plus a header-name to column-index map.
func sheetRows(r io.Reader) ([][]string, map[string]int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("hoja vacía")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}
	return rows[1:], idx, nil
}

func cell(row []string, idx map[string]int, header string) string {
	i, ok := idx[header]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func writeRow(f *excelize.File, sheet string, n int, values []interface{}) error {
	start, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, start, &values)
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}
