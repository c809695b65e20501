package admin

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
)

type fakeProvider struct {
	db    *sql.DB
	err   error
	opens int
}

func (p *fakeProvider) Open() (*sql.DB, error) {
	p.opens++
	if p.err != nil {
		return nil, p.err
	}
	return p.db, nil
}

func newApp(p database.Provider) *fiber.App {
	app := fiber.New()
	SetupAdminRoutes(app, p)
	return app
}

func buildRoster(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		start, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", start, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (io.Reader, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return body, w.FormDataContentType()
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	defer resp.Body.Close()
	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	return payload
}

func TestUploadStudentsUpsertsAndSkipsShortDNIs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}

	content := buildRoster(t, [][]interface{}{
		{"APELLIDOS Y NOMBRE", "DNI", "CODIGO DE MATRICULA", "ESCUELA", "SEMESTRE"},
		{"QUISPE MAMANI, ROSA", "06012345", "2021100456", "SISTEMAS", "VII"},
		{"FILA ROTA", "123", "", "DERECHO", "I"},
		{"GARCIA LOPEZ, JUAN", "71234567", "2020100123", "ENFERMERIA", "III"},
	})

	mock.ExpectBegin()
	// existing student: update + reactivate
	mock.ExpectQuery("SELECT AlumnoID FROM Alumnos").
		WithArgs("06012345").
		WillReturnRows(sqlmock.NewRows([]string{"AlumnoID"}).AddRow(42))
	mock.ExpectExec("UPDATE Alumnos SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// short DNI row produces no statements at all
	mock.ExpectQuery("SELECT AlumnoID FROM Alumnos").
		WithArgs("71234567").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO Alumnos").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body, contentType := multipartUpload(t, "archivo_excel", "alumnos.xlsx", content)
	req := httptest.NewRequest(http.MethodPost, "/admin/subir_excel", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := newApp(&fakeProvider{db: db}).Test(req)
	if err != nil {
		t.Fatal(err)
	}
	payload := decodeJSON(t, resp)

	if payload["status"] != "success" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["msg"] != "Procesados 2 alumnos." {
		t.Errorf("msg = %q, want 2 processed (short DNI skipped)", payload["msg"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUploadStudentsMissingFile(t *testing.T) {
	provider := &fakeProvider{}
	req := httptest.NewRequest(http.MethodPost, "/admin/subir_excel", nil)

	resp, err := newApp(provider).Test(req)
	if err != nil {
		t.Fatal(err)
	}
	payload := decodeJSON(t, resp)

	if payload["status"] != "error" || payload["msg"] != "Falta archivo" {
		t.Errorf("unexpected payload: %v", payload)
	}
	if provider.opens != 0 {
		t.Error("missing file must not open a connection")
	}
}

func TestUploadStudentsRowFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}

	content := buildRoster(t, [][]interface{}{
		{"APELLIDOS Y NOMBRE", "DNI", "CODIGO DE MATRICULA", "ESCUELA", "SEMESTRE"},
		{"QUISPE MAMANI, ROSA", "06012345", "2021100456", "SISTEMAS", "VII"},
	})

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT AlumnoID FROM Alumnos").
		WillReturnError(io.ErrUnexpectedEOF)
	mock.ExpectRollback()

	body, contentType := multipartUpload(t, "archivo_excel", "alumnos.xlsx", content)
	req := httptest.NewRequest(http.MethodPost, "/admin/subir_excel", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := newApp(&fakeProvider{db: db}).Test(req)
	if err != nil {
		t.Fatal(err)
	}
	payload := decodeJSON(t, resp)

	if payload["status"] != "error" {
		t.Errorf("unexpected payload: %v", payload)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestReportRangeMissingParams(t *testing.T) {
	provider := &fakeProvider{}
	app := newApp(provider)

	for _, target := range []string{
		"/admin/reporte_rango",
		"/admin/reporte_rango?inicio=2026-03-01",
		"/admin/reporte_rango?fin=2026-03-05",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, resp.StatusCode)
		}
		text, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(text) != "Error: Debes seleccionar ambas fechas" {
			t.Errorf("%s: body = %q", target, text)
		}
	}
	if provider.opens != 0 {
		t.Error("missing dates must not open a connection")
	}
}

func TestReportRangeDownloadsWorkbook(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}

	cols := []string{"ID", "Persona", "DNI", "Origen", "Tipo", "Piso_Acceso", "Turno", "Hora", "Fecha"}
	mock.ExpectQuery("FROM RegistroIngresos R").
		WithArgs("2026-03-01", "2026-03-05").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(9, "PEREZ, ANA", "04567890", "UNMSM", "VISITANTE", 1, "MAÑANA", "10:05:33", "05/03/2026"))

	req := httptest.NewRequest(http.MethodGet, "/admin/reporte_rango?inicio=2026-03-01&fin=2026-03-05", nil)
	resp, err := newApp(&fakeProvider{db: db}).Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="Reporte_2026-03-01_al_2026-03-05.xlsx"` {
		t.Errorf("unexpected disposition %q", cd)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows("Reporte_Rango")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][1] != "PEREZ, ANA" {
		t.Errorf("unexpected sheet contents: %v", rows)
	}
}

func TestReportTodayUsesTodayBounds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}

	today := time.Now().Format("2006-01-02")
	cols := []string{"ID", "Persona", "DNI", "Origen", "Tipo", "Piso_Acceso", "Turno", "Hora", "Fecha"}
	mock.ExpectQuery("FROM RegistroIngresos R").
		WithArgs(today, today).
		WillReturnRows(sqlmock.NewRows(cols))

	resp, err := newApp(&fakeProvider{db: db}).Test(httptest.NewRequest(http.MethodGet, "/admin/reporte_hoy", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestTemplateDownloads(t *testing.T) {
	app := newApp(&fakeProvider{})

	for tipo, firstHeader := range map[string]string{
		"alumnos":    "APELLIDOS Y NOMBRE",
		"visitantes": "NOMBRE",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/plantilla/"+tipo, nil))
		if err != nil {
			t.Fatal(err)
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status = %d", tipo, resp.StatusCode)
		}
		f, err := excelize.OpenReader(bytes.NewReader(raw))
		if err != nil {
			t.Fatal(err)
		}
		rows, err := f.GetRows(f.GetSheetName(0))
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if len(rows) != 1 {
			t.Errorf("%s: expected header row only, got %d rows", tipo, len(rows))
		}
		if rows[0][0] != firstHeader {
			t.Errorf("%s: first header = %q, want %q", tipo, rows[0][0], firstHeader)
		}
	}
}

func TestTemplateUnknownType(t *testing.T) {
	resp, err := newApp(&fakeProvider{}).Test(httptest.NewRequest(http.MethodGet, "/admin/plantilla/docentes", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	text, _ := io.ReadAll(resp.Body)
	if string(text) != "Error: Tipo de plantilla no válido" {
		t.Errorf("body = %q", text)
	}
}
