package models

// Student mirrors a row of the Alumnos table. DNI and the enrollment
// code stay strings end to end so leading zeros survive the round trip
// through spreadsheets and SQL.
type Student struct {
	ID                 int    `json:"alumno_id"`
	FullName           string `json:"nombre_completo"`
	DNI                string `json:"dni"`
	EnrollmentCode     string `json:"codigo_matricula"`
	InstitutionalEmail string `json:"correo_institucional,omitempty"`
	PersonalEmail      string `json:"correo_personal,omitempty"`
	School             string `json:"escuela"`
	Faculty            string `json:"facultad,omitempty"`
	Semester           string `json:"semestre"`
	Active             bool   `json:"estado"`
}
