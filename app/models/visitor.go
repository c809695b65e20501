package models

// DefaultInstitution is stored whenever a visitor is created or updated
// without an institution.
const DefaultInstitution = "Sin Institución"

// Visitor mirrors a row of the Visitantes table.
type Visitor struct {
	ID          int    `json:"id"`
	FullName    string `json:"nombre"`
	DNI         string `json:"dni"`
	Email       string `json:"correo"`
	Institution string `json:"institucion"`
}
