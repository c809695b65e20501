package database

import (
	"database/sql"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/models"
)

const entriesBetweenSQL = `
SELECT
    R.RegistroID as ID,
    COALESCE(A.NombreCompleto, V.NombreCompleto) as Persona,
    COALESCE(A.DNI, V.DNI) as DNI,
    COALESCE(A.Escuela, V.Institucion) as Origen,
    CASE WHEN R.VisitanteID IS NOT NULL THEN 'VISITANTE' ELSE 'ALUMNO' END as Tipo,
    R.Piso as Piso_Acceso,
    R.Turno,
    FORMAT(R.FechaHora, 'HH:mm:ss') as Hora,
    FORMAT(R.FechaHora, 'dd/MM/yyyy') as Fecha
FROM RegistroIngresos R
LEFT JOIN Alumnos A ON R.AlumnoID = A.AlumnoID
LEFT JOIN Visitantes V ON R.VisitanteID = V.VisitanteID
WHERE CAST(R.FechaHora AS DATE) >= @p1
AND CAST(R.FechaHora AS DATE) <= @p2
ORDER BY R.FechaHora DESC
`

// GetEntriesBetween returns every entry whose calendar date falls in
// the inclusive [from, to] range, students and visitors uniformly.
// The today report is the same query with from == to == today.
func GetEntriesBetween(db *sql.DB, from, to string) ([]models.ReportRow, error) {
	rows, err := db.Query(entriesBetweenSQL, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []models.ReportRow
	for rows.Next() {
		var r models.ReportRow
		var name, dni, origin, shift sql.NullString
		if err := rows.Scan(&r.ID, &name, &dni, &origin, &r.Kind, &r.Floor, &shift, &r.Time, &r.Date); err != nil {
			return nil, err
		}
		r.Name = name.String
		r.DNI = dni.String
		r.Origin = origin.String
		r.Shift = shift.String
		report = append(report, r)
	}
	return report, rows.Err()
}
