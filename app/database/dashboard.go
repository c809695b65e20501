package database

import (
	"database/sql"
	"fmt"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/models"
)

const topOriginsSQL = `
SELECT TOP 5 Origen, COUNT(*) as Cantidad FROM (
    SELECT A.Escuela as Origen FROM RegistroIngresos R JOIN Alumnos A ON R.AlumnoID = A.AlumnoID
    WHERE CAST(R.FechaHora AS DATE) = CAST(GETDATE() AS DATE)
    UNION ALL
    SELECT V.Institucion as Origen FROM RegistroIngresos R JOIN Visitantes V ON R.VisitanteID = V.VisitanteID
    WHERE CAST(R.FechaHora AS DATE) = CAST(GETDATE() AS DATE)
) as T GROUP BY Origen ORDER BY Cantidad DESC
`

const recentEntriesSQL = `
SELECT TOP 10 COALESCE(A.NombreCompleto, V.NombreCompleto), R.Piso, FORMAT(R.FechaHora, 'HH:mm:ss'),
COALESCE(A.Escuela, V.Institucion), CASE WHEN R.VisitanteID IS NOT NULL THEN 'Visitante' ELSE 'Alumno' END
FROM RegistroIngresos R
LEFT JOIN Alumnos A ON R.AlumnoID = A.AlumnoID
LEFT JOIN Visitantes V ON R.VisitanteID = V.VisitanteID
ORDER BY R.FechaHora DESC
`

// GetDashboardStats aggregates today's entry log for the admin panel:
// totals, per-floor counts, the hourly series, the top-5 origin ranking
// over both populations, and the ten most recent entries overall.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{ByFloor: make(map[int]int)}

	err := db.QueryRow("SELECT COUNT(*) FROM RegistroIngresos WHERE CAST(FechaHora AS DATE) = CAST(GETDATE() AS DATE)").
		Scan(&stats.TotalToday)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow("SELECT COUNT(*) FROM RegistroIngresos WHERE VisitanteID IS NOT NULL AND CAST(FechaHora AS DATE) = CAST(GETDATE() AS DATE)").
		Scan(&stats.VisitorsToday)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT Piso, COUNT(*) FROM RegistroIngresos WHERE CAST(FechaHora AS DATE) = CAST(GETDATE() AS DATE) GROUP BY Piso")
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var floor, count int
		if err := rows.Scan(&floor, &count); err != nil {
			rows.Close()
			return nil, err
		}
		stats.ByFloor[floor] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = db.Query(`SELECT DATEPART(HOUR, FechaHora) as Hora, COUNT(*)
		FROM RegistroIngresos WHERE CAST(FechaHora AS DATE) = CAST(GETDATE() AS DATE)
		GROUP BY DATEPART(HOUR, FechaHora) ORDER BY Hora`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var hour, count int
		if err := rows.Scan(&hour, &count); err != nil {
			rows.Close()
			return nil, err
		}
		stats.ByHour = append(stats.ByHour, models.ChartPoint{
			Label: fmt.Sprintf("%d:00", hour),
			Value: count,
		})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = db.Query(topOriginsSQL)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var origin sql.NullString
		var count int
		if err := rows.Scan(&origin, &count); err != nil {
			rows.Close()
			return nil, err
		}
		stats.TopOrigins = append(stats.TopOrigins, models.ChartPoint{
			Label: origin.String,
			Value: count,
		})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = db.Query(recentEntriesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var e models.RecentEntry
		var name, origin sql.NullString
		if err := rows.Scan(&name, &e.Floor, &e.Time, &origin, &e.Kind); err != nil {
			return nil, err
		}
		e.Name = name.String
		e.Origin = origin.String
		stats.Recent = append(stats.Recent, e)
	}
	return stats, rows.Err()
}
