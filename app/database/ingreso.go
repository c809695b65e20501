package database

import (
	"database/sql"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/models"
)

const registerEntrySQL = `
DECLARE @out_msg nvarchar(100);
DECLARE @out_nombre nvarchar(250);
DECLARE @out_escuela nvarchar(100);
DECLARE @out_semestre varchar(20);

EXEC sp_RegistrarIngreso @p1, @p2, @out_msg OUTPUT, @out_nombre OUTPUT, @out_escuela OUTPUT, @out_semestre OUTPUT;

SELECT @out_msg, @out_nombre, @out_escuela, @out_semestre;
`

// RegisterEntry runs sp_RegistrarIngreso for a scanned code on a floor
// and returns its four output values. The procedure owns all business
// rules (person lookup, shift deduplication, entry-log insert); this
// side only reads back the message and the person data. A nil result
// with nil error means the batch produced no row.
func RegisterEntry(db *sql.DB, code string, floor int) (*models.ScanResult, error) {
	var msg, name, school, semester sql.NullString

	err := db.QueryRow(registerEntrySQL, code, floor).Scan(&msg, &name, &school, &semester)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.ScanResult{
		Message:  msg.String,
		Name:     name.String,
		School:   school.String,
		Semester: semester.String,
	}, nil
}
