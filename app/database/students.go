package database

import (
	"database/sql"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/models"
)

// UpsertStudent inserts a student or, when the DNI already exists,
// updates the mutable fields and reactivates the record. Runs inside
// the caller's transaction so a whole roster commits at once.
func UpsertStudent(tx *sql.Tx, s models.Student) error {
	var id int
	err := tx.QueryRow("SELECT AlumnoID FROM Alumnos WHERE DNI = @p1", s.DNI).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(
			"INSERT INTO Alumnos (NombreCompleto, DNI, CodigoMatricula, Escuela, Semestre) VALUES (@p1, @p2, @p3, @p4, @p5)",
			s.FullName, s.DNI, s.EnrollmentCode, s.School, s.Semester,
		)
		return err
	case err != nil:
		return err
	default:
		_, err = tx.Exec(
			"UPDATE Alumnos SET NombreCompleto=@p1, CodigoMatricula=@p2, Escuela=@p3, Semestre=@p4, Estado=1 WHERE DNI=@p5",
			s.FullName, s.EnrollmentCode, s.School, s.Semester, s.DNI,
		)
		return err
	}
}

const insertStudentIfAbsentSQL = `
IF NOT EXISTS (SELECT 1 FROM Alumnos WHERE DNI = @p1)
BEGIN
    INSERT INTO Alumnos (NombreCompleto, DNI, CodigoMatricula, CorreoInstitucional, CorreoPersonal, Escuela, Facultad, Semestre)
    VALUES (@p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9)
END
`

// InsertStudentIfAbsent adds a student only when the DNI is new,
// reporting whether a row was actually inserted. Used by the bulk
// loader, which never touches existing records.
func InsertStudentIfAbsent(db *sql.DB, s models.Student) (bool, error) {
	res, err := db.Exec(insertStudentIfAbsentSQL,
		s.DNI,
		s.FullName, s.DNI, s.EnrollmentCode, s.InstitutionalEmail, s.PersonalEmail,
		s.School, s.Faculty, s.Semester,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
