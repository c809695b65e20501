package database

import (
	"database/sql"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/models"
)

// ListVisitors returns every visitor ordered by name.
func ListVisitors(db *sql.DB) ([]models.Visitor, error) {
	rows, err := db.Query("SELECT VisitanteID, NombreCompleto, DNI, Institucion, Correo FROM Visitantes ORDER BY NombreCompleto ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visitors []models.Visitor
	for rows.Next() {
		var v models.Visitor
		var email sql.NullString
		if err := rows.Scan(&v.ID, &v.FullName, &v.DNI, &v.Institution, &email); err != nil {
			return nil, err
		}
		v.Email = email.String
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

// VisitorExistsByDNI reports whether a visitor with the DNI is already
// registered. Callers use it as a pre-check before insert; the check
// and the insert are separate statements, so the database's own
// constraints are the last line of defense against a concurrent
// duplicate.
func VisitorExistsByDNI(db *sql.DB, dni string) (bool, error) {
	var one int
	err := db.QueryRow("SELECT 1 FROM Visitantes WHERE DNI = @p1", dni).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func InsertVisitor(db *sql.DB, v models.Visitor) error {
	_, err := db.Exec(
		"INSERT INTO Visitantes (NombreCompleto, DNI, Correo, Institucion) VALUES (@p1, @p2, @p3, @p4)",
		v.FullName, v.DNI, v.Email, v.Institution,
	)
	return err
}

// UpdateVisitor overwrites a visitor by id. No existence or DNI
// uniqueness re-check happens here.
func UpdateVisitor(db *sql.DB, v models.Visitor) error {
	_, err := db.Exec(
		"UPDATE Visitantes SET NombreCompleto=@p1, DNI=@p2, Correo=@p3, Institucion=@p4 WHERE VisitanteID=@p5",
		v.FullName, v.DNI, v.Email, v.Institution, v.ID,
	)
	return err
}

const insertVisitorIfAbsentSQL = `
IF NOT EXISTS (SELECT 1 FROM Visitantes WHERE DNI = @p1)
BEGIN
    INSERT INTO Visitantes (NombreCompleto, DNI, Correo, Institucion)
    VALUES (@p2, @p3, @p4, @p5)
END
`

// InsertVisitorIfAbsent adds a visitor only when the DNI is new,
// reporting whether a row was inserted. The visitor importer counts
// inserted rows only; existing visitors are left untouched.
func InsertVisitorIfAbsent(tx *sql.Tx, v models.Visitor) (bool, error) {
	res, err := tx.Exec(insertVisitorIfAbsentSQL,
		v.DNI,
		v.FullName, v.DNI, v.Email, v.Institution,
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
