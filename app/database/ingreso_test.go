package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRegisterEntryReadsOutputs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("sp_RegistrarIngreso").
		WithArgs("12345678", 1).
		WillReturnRows(sqlmock.NewRows([]string{"msg", "nombre", "escuela", "semestre"}).
			AddRow("ACCESO CONCEDIDO", "QUISPE MAMANI, ROSA", "SISTEMAS", "VII"))

	result, err := RegisterEntry(db, "12345678", 1)
	if err != nil {
		t.Fatal(err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Message != "ACCESO CONCEDIDO" || result.Name != "QUISPE MAMANI, ROSA" ||
		result.School != "SISTEMAS" || result.Semester != "VII" {
		t.Errorf("unexpected result: %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRegisterEntryNullOutputs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("sp_RegistrarIngreso").
		WithArgs("99999999", 3).
		WillReturnRows(sqlmock.NewRows([]string{"msg", "nombre", "escuela", "semestre"}).
			AddRow("CODIGO NO ENCONTRADO", nil, nil, nil))

	result, err := RegisterEntry(db, "99999999", 3)
	if err != nil {
		t.Fatal(err)
	}
	if result.Message != "CODIGO NO ENCONTRADO" {
		t.Errorf("unexpected message %q", result.Message)
	}
	if result.Name != "" || result.School != "" || result.Semester != "" {
		t.Errorf("NULL outputs must scan as empty strings: %+v", result)
	}
}

func TestRegisterEntryNoRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("sp_RegistrarIngreso").
		WithArgs("12345678", 2).
		WillReturnError(sql.ErrNoRows)

	result, err := RegisterEntry(db, "12345678", 2)
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Errorf("expected nil result for an empty batch, got %+v", result)
	}
}

func TestRegisterEntryQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("sp_RegistrarIngreso").
		WillReturnError(errors.New("conexión perdida"))

	if _, err := RegisterEntry(db, "12345678", 1); err == nil {
		t.Fatal("expected the driver error to surface")
	}
}
