// Command import_students loads a full student roster spreadsheet
// directly into the database, inserting only DNIs that do not exist
// yet. Meant for the initial seeding of the Alumnos table; day-to-day
// updates go through the admin upload, which also refreshes existing
// records.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/config"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/database"
	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/excel"
)

func main() {
	path := flag.String("archivo", "lista_alumnos.xlsx", "ruta del Excel con la lista de alumnos")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Archivo .env no encontrado, usando variables del sistema")
	}

	file, err := os.Open(*path)
	if err != nil {
		log.Fatalf("No se pudo abrir '%s': %v", *path, err)
	}
	defer file.Close()

	log.Println("Leyendo archivo Excel...")
	students, err := excel.ReadStudentRosterFull(file)
	if err != nil {
		log.Fatalf("Error leyendo el Excel: %v", err)
	}

	provider := database.NewProvider(config.Load())
	db, err := provider.Open()
	if err != nil {
		log.Fatalf("Error de conexión BD: %v", err)
	}
	defer db.Close()

	log.Printf("Iniciando carga de %d alumnos...", len(students))

	inserted, failed := 0, 0
	for i, s := range students {
		if s.DNI == "" {
			continue
		}
		ok, err := database.InsertStudentIfAbsent(db, s)
		if err != nil {
			log.Printf("Error en fila %d (DNI %s): %v", i+2, s.DNI, err)
			failed++
			continue
		}
		if ok {
			inserted++
			if inserted%50 == 0 {
				log.Printf("Van %d alumnos...", inserted)
			}
		}
	}

	log.Printf("Proceso terminado: %d insertados, %d duplicados u omitidos, %d errores",
		inserted, len(students)-inserted-failed, failed)
}
