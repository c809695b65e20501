package database

import (
	"database/sql"
	"fmt"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/chavezjair441-afk/sisIngresoBiblioteca/app/config"
)

// Provider hands out database connections. Handlers open one connection
// per request and close it before responding; a failed Open means the
// backend is unavailable and the request is answered without running
// any statement.
type Provider interface {
	Open() (*sql.DB, error)
}

// SQLServerProvider builds connections from the environment-supplied
// driver/server/database/trusted parameters.
type SQLServerProvider struct {
	cfg config.Config
}

func NewProvider(cfg config.Config) *SQLServerProvider {
	return &SQLServerProvider{cfg: cfg}
}

func (p *SQLServerProvider) Open() (*sql.DB, error) {
	connStr := fmt.Sprintf("server=%s;database=%s;trusted_connection=%s",
		p.cfg.DBServer, p.cfg.DBDatabase, p.cfg.DBTrustedConnection)

	db, err := sql.Open(p.cfg.DBDriver, connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
