package sqlkv

import (
	"fmt"
	"strconv"
)

// Dialect selects the driver, placeholder style and migration set.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

type dialectQueries struct {
	driver       string
	gooseDialect string
	migrations   string

	get    string
	set    string
	delete string
}

func getDialectQueries(d Dialect) (*dialectQueries, error) {
	var ph func(int) string
	dq := &dialectQueries{}

	switch d {
	case SQLite:
		ph = func(int) string { return "?" }
		dq.driver = "sqlite"
		dq.gooseDialect = "sqlite3"
		dq.migrations = "sqlite"
	case Postgres:
		ph = func(n int) string { return "$" + strconv.Itoa(n) }
		dq.driver = "pgx"
		dq.gooseDialect = "postgres"
		dq.migrations = "postgres"
	default:
		return nil, fmt.Errorf("unsupported dialect %q", d)
	}

	dq.get = `SELECT value FROM storage WHERE key = ` + ph(1)
	dq.set = `INSERT INTO storage (key, value) VALUES (` + ph(1) + `, ` + ph(2) + `)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	dq.delete = `DELETE FROM storage WHERE key = ` + ph(1)
	return dq, nil
}
