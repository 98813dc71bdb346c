package postgres

import (
	"database/sql"
)

// Queryer é o subconjunto de operações do banco que os repositórios usam.
// *Connection satisfaz a interface através do *sql.DB embutido.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
