package db

import (
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
)

// Dialect hides the few places where Postgres and MySQL disagree: identifier
// quoting, placeholders and casting.
type Dialect struct {
	Driver string
	Schema string
}

func NewDialect(driver, schema string) (Dialect, error) {
	d := strings.ToLower(strings.TrimSpace(driver))
	switch d {
	case "", "postgres", "postgresql", DriverPostgres:
		d = DriverPostgres
	case DriverMySQL:
	default:
		return Dialect{}, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return Dialect{Driver: d, Schema: strings.TrimSpace(schema)}, nil
}

// Quote quotes a single identifier. Names come from static allow-lists, but
// embedded quote characters are still doubled.
func (d Dialect) Quote(ident string) string {
	if d.Driver == DriverMySQL {
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Table returns the schema-qualified, quoted table name.
func (d Dialect) Table(name string) string {
	if d.Schema == "" {
		return d.Quote(name)
	}
	return d.Quote(d.Schema) + "." + d.Quote(name)
}

func (d Dialect) Placeholder() sq.PlaceholderFormat {
	if d.Driver == DriverMySQL {
		return sq.Question
	}
	return sq.Dollar
}

func (d Dialect) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.Placeholder())
}

// TextCast renders expr as text so LIKE works on non-text columns.
func (d Dialect) TextCast(expr string) string {
	if d.Driver == DriverMySQL {
		return "CAST(" + expr + " AS CHAR)"
	}
	return "CAST(" + expr + " AS TEXT)"
}

// IsDuplicateKey reports unique constraint violations for both drivers.
func (d Dialect) IsDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
