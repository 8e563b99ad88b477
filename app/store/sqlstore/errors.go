package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"taskmanager/app/models"
)

// pgForeignKeyViolation is SQLSTATE foreign_key_violation.
const pgForeignKeyViolation = "23503"

// translate maps driver errors onto the models error taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", models.ErrForeignKey, pgErr.ConstraintName)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && isSQLiteForeignKey(liteErr) {
		return fmt.Errorf("%w: %s", models.ErrForeignKey, liteErr.Error())
	}
	return err
}

func isSQLiteForeignKey(err *sqlite.Error) bool {
	if err.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	// Without extended result codes only the primary code is reported.
	return err.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(err.Error(), "FOREIGN KEY")
}
