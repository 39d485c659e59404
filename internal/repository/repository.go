package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"donation-service/internal/entity"
)

const mysqlDuplicateEntry = 1062

// translate folds driver- and pool-level failures into the shared error
// taxonomy so callers never match on database/sql or driver types.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return entity.ErrStoreTimeout
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return entity.ErrAlreadyExists
	}
	return err
}
