// Package pgerrs maps PostgreSQL and GORM failures onto the errs taxonomy so
// repositories never hand raw driver errors to the application layer.
package pgerrs

import (
	"errors"

	"wms/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes PostgreSQL reports for integrity constraint failures.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// IsUniqueViolation recognises duplicate-key failures both when GORM runs with
// TranslateError and when it passes the pgx error through untouched.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsForeignKeyViolation recognises writes that point at a row which is gone.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// TranslateWrite converts a failed insert/update of paramName. Unique
// violations become errs.ObjectAlreadyExistsError and foreign key violations
// errs.ReferenceIsMissingError; anything else is returned as is.
func TranslateWrite(err error, paramName string) error {
	switch {
	case IsUniqueViolation(err):
		return errs.NewObjectAlreadyExistsErrorWithCause(paramName, err)
	case IsForeignKeyViolation(err):
		return errs.NewReferenceIsMissingErrorWithCause(paramName, err)
	default:
		return err
	}
}
