package repository

import (
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
)

const (
	pqStringTooLong       = "22001"
	pqNumericOutOfRange   = "22003"
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

// translateWriteError maps constraint violations reported by Postgres onto the
// domain error taxonomy. Other errors are wrapped with action.
func translateWriteError(err error, action string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return domain.Invalid(pqErr.Constraint, "referenced row does not exist: %s", pqErr.Detail)
		case pqCheckViolation:
			return domain.Invalid(pqErr.Constraint, "product data constraint violation: %s", pqErr.Message)
		case pqStringTooLong, pqNumericOutOfRange:
			return domain.Invalid(pqErr.Column, "value out of range: %s", pqErr.Message)
		case pqUniqueViolation:
			return fmt.Errorf("%s: %s: %w", action, pqErr.Detail, domain.ErrConflict)
		}
	}
	return fmt.Errorf("could not %s: %w", action, err)
}

func int64Array(ids []int) interface{} {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return pq.Array(out)
}
