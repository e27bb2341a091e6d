package pg

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes we translate into domain errors.
const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pqCode(err) == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pqCode(err) == foreignKeyViolation
}
