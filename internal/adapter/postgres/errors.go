package postgres

import (
	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"

	"github.com/lib/pq"
)

// storageError translates driver failures into typed domain errors.
// Constraint violations surface as conflicts so the schema-level unique
// and foreign-key rules back up the service pre-checks.
func storageError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return domain.Conflict("a record with that value already exists")
		case "23503":
			return domain.Conflict("the referenced record does not exist")
		case "23502":
			return domain.Conflict("a required field is missing")
		}
	}
	return domain.StorageUnavailable("storage backend unavailable")
}
