package persistence

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// translateError converts gorm and driver errors into domain errors.
func translateError(err error, entity, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewNotFoundError(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.NewConflictError(entity, "already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.NewNotFoundError(entity, id)
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return domain.NewUnavailableError("store", err.Error())
	default:
		return fmt.Errorf("%s store: %w", entity, err)
	}
}
