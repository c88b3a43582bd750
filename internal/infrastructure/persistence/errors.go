package persistence

import (
	"errors"
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translate maps driver errors onto domain errors. Unique violations arrive
// as gorm.ErrDuplicatedKey when the dialector translates them; the message
// checks cover connections opened without TranslateError.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "SQLSTATE 23505"),
		strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return shared.WrapDomainError(shared.CodeConflict, shared.ErrConflict.Message, err)
	default:
		return err
	}
}

// affected turns a zero-row update or delete into NOT_FOUND
func affected(result *gorm.DB) error {
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
