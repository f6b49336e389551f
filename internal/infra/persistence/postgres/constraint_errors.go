package postgres

import (
	"strings"

	"orderservice/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for constraint error checking. GORM translates driver errors when
// TranslateError is enabled; the message checks cover drivers without a translator.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") || strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") || strings.Contains(errMsg, "23503")
}
