package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"jobledger/internal/usecase/interfaces"

	"gorm.io/gorm"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// isDuplicateKeyErr recognises unique constraint violations across the
// supported drivers.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	// PostgreSQL (23505)
	if strings.Contains(msg, "duplicate key value violates unique constraint") || strings.Contains(msg, "SQLSTATE 23505") {
		return true
	}
	// MySQL (1062)
	if strings.Contains(msg, "Error 1062") {
		return true
	}
	// SQLite (2067)
	return strings.Contains(msg, "UNIQUE constraint failed")
}

func translateWriteErr(err error) error {
	if isDuplicateKeyErr(err) {
		return fmt.Errorf("%w: %v", interfaces.ErrDuplicateIdentifier, err)
	}
	return err
}
