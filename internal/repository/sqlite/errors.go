package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"neurotask/internal/repository"
)

// storeErr tags a driver failure as ErrUnavailable while keeping the cause.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(repository.ErrUnavailable, err))
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
