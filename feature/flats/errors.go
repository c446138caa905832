package flats

import (
	"errors"
	"fmt"

	"flat-monitor/feature/flats/models"
)

// ErrStorage marks a failure of the underlying database.
var ErrStorage = errors.New("flat storage error")

// ErrValidation marks a malformed flat record. It is the models sentinel,
// re-exported for callers of this package.
var ErrValidation = models.ErrValidation

// storageError wraps a database failure so that errors.Is sees both ErrStorage and the cause.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
