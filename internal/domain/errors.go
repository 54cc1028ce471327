package domain

import "errors"

// ErrValidation marks caller input the core rejects synchronously.
// Wrap it with detail: fmt.Errorf("%w: title is required", ErrValidation).
var ErrValidation = errors.New("validation failed")
