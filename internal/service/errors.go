package service

import "errors"

// ErrMissingField is returned when a request body omits a value the store
// needs. Handlers report it like any other failure.
var ErrMissingField = errors.New("missing field")
