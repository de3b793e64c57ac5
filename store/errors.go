package store

import "errors"

// ErrCodeExists is returned when a Save would overwrite an existing code.
//
// This is a store-layer sentinel used internally; the shorty package may
// translate it into its public error contract.
var ErrCodeExists = errors.New("code already exists")
