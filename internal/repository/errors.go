package repository

import "errors"

// ErrNotFound is returned (possibly wrapped) when a requested record does
// not exist. Services translate it into their own taxonomy.
var ErrNotFound = errors.New("record not found")
