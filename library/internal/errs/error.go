package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateISBN = errors.New("isbn already exists")
)
