package repository

import "errors"

// Sentinel errors returned by repository implementations. Services translate
// them into the apperror taxonomy.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("referenced record does not exist")
)
