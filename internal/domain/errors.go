package domain

import "errors"

// Persistence errors. Repositories translate driver-level failures into
// these so that services never depend on gorm or pgx error types.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
