package places

import "errors"

var (
	ErrNotFound  = errors.New("place not found")
	ErrForbidden = errors.New("forbidden")
)
