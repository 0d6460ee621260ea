package moderation

import (
	"errors"
	"strings"
)

// ErrInvalidStatus is returned when ChangeStatus receives an unknown status
var ErrInvalidStatus = errors.New("invalid place status")

// ValidationError reports which required submission fields were missing.
// No store write happens when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
