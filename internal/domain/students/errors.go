package students

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentNumberTaken = errors.New("student number already exists")
)
