package fees

import "errors"

var (
	ErrValidation       = errors.New("invalid input")
	ErrCategoryNotFound = errors.New("fee category not found")
	ErrRecordNotFound   = errors.New("fee record not found")
	ErrRecordClosed     = errors.New("fee record is not payable")
)
