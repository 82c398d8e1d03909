package employee

import "errors"

var (
	ErrInvalidID         = errors.New("employee: invalid id")
	ErrInvalidHourlyRate = errors.New("employee: invalid hourly rate")
	ErrInvalidFullName   = errors.New("employee: invalid full name")
	ErrEmployeeNotFound  = errors.New("employee: not found")
)
