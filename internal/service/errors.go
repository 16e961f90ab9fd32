package service

import "errors"

var (
	// ErrMissingField marks a blank or absent required input.
	ErrMissingField = errors.New("required field missing")

	// ErrNotFound marks a referenced entity id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks a present but unacceptable input: exit
	// before entry, unknown billing mode, negative discount or
	// surcharge, duplicate unique values.
	ErrInvalidArgument = errors.New("invalid argument")
)
