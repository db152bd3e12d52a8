package config

import "errors"

// ErrMissingArgument indicates that a required value was not given.
var ErrMissingArgument = errors.New("config: missing argument")

// ErrInvalidArgument indicates that a given value failed validation.
var ErrInvalidArgument = errors.New("config: invalid argument")
