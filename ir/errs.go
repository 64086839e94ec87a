package ir

import "errors"

var (
	ErrNotDict  = errors.New("not a dictionary")
	ErrNotArray = errors.New("not an array")
	ErrNoEntry  = errors.New("no such entry")
)
