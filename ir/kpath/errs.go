package kpath

import "errors"

var ErrParse = errors.New("key path parse error")
