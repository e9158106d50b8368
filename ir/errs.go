package ir

import (
	"errors"
)

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrEncoding        = errors.New("encoding error")
)
