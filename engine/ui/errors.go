package ui

import "errors"

var (
	ErrUnknownFlag        = errors.New("unknown slider flag")
	ErrUnknownOrientation = errors.New("unknown orientation")
	ErrBadProperty        = errors.New("bad property value")
)
