package service

import "errors"

var (
	ErrNotFound      = errors.New("not_found")
	ErrInvalidSerial = errors.New("invalid_serial")
)
