package model

import "errors"

var (
	// ErrInvalidVideo marks a VideoRecord that must not enter the engines.
	ErrInvalidVideo = errors.New("invalid video record")
	// ErrInvalidRequest marks a malformed stage request.
	ErrInvalidRequest = errors.New("invalid request")
)
