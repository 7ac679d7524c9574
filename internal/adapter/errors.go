package adapter

import "errors"

var (
	ErrNoValidMode      = errors.New("no valid connection mode")
	ErrIncompleteTarget = errors.New("target is incomplete")
	ErrPathTooLong      = errors.New("socket path too long")
	ErrNotFound         = errors.New("target not found")
	ErrConnectRefused   = errors.New("connection refused or unreachable")
	ErrAlreadyConnected = errors.New("already connected")

	ErrNotConnected = errors.New("not connected")
	ErrRemoteClosed = errors.New("remote closed the connection")
	ErrIO           = errors.New("i/o error")
)
