package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoControlAddress    = errors.New("control API address is empty")
)
