// Package http implements the control API of the contactsync daemon.
//
// It exposes route wiring, request handlers and middleware. Request
// tracing, access logging, response compression and optional bearer-token
// authentication are handled here before a request reaches the sync
// service. Sync results are returned as JSON bodies; a failed result is
// answered with a status derived from its error.
package http
