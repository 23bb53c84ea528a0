// Package server runs the control API of the contactsync daemon.
//
// It owns the HTTP listener lifecycle: startup, signal handling and
// graceful shutdown. Long-lived requests such as event streams are
// released when shutdown begins.
package server
