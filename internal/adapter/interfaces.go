// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the bridge process that speaks the contact
// synchronization protocol to remote address-book servers.
//
// The bridge is a black-box JSON/HTTP API. [BridgeAdapter] hides its framing
// from the sync engine, and mapHTTPError turns bridge responses into the
// sentinel errors of this package so that callers can branch with
// [errors.Is] (for example [ErrServerUnavailable] for the pull safety gate).
package adapter

import (
	"context"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_adapter_mock.go -package=mock

// BridgeAdapter is the bridge API consumed by the sync engine.
type BridgeAdapter interface {
	// Discover opens connectionID on the bridge with the given server and
	// credentials and returns the address books of the account.
	Discover(ctx context.Context, connectionID string, req models.DiscoverRequest) ([]models.AddressBook, error)

	// Fetch returns the full remote enumeration of the connection. It
	// returns [ErrServerUnavailable] when the bridge signals that the remote
	// server is down; an empty slice is only returned for a successful
	// enumeration.
	Fetch(ctx context.Context, connectionID string) ([]models.RemoteContact, error)

	// Push creates or replaces the record req.UID in req.AddressBook and
	// returns its new identity. [ErrVersionConflict] is returned when the
	// bridge detects a concurrent remote change.
	Push(ctx context.Context, connectionID string, req models.PushRequest) (models.PushResponse, error)

	// Delete removes a remote record. [ErrNotFound] is returned when the
	// record is already gone.
	Delete(ctx context.Context, connectionID string, req models.DeleteRequest) error

	// Health reports the bridge's view of the connection.
	Health(ctx context.Context, connectionID string) (models.HealthResponse, error)
}
