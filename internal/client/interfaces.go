// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// ControlClient is the set of daemon operations available to the control
// CLI.
type ControlClient interface {
	Connect(ctx context.Context, cfg models.ConnectConfig) (models.ConnectResult, error)
	Disconnect(ctx context.Context, connectionID string) (models.OperationResult, error)

	Pull(ctx context.Context, connectionID string) (models.PullResult, error)
	Push(ctx context.Context, connectionID string) (models.BatchResult, error)
	Protect(ctx context.Context, connectionID string) (models.ProtectionResult, error)

	Schedule(ctx context.Context, connectionID string, req models.ScheduleRequest) (models.OperationResult, error)
	Unschedule(ctx context.Context, connectionID string) (models.OperationResult, error)

	Status(ctx context.Context, connectionID string) (models.ConnectionStatus, error)
	Version(ctx context.Context) (string, error)

	// Events calls fn for every event until ctx ends, the stream closes or
	// fn returns an error. An empty connectionID streams all connections.
	Events(ctx context.Context, connectionID string, fn func(models.Event) error) error
}
