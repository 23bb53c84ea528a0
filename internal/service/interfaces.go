package service

import (
	"context"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the engine API exposed to the surrounding application.
// Every method returns a structured result and never panics.
type SyncService interface {
	Connect(ctx context.Context, cfg models.ConnectConfig) models.ConnectResult
	Disconnect(ctx context.Context, connectionID string) models.OperationResult

	Pull(ctx context.Context, connectionID string) models.PullResult
	PushAll(ctx context.Context, connectionID string) models.BatchResult
	Protect(ctx context.Context, connectionID string) models.ProtectionResult

	StartScheduledSync(ctx context.Context, connectionID string, schedule models.Schedule) models.OperationResult
	StopScheduledSync(ctx context.Context, connectionID string) models.OperationResult

	GetStatus(ctx context.Context, connectionID string) models.ConnectionStatus

	// Subscribe returns a stream of engine events and a function that ends
	// the subscription.
	Subscribe(buffer int) (<-chan models.Event, func())
}

// AppInfoService reports build information of the daemon.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Puller runs one pull cycle for a connection.
type Puller interface {
	Pull(ctx context.Context, connectionID string) models.PullResult
}

// Pusher pushes local contacts to a connection.
type Pusher interface {
	PushOne(ctx context.Context, contact models.LocalContact, connectionID string, opts models.PushOptions) models.PushResult
	PushBatch(ctx context.Context, contacts []models.LocalContact, connectionID string, concurrency int) models.BatchResult
	PushAll(ctx context.Context, connectionID string) models.BatchResult
}

// Protector keeps SHARED contacts intact on servers without access control.
type Protector interface {
	DetectUnauthorizedEdits(ctx context.Context, connectionID string) models.ProtectionResult
	RefreshShared(ctx context.Context, connectionID string) models.ProtectionResult
}

// ChangeSuppressor raises the in-flight flag of the local store's change
// notifications until the returned function is called.
type ChangeSuppressor interface {
	Suppress() (release func())
}

// IDGenerator produces identifiers for connections and contact UIDs.
type IDGenerator interface {
	Generate() string
}
