package models

import "time"

// EventType names an event published by the sync orchestrator.
type EventType string

const (
	EventSyncStarted             EventType = "sync_started"
	EventSyncFinished            EventType = "sync_finished"
	EventSyncFailed              EventType = "sync_failed"
	EventSafetyAbort             EventType = "safety_abort"
	EventSharedContactCorrected  EventType = "shared_contact_corrected"
	EventConnectionStatusChanged EventType = "connection_status_changed"
)

// Event is a single message on the orchestrator's event bus.
type Event struct {
	Type         EventType     `json:"type"`
	ConnectionID string        `json:"connectionId"`
	Direction    SyncDirection `json:"direction,omitempty"`
	At           time.Time     `json:"at"`
	Message      string        `json:"message,omitempty"`

	// Set on EventSharedContactCorrected.
	ContactID   string `json:"contactId,omitempty"`
	UID         string `json:"uid,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}
