package models

import "time"

// ErrorKind classifies a per-contact failure.
type ErrorKind string

const (
	ErrorKindTransport         ErrorKind = "transport"
	ErrorKindServerUnavailable ErrorKind = "server-unavailable"
	ErrorKindConflict          ErrorKind = "conflict"
	ErrorKindStore             ErrorKind = "store"
	ErrorKindInvalid           ErrorKind = "invalid"
)

// ErrorCode classifies the error of a whole operation result. Clients and
// the control API branch on it instead of the message text.
type ErrorCode string

const (
	ErrorCodeNotFound          ErrorCode = "not-found"
	ErrorCodeAlreadyExists     ErrorCode = "already-exists"
	ErrorCodeInvalid           ErrorCode = "invalid"
	ErrorCodeIntegrityGuard    ErrorCode = "integrity-guard"
	ErrorCodeCancelled         ErrorCode = "cancelled"
	ErrorCodeServerUnavailable ErrorCode = "server-unavailable"
	ErrorCodeUnauthorized      ErrorCode = "unauthorized"
	ErrorCodeUpstream          ErrorCode = "upstream"
	ErrorCodeInternal          ErrorCode = "internal"
)

// ContactError is a single per-contact failure collected into a result.
type ContactError struct {
	ContactID string    `json:"contactId,omitempty"`
	UID       string    `json:"uid,omitempty"`
	Kind      ErrorKind `json:"kind"`
	Message   string    `json:"message"`
}

// PullResult summarises one pull cycle.
//
// Aborted is set when the bridge reported the remote server unavailable and
// nothing was imported or deleted. DeletionAborted is set when the data
// integrity guard refused to apply server-side deletions; imports and
// updates of that cycle still happened.
type PullResult struct {
	ConnectionID string `json:"connectionId"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	Code         ErrorCode `json:"code,omitempty"`

	Aborted         bool   `json:"aborted"`
	DeletionAborted bool   `json:"deletionAborted"`
	AbortReason     string `json:"abortReason,omitempty"`

	Created                int `json:"created"`
	Updated                int `json:"updated"`
	Skipped                int `json:"skipped"`
	Failed                 int `json:"failed"`
	OrphansDeleted         int `json:"orphansDeleted"`
	ServerDeletionsApplied int `json:"serverDeletionsApplied"`
	ServerDeletionsSkipped int `json:"serverDeletionsSkipped"`

	Errors   []ContactError `json:"errors,omitempty"`
	Duration time.Duration  `json:"duration"`
}

// PushStatus is the outcome of a single push.
type PushStatus string

const (
	PushStatusPushed  PushStatus = "pushed"
	PushStatusSkipped PushStatus = "skipped"
	PushStatusFailed  PushStatus = "failed"
)

// PushOptions tunes a single push.
type PushOptions struct {
	// Force bypasses the change-skip check. Used by shared-contact
	// protection to overwrite remote edits.
	Force bool
}

// PushResult is the outcome of pushing one contact.
type PushResult struct {
	ContactID   string     `json:"contactId"`
	UID         string     `json:"uid,omitempty"`
	Status      PushStatus `json:"status"`
	Reason      string     `json:"reason,omitempty"`
	ETag        string     `json:"etag,omitempty"`
	Href        string     `json:"href,omitempty"`
	AddressBook string     `json:"addressBook,omitempty"`
	Err         error      `json:"-"`
}

// BatchResult aggregates the outcome of a batch push. Results are kept in
// input order.
type BatchResult struct {
	ConnectionID string         `json:"connectionId"`
	Success      bool           `json:"success"`
	Error        string         `json:"error,omitempty"`
	Code         ErrorCode      `json:"code,omitempty"`
	Total        int            `json:"total"`
	Pushed       int            `json:"pushed"`
	Skipped      int            `json:"skipped"`
	Failed       int            `json:"failed"`
	Errors       []ContactError `json:"errors,omitempty"`
	Results      []PushResult   `json:"results,omitempty"`
	Duration     time.Duration  `json:"duration"`
}

// ProtectionResult summarises one shared-contact protection pass.
type ProtectionResult struct {
	ConnectionID string         `json:"connectionId"`
	Success      bool           `json:"success"`
	Error        string         `json:"error,omitempty"`
	Code         ErrorCode      `json:"code,omitempty"`
	NoOp         bool           `json:"noOp"`
	Checked      int            `json:"checked"`
	Corrected    int            `json:"corrected"`
	Failed       int            `json:"failed"`
	Errors       []ContactError `json:"errors,omitempty"`
	Duration     time.Duration  `json:"duration"`
}

// ConnectResult is returned by a connect operation.
type ConnectResult struct {
	Success    bool        `json:"success"`
	Error      string      `json:"error,omitempty"`
	Code       ErrorCode   `json:"code,omitempty"`
	Connection *Connection `json:"connection,omitempty"`
}

// OperationResult is the generic outcome of operations without counts.
type OperationResult struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	Code    ErrorCode `json:"code,omitempty"`
}

// ConnectionStatus is the snapshot returned by a status query.
type ConnectionStatus struct {
	ConnectionID  string        `json:"connectionId"`
	Connected     bool          `json:"connected"`
	Capabilities  *Capabilities `json:"capabilities,omitempty"`
	Current       *SyncCycle    `json:"current,omitempty"`
	QueueLength   int           `json:"queueLength"`
	Scheduled     bool          `json:"scheduled"`
	LastHeartbeat time.Time     `json:"lastHeartbeat,omitempty"`
	LastPull      *PullResult   `json:"lastPull,omitempty"`
	LastPush      *BatchResult  `json:"lastPush,omitempty"`
	LastError     string        `json:"lastError,omitempty"`
	LastErrorCode ErrorCode     `json:"lastErrorCode,omitempty"`
}
