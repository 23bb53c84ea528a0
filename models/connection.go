package models

import "time"

// ProtectionStrategy names who enforces the read-only status of shared
// contacts on a remote server.
type ProtectionStrategy string

const (
	// ProtectionServerSide means the server enforces access control on a
	// dedicated read-only address book.
	ProtectionServerSide ProtectionStrategy = "server-side"
	// ProtectionClientSide means this engine must detect and revert remote
	// edits to shared contacts itself.
	ProtectionClientSide ProtectionStrategy = "client-side"
)

// DefaultAddressBookName is the address book used when nothing better is
// known about a server.
const DefaultAddressBookName = "default"

// Capabilities describes what a remote server demonstrably supports and
// therefore which routing and protection strategy applies to it.
type Capabilities struct {
	Flavor                       string             `json:"flavor" yaml:"flavor"`
	SupportsAccessControl        bool               `json:"supportsAccessControl" yaml:"accessControl"`
	SupportsMultipleAddressBooks bool               `json:"supportsMultipleAddressBooks" yaml:"multipleAddressBooks"`
	ProtectionStrategy           ProtectionStrategy `json:"protectionStrategy" yaml:"-"`
	DefaultAddressBook           string             `json:"defaultAddressBook" yaml:"default"`
	ReadWriteAddressBook         string             `json:"readWriteAddressBook,omitempty" yaml:"readWrite"`
	ReadOnlyAddressBook          string             `json:"readOnlyAddressBook,omitempty" yaml:"readOnly"`
}

// ClientSideProtection reports whether shared contacts must be protected by
// this engine rather than by the server.
func (c Capabilities) ClientSideProtection() bool {
	return !c.SupportsAccessControl || c.ProtectionStrategy != ProtectionServerSide
}

// AddressBook is a named collection of contacts on the remote server.
type AddressBook struct {
	Name        string `json:"name"`
	Href        string `json:"href"`
	DisplayName string `json:"displayName,omitempty"`
	ReadOnly    bool   `json:"readOnly"`
}

// Credentials references the account used to reach the remote server.
// The password never leaves the process except towards the bridge.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// ConnectConfig is the input of a connect operation.
type ConnectConfig struct {
	// ConnectionID is optional; a fresh id is generated when empty.
	ConnectionID string        `json:"connectionId,omitempty"`
	ServerURL    string        `json:"serverUrl"`
	Username     string        `json:"username"`
	Password     string        `json:"password"`
	Profile      string        `json:"profile,omitempty"`
	Capabilities *Capabilities `json:"capabilities,omitempty"`
}

// Connection is one remote account bound to the local store for the
// lifetime of the session.
type Connection struct {
	ID           string        `json:"id"`
	ServerURL    string        `json:"serverUrl"`
	Credentials  Credentials   `json:"credentials"`
	Capabilities Capabilities  `json:"capabilities"`
	AddressBooks []AddressBook `json:"addressBooks"`
	ConnectedAt  time.Time     `json:"connectedAt"`
}

// SyncDirection names the kind of work a sync cycle performs.
type SyncDirection string

const (
	SyncPull    SyncDirection = "pull"
	SyncPush    SyncDirection = "push"
	SyncProtect SyncDirection = "protect"
	SyncRefresh SyncDirection = "refresh"
)

// SyncCycle is the run state of the cycle currently executing on a
// connection. At most one exists per connection at any time.
type SyncCycle struct {
	ConnectionID string        `json:"connectionId"`
	Direction    SyncDirection `json:"direction"`
	StartedAt    time.Time     `json:"startedAt"`
	InProgress   bool          `json:"inProgress"`
}

// Schedule configures the periodic cycles of a connection. A zero field
// selects the configured default. A negative protection or refresh interval
// disables that cycle; pull and push cannot be disabled.
type Schedule struct {
	PullInterval       time.Duration `json:"-"`
	PushInterval       time.Duration `json:"-"`
	PushOffset         time.Duration `json:"-"`
	ProtectionInterval time.Duration `json:"-"`
	RefreshInterval    time.Duration `json:"-"`
	HeartbeatInterval  time.Duration `json:"-"`
}

// ScheduleRequest is the wire form of a Schedule with millisecond fields.
type ScheduleRequest struct {
	PullIntervalMs       int64 `json:"pullIntervalMs"`
	PushIntervalMs       int64 `json:"pushIntervalMs"`
	PushOffsetMs         int64 `json:"pushOffsetMs,omitempty"`
	ProtectionIntervalMs int64 `json:"protectionIntervalMs,omitempty"`
	RefreshIntervalMs    int64 `json:"refreshIntervalMs,omitempty"`
}

// Schedule converts the request into a Schedule.
func (r ScheduleRequest) Schedule() Schedule {
	return Schedule{
		PullInterval:       time.Duration(r.PullIntervalMs) * time.Millisecond,
		PushInterval:       time.Duration(r.PushIntervalMs) * time.Millisecond,
		PushOffset:         time.Duration(r.PushOffsetMs) * time.Millisecond,
		ProtectionInterval: time.Duration(r.ProtectionIntervalMs) * time.Millisecond,
		RefreshInterval:    time.Duration(r.RefreshIntervalMs) * time.Millisecond,
	}
}
