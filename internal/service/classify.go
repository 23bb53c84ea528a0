package service

import (
	"time"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// Action is the decision taken for one contact during a sync cycle.
type Action int

const (
	// ActionSkip leaves both sides untouched.
	ActionSkip Action = iota
	// ActionCreate imports a remote record (pull) or sends a record the
	// connection has never seen (push).
	ActionCreate
	// ActionUpdate overwrites the local content with the remote one (pull)
	// or re-sends a changed local record (push).
	ActionUpdate
	// ActionDeleteLocal applies a server-side deletion to the local store.
	ActionDeleteLocal
	// ActionDeleteRemote removes an orphan from the remote server.
	ActionDeleteRemote
	// ActionProtect force-overwrites the remote copy of a SHARED contact.
	ActionProtect
)

func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDeleteLocal:
		return "delete-local"
	case ActionDeleteRemote:
		return "delete-remote"
	case ActionProtect:
		return "protect"
	default:
		return "unknown"
	}
}

// ClassifyInput is everything [Classify] needs to know about one contact.
// Local and Remote are nil when the contact is absent on that side.
type ClassifyInput struct {
	Direction    models.SyncDirection
	ConnectionID string

	Local  *models.LocalContact
	Remote *models.RemoteContact

	// SharedCopy is the ledger entry of the last push of a SHARED Local on
	// this connection.
	SharedCopy *models.SharedCopy

	// Push only.
	ChangeSkip    bool
	SkewTolerance time.Duration
	Force         bool
}

// Classify holds every ownership rule of the sync engine. Pull, push and
// shared-contact protection all ask it what to do with a contact and only
// carry out the answer.
//
// On pull a remote record matching a SHARED contact's UID is deleted
// remotely unless the shared-copy ledger identifies it as the copy this
// engine pushed, which is kept so pull and client-side protection agree.
func Classify(in ClassifyInput, caps models.Capabilities) Action {
	switch in.Direction {
	case models.SyncPull:
		return classifyPull(in)
	case models.SyncPush:
		return classifyPush(in)
	case models.SyncProtect, models.SyncRefresh:
		return classifyProtect(in, caps)
	default:
		return ActionSkip
	}
}

func classifyPull(in ClassifyInput) Action {
	local, remote := in.Local, in.Remote

	switch {
	case remote == nil && local == nil:
		return ActionSkip

	case remote == nil:
		// absent from the enumeration: server-side deletion candidate
		if local.Ownership == models.OwnershipShared || !local.LinkedTo(in.ConnectionID) {
			return ActionSkip
		}
		if !local.RemoteDeletable() {
			return ActionSkip
		}
		return ActionDeleteLocal

	case local == nil:
		return ActionCreate

	case local.Ownership == models.OwnershipShared:
		if isOwnSharedCopy(in.SharedCopy, remote) {
			return ActionSkip
		}
		return ActionDeleteRemote

	case local.RemoteLink != nil &&
		(local.RemoteLink.ConnectionID == "" || local.RemoteLink.ConnectionID == in.ConnectionID) &&
		local.RemoteLink.ETag != "" &&
		local.RemoteLink.ETag == remote.ETag:
		return ActionSkip

	default:
		return ActionUpdate
	}
}

func classifyPush(in ClassifyInput) Action {
	local := in.Local
	if local == nil || !local.Eligible() {
		return ActionSkip
	}

	var (
		etag     string
		syncedAt time.Time
		linked   bool
	)
	if local.Ownership == models.OwnershipShared {
		if in.SharedCopy != nil {
			etag, syncedAt, linked = in.SharedCopy.ETag, in.SharedCopy.PushedAt, true
		}
	} else if local.LinkedTo(in.ConnectionID) {
		etag, syncedAt, linked = local.RemoteLink.ETag, local.RemoteLink.LastSyncedAt, true
	}

	if !in.Force && in.ChangeSkip && linked && etag != "" && unchangedSinceSync(local.LastModifiedAt, syncedAt, in.SkewTolerance) {
		return ActionSkip
	}

	if linked {
		return ActionUpdate
	}
	return ActionCreate
}

// unchangedSinceSync reports whether a contact modified at modifiedAt was
// synced after that edit. Both stamps may come from different clocks, so
// the sync must be newer by at least tolerance. A contact last written by a
// pull carries the sync instant itself as modification time; those stamps
// share a clock and need no tolerance.
func unchangedSinceSync(modifiedAt, syncedAt time.Time, tolerance time.Duration) bool {
	if !syncedAt.IsZero() && modifiedAt.Equal(syncedAt) {
		return true
	}
	return !syncedAt.Before(modifiedAt.Add(tolerance))
}

func classifyProtect(in ClassifyInput, caps models.Capabilities) Action {
	local := in.Local
	if local == nil || local.Ownership != models.OwnershipShared || !local.Eligible() {
		return ActionSkip
	}
	if !caps.ClientSideProtection() {
		return ActionSkip
	}
	if in.Direction == models.SyncRefresh {
		return ActionProtect
	}

	switch {
	case in.Remote == nil, in.SharedCopy == nil:
		return ActionProtect
	case in.Remote.ETag != in.SharedCopy.ETag:
		return ActionProtect
	default:
		return ActionSkip
	}
}

// isOwnSharedCopy reports whether remote is the record this engine pushed
// for a SHARED contact, as opposed to a stray copy under the same UID.
func isOwnSharedCopy(ledger *models.SharedCopy, remote *models.RemoteContact) bool {
	if ledger == nil {
		return false
	}
	if ledger.Href != "" && remote.Href != "" && ledger.Href != remote.Href {
		return false
	}
	if ledger.AddressBook != "" && remote.AddressBook != "" && ledger.AddressBook != remote.AddressBook {
		return false
	}
	return true
}

// effectiveUID is the UID under which a contact is known remotely. SHARED
// contacts without a UID are pushed under their local id.
func effectiveUID(c models.LocalContact) string {
	if c.UID != "" {
		return c.UID
	}
	if c.Ownership == models.OwnershipShared {
		return c.ID
	}
	if c.RemoteLink != nil {
		return c.RemoteLink.UID
	}
	return ""
}
