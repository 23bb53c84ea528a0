// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Ownership is the local classification of authority over a contact. It
// decides which side of a synchronisation may overwrite or delete it.
type Ownership string

const (
	// OwnershipOwned marks a contact authored by the local user. Such a
	// contact is never deleted because it is missing on the remote server.
	OwnershipOwned Ownership = "OWNED"

	// OwnershipImported marks a contact that originated from (or is mirrored
	// to) the remote server. The server is allowed to delete it.
	OwnershipImported Ownership = "IMPORTED"

	// OwnershipShared marks a contact received through peer sharing. The
	// remote server has no write authority over it.
	OwnershipShared Ownership = "SHARED"
)

// Valid reports whether o is one of the known ownership values.
func (o Ownership) Valid() bool {
	switch o {
	case OwnershipOwned, OwnershipImported, OwnershipShared:
		return true
	default:
		return false
	}
}

// RemoteLink ties a local contact to the record it was last synchronised
// with on a remote server. The etag is only meaningful relative to the
// connection that issued it.
type RemoteLink struct {
	ConnectionID string    `json:"connectionId"`
	UID          string    `json:"uid"`
	ETag         string    `json:"etag"`
	Href         string    `json:"href"`
	AddressBook  string    `json:"addressBook"`
	LastSyncedAt time.Time `json:"lastSyncedAt"`
}

// LocalContact is a contact as held by the local encrypted store. VCardText
// is plaintext here; encryption happens inside the store.
type LocalContact struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid"`
	VCardText string    `json:"vcard"`
	Ownership Ownership `json:"ownership"`

	// Imported is the "also marked IMPORTED" marker. A contact whose
	// Ownership is OwnershipImported is always treated as marked.
	Imported bool `json:"imported"`

	RemoteLink *RemoteLink `json:"remoteLink,omitempty"`

	// Lifecycle flags are managed by the surrounding application and are
	// read-only for the sync engine.
	IsArchived bool `json:"isArchived"`
	IsDeleted  bool `json:"isDeleted"`

	CreatedAt      time.Time `json:"createdAt"`
	LastModifiedAt time.Time `json:"lastModifiedAt"`
}

// IsImported reports whether the contact carries the IMPORTED marker.
func (c LocalContact) IsImported() bool {
	return c.Ownership == OwnershipImported || c.Imported
}

// RemoteDeletable reports whether a server-side deletion may remove this
// contact locally. Shared contacts and owned contacts without the IMPORTED
// marker are exempt.
func (c LocalContact) RemoteDeletable() bool {
	if c.Ownership == OwnershipShared {
		return false
	}
	return c.Ownership != OwnershipOwned || c.IsImported()
}

// Eligible reports whether the contact takes part in pushes.
func (c LocalContact) Eligible() bool {
	return !c.IsArchived && !c.IsDeleted
}

// LinkedTo reports whether the contact has a remote link issued by the
// given connection.
func (c LocalContact) LinkedTo(connectionID string) bool {
	return c.RemoteLink != nil && c.RemoteLink.ConnectionID == connectionID
}

// RemoteContact is a contact as returned by a pull from the bridge. It is
// never persisted directly.
type RemoteContact struct {
	UID         string `json:"uid"`
	VCardText   string `json:"vcard"`
	ETag        string `json:"etag"`
	Href        string `json:"href"`
	AddressBook string `json:"addressBook"`
	DisplayName string `json:"displayName,omitempty"`
}

// SharedCopy records where the last push of a SHARED contact landed on a
// given connection. It lives beside the contact, never inside it.
type SharedCopy struct {
	ConnectionID string    `json:"connectionId"`
	ContactID    string    `json:"contactId"`
	UID          string    `json:"uid"`
	ETag         string    `json:"etag"`
	Href         string    `json:"href"`
	AddressBook  string    `json:"addressBook"`
	PushedAt     time.Time `json:"pushedAt"`
}

// ContactChangeKind identifies the kind of write reported by the store's
// change notifier.
type ContactChangeKind string

const (
	ContactCreated ContactChangeKind = "created"
	ContactUpdated ContactChangeKind = "updated"
	ContactDeleted ContactChangeKind = "deleted"
)

// ContactChange is a single change notification emitted by the local store.
// Suppressed is true when the write happened while a sync cycle was in
// flight; UI consumers are expected to ignore such notifications.
type ContactChange struct {
	ContactID  string            `json:"contactId"`
	Kind       ContactChangeKind `json:"kind"`
	Suppressed bool              `json:"suppressed"`
	At         time.Time         `json:"at"`
}
