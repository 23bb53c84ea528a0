package store

import (
	"context"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ContactRepository is the local contact store consumed by the sync
// engine. Every write is reported to the store's change notifier.
type ContactRepository interface {
	List(ctx context.Context) ([]models.LocalContact, error)
	Get(ctx context.Context, id string) (models.LocalContact, error)
	// FindByUID returns nil without error when no contact has the UID.
	FindByUID(ctx context.Context, uid string) (*models.LocalContact, error)
	Create(ctx context.Context, contact models.LocalContact) (models.LocalContact, error)
	Update(ctx context.Context, contact models.LocalContact) error
	// UpdateRemoteLink replaces the remote link of a contact without
	// touching its content or modification time.
	UpdateRemoteLink(ctx context.Context, id string, link *models.RemoteLink) error
	Delete(ctx context.Context, id string) error
}

// SharedCopyRepository is the ledger of where SHARED contacts were pushed.
type SharedCopyRepository interface {
	Upsert(ctx context.Context, sc models.SharedCopy) error
	// Get returns nil without error when the ledger has no entry.
	Get(ctx context.Context, connectionID, contactID string) (*models.SharedCopy, error)
	List(ctx context.Context, connectionID string) ([]models.SharedCopy, error)
	Delete(ctx context.Context, connectionID, contactID string) error
}

// KeyChainRepository persists the salt and key fingerprint of the store.
type KeyChainRepository interface {
	// Load returns found=false when the store has not been initialised.
	Load(ctx context.Context) (salt, fingerprint []byte, found bool, err error)
	Save(ctx context.Context, salt, fingerprint []byte) error
}
