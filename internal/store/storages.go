package store

import (
	"context"
	"fmt"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/crypto"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

// Storages groups the repositories of the local contact store.
type Storages struct {
	Contacts     ContactRepository
	SharedCopies SharedCopyRepository
	Notifier     *ChangeNotifier

	db *DB
}

// NewStorages opens the database, applies migrations, unlocks the store key
// with the configured passphrase and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DaemonConfig, keychain crypto.KeyChainService, ids IDGenerator, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	key, err := UnlockKey(ctx, NewKeyChainRepository(db), keychain, cfg.App.StorePassphrase)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unlock store: %w", err)
	}

	notifier := NewChangeNotifier()

	return &Storages{
		Contacts:     NewContactRepository(db, NewSealer(keychain, key), notifier, ids, log),
		SharedCopies: NewSharedCopyRepository(db),
		Notifier:     notifier,
		db:           db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
