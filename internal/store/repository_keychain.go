package store

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/crypto"
)

const keychainTable = "keychain"

type keyChainRepository struct {
	db  *DB
	now func() time.Time
}

// NewKeyChainRepository returns the SQL backed [KeyChainRepository].
func NewKeyChainRepository(db *DB) KeyChainRepository {
	return &keyChainRepository{db: db, now: time.Now}
}

func (r *keyChainRepository) Load(ctx context.Context) ([]byte, []byte, bool, error) {
	query, args, err := r.db.builder.
		Select("salt", "fingerprint").
		From(keychainTable).
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saltB64, fingerprintB64 string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&saltB64, &fingerprintB64)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return nil, nil, false, fmt.Errorf("decode salt: %w", err)
	}
	fingerprint, err := base64.StdEncoding.DecodeString(fingerprintB64)
	if err != nil {
		return nil, nil, false, fmt.Errorf("decode fingerprint: %w", err)
	}

	return salt, fingerprint, true, nil
}

func (r *keyChainRepository) Save(ctx context.Context, salt, fingerprint []byte) error {
	query, args, err := r.db.builder.
		Insert(keychainTable).
		Columns("id", "salt", "fingerprint", "created_at").
		Values(1,
			base64.StdEncoding.EncodeToString(salt),
			base64.StdEncoding.EncodeToString(fingerprint),
			r.now().UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save keychain: %w", err)
	}

	return nil
}

// UnlockKey derives the store key from passphrase. On first use it creates
// and persists a fresh salt; afterwards it rejects passphrases whose key
// fingerprint differs from the stored one with [ErrWrongPassphrase].
func UnlockKey(ctx context.Context, repo KeyChainRepository, keychain crypto.KeyChainService, passphrase string) ([]byte, error) {
	salt, fingerprint, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load keychain: %w", err)
	}

	if !found {
		if salt, err = keychain.GenerateSalt(); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
		key := keychain.DeriveKey(passphrase, salt)
		if err = repo.Save(ctx, salt, keychain.Fingerprint(key)); err != nil {
			return nil, err
		}
		return key, nil
	}

	key := keychain.DeriveKey(passphrase, salt)
	if subtle.ConstantTimeCompare(keychain.Fingerprint(key), fingerprint) != 1 {
		return nil, ErrWrongPassphrase
	}

	return key, nil
}
