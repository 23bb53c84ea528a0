package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

const sharedCopiesTable = "shared_copies"

var sharedCopyColumns = []string{
	"connection_id",
	"contact_id",
	"uid",
	"etag",
	"href",
	"address_book",
	"pushed_at",
}

const sharedCopyUpsertSuffix = `ON CONFLICT (connection_id, contact_id) DO UPDATE SET
	uid = excluded.uid,
	etag = excluded.etag,
	href = excluded.href,
	address_book = excluded.address_book,
	pushed_at = excluded.pushed_at`

type sharedCopyRepository struct {
	db *DB
}

// NewSharedCopyRepository returns the SQL backed [SharedCopyRepository].
func NewSharedCopyRepository(db *DB) SharedCopyRepository {
	return &sharedCopyRepository{db: db}
}

func (r *sharedCopyRepository) Upsert(ctx context.Context, sc models.SharedCopy) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(sharedCopiesTable).
		Columns(sharedCopyColumns...).
		Values(
			sc.ConnectionID,
			sc.ContactID,
			sc.UID,
			sc.ETag,
			sc.Href,
			sc.AddressBook,
			sc.PushedAt.UTC(),
		).
		Suffix(sharedCopyUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sharedCopyRepository.Upsert").
			Str("connection_id", sc.ConnectionID).
			Str("contact_id", sc.ContactID).
			Msg("failed to upsert shared copy")
		return fmt.Errorf("failed to save shared copy (contact_id=%s): %w", sc.ContactID, err)
	}

	return nil
}

func (r *sharedCopyRepository) Get(ctx context.Context, connectionID, contactID string) (*models.SharedCopy, error) {
	query, args, err := r.db.builder.
		Select(sharedCopyColumns...).
		From(sharedCopiesTable).
		Where(sq.Eq{"connection_id": connectionID, "contact_id": contactID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanSharedCopy(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sharedCopyRepository.Get").
			Str("contact_id", contactID).
			Msg("failed to query shared copy")
		return nil, err
	}

	return &c, nil
}

func (r *sharedCopyRepository) List(ctx context.Context, connectionID string) ([]models.SharedCopy, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(sharedCopyColumns...).
		From(sharedCopiesTable).
		Where(sq.Eq{"connection_id": connectionID}).
		OrderBy("contact_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sharedCopyRepository.List").Msg("failed to query shared copies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	copies := make([]models.SharedCopy, 0)
	for rows.Next() {
		c, err := scanSharedCopy(rows)
		if err != nil {
			return nil, err
		}
		copies = append(copies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return copies, nil
}

func (r *sharedCopyRepository) Delete(ctx context.Context, connectionID, contactID string) error {
	query, args, err := r.db.builder.
		Delete(sharedCopiesTable).
		Where(sq.Eq{"connection_id": connectionID, "contact_id": contactID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sharedCopyRepository.Delete").
			Str("contact_id", contactID).
			Msg("failed to delete shared copy")
		return fmt.Errorf("failed to delete shared copy (contact_id=%s): %w", contactID, err)
	}

	return nil
}

func scanSharedCopy(row rowScanner) (models.SharedCopy, error) {
	var c models.SharedCopy

	err := row.Scan(
		&c.ConnectionID,
		&c.ContactID,
		&c.UID,
		&c.ETag,
		&c.Href,
		&c.AddressBook,
		&c.PushedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SharedCopy{}, err
	}
	if err != nil {
		return models.SharedCopy{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}
