package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// IDGenerator produces new contact identifiers.
type IDGenerator interface {
	Generate() string
}

const contactsTable = "contacts"

var contactColumns = []string{
	"id",
	"uid",
	"vcard",
	"ownership",
	"imported",
	"is_archived",
	"is_deleted",
	"created_at",
	"last_modified_at",
	"link_connection_id",
	"link_uid",
	"link_etag",
	"link_href",
	"link_address_book",
	"link_synced_at",
}

type contactRepository struct {
	db       *DB
	sealer   Sealer
	notifier *ChangeNotifier
	ids      IDGenerator
	now      func() time.Time
	logger   *logger.Logger
}

// NewContactRepository returns the SQL backed [ContactRepository]. vCard text
// is encrypted with sealer; writes are reported to notifier.
func NewContactRepository(db *DB, sealer Sealer, notifier *ChangeNotifier, ids IDGenerator, log *logger.Logger) ContactRepository {
	return &contactRepository{
		db:       db,
		sealer:   sealer,
		notifier: notifier,
		ids:      ids,
		now:      time.Now,
		logger:   log,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *contactRepository) List(ctx context.Context) ([]models.LocalContact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(contactColumns...).
		From(contactsTable).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "contactRepository.List").Msg("failed to query contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.LocalContact, 0)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			log.Err(err).Str("func", "contactRepository.List").Msg("failed to scan contact row")
			return nil, err
		}
		contacts = append(contacts, c)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "contactRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return contacts, nil
}

func (r *contactRepository) Get(ctx context.Context, id string) (models.LocalContact, error) {
	c, err := r.selectOne(ctx, sq.Eq{"id": id})
	if err != nil {
		return models.LocalContact{}, err
	}
	if c == nil {
		return models.LocalContact{}, fmt.Errorf("%w: id=%s", ErrContactNotFound, id)
	}

	return *c, nil
}

func (r *contactRepository) FindByUID(ctx context.Context, uid string) (*models.LocalContact, error) {
	if uid == "" {
		return nil, nil
	}

	return r.selectOne(ctx, sq.Eq{"uid": uid})
}

func (r *contactRepository) selectOne(ctx context.Context, where sq.Eq) (*models.LocalContact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(contactColumns...).
		From(contactsTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := r.scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "contactRepository.selectOne").Msg("failed to query contact")
		return nil, err
	}

	return &c, nil
}

func (r *contactRepository) Create(ctx context.Context, contact models.LocalContact) (models.LocalContact, error) {
	log := logger.FromContext(ctx)

	if !contact.Ownership.Valid() {
		return models.LocalContact{}, fmt.Errorf("%w: ownership %q", ErrInvalidContact, contact.Ownership)
	}

	if contact.ID == "" {
		contact.ID = r.ids.Generate()
	}
	now := r.now().UTC()
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = now
	}
	if contact.LastModifiedAt.IsZero() {
		contact.LastModifiedAt = contact.CreatedAt
	}

	blob, err := r.sealer.Seal(contact.VCardText)
	if err != nil {
		return models.LocalContact{}, err
	}

	conn, linkUID, etag, href, book, synced := linkValues(contact.RemoteLink)
	query, args, err := r.db.builder.
		Insert(contactsTable).
		Columns(contactColumns...).
		Values(
			contact.ID,
			contact.UID,
			blob,
			string(contact.Ownership),
			contact.Imported,
			contact.IsArchived,
			contact.IsDeleted,
			contact.CreatedAt.UTC(),
			contact.LastModifiedAt.UTC(),
			conn, linkUID, etag, href, book, synced,
		).
		ToSql()
	if err != nil {
		return models.LocalContact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.LocalContact{}, fmt.Errorf("%w: uid=%s", ErrContactAlreadyExists, contact.UID)
		}
		log.Err(err).
			Str("func", "contactRepository.Create").
			Str("contact_id", contact.ID).
			Msg("failed to insert contact")
		return models.LocalContact{}, fmt.Errorf("failed to save contact (id=%s): %w", contact.ID, err)
	}

	r.notifier.Notify(contact.ID, models.ContactCreated)

	return contact, nil
}

func (r *contactRepository) Update(ctx context.Context, contact models.LocalContact) error {
	log := logger.FromContext(ctx)

	if !contact.Ownership.Valid() {
		return fmt.Errorf("%w: ownership %q", ErrInvalidContact, contact.Ownership)
	}

	blob, err := r.sealer.Seal(contact.VCardText)
	if err != nil {
		return err
	}

	conn, linkUID, etag, href, book, synced := linkValues(contact.RemoteLink)
	query, args, err := r.db.builder.
		Update(contactsTable).
		Set("uid", contact.UID).
		Set("vcard", blob).
		Set("ownership", string(contact.Ownership)).
		Set("imported", contact.Imported).
		Set("is_archived", contact.IsArchived).
		Set("is_deleted", contact.IsDeleted).
		Set("last_modified_at", contact.LastModifiedAt.UTC()).
		Set("link_connection_id", conn).
		Set("link_uid", linkUID).
		Set("link_etag", etag).
		Set("link_href", href).
		Set("link_address_book", book).
		Set("link_synced_at", synced).
		Where(sq.Eq{"id": contact.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return fmt.Errorf("%w: uid=%s", ErrContactAlreadyExists, contact.UID)
		}
		log.Err(err).
			Str("func", "contactRepository.Update").
			Str("contact_id", contact.ID).
			Msg("failed to update contact")
		return fmt.Errorf("failed to update contact (id=%s): %w", contact.ID, err)
	}

	if err = requireAffected(res, contact.ID); err != nil {
		return err
	}

	r.notifier.Notify(contact.ID, models.ContactUpdated)

	return nil
}

func (r *contactRepository) UpdateRemoteLink(ctx context.Context, id string, link *models.RemoteLink) error {
	log := logger.FromContext(ctx)

	conn, linkUID, etag, href, book, synced := linkValues(link)
	query, args, err := r.db.builder.
		Update(contactsTable).
		Set("link_connection_id", conn).
		Set("link_uid", linkUID).
		Set("link_etag", etag).
		Set("link_href", href).
		Set("link_address_book", book).
		Set("link_synced_at", synced).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.UpdateRemoteLink").
			Str("contact_id", id).
			Msg("failed to update remote link")
		return fmt.Errorf("failed to update remote link (id=%s): %w", id, err)
	}

	if err = requireAffected(res, id); err != nil {
		return err
	}

	r.notifier.Notify(id, models.ContactUpdated)

	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(contactsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "contactRepository.Delete").
			Str("contact_id", id).
			Msg("failed to delete contact")
		return fmt.Errorf("failed to delete contact (id=%s): %w", id, err)
	}

	if err = requireAffected(res, id); err != nil {
		return err
	}

	r.notifier.Notify(id, models.ContactDeleted)

	return nil
}

func (r *contactRepository) scan(row rowScanner) (models.LocalContact, error) {
	var (
		c                                   models.LocalContact
		blob, ownership                     string
		linkConn, linkUID, etag, href, book sql.NullString
		synced                              sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.UID,
		&blob,
		&ownership,
		&c.Imported,
		&c.IsArchived,
		&c.IsDeleted,
		&c.CreatedAt,
		&c.LastModifiedAt,
		&linkConn,
		&linkUID,
		&etag,
		&href,
		&book,
		&synced,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalContact{}, err
	}
	if err != nil {
		return models.LocalContact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	c.Ownership = models.Ownership(ownership)
	if c.VCardText, err = r.sealer.Open(blob); err != nil {
		return models.LocalContact{}, fmt.Errorf("contact %s: %w", c.ID, err)
	}

	if linkConn.Valid {
		c.RemoteLink = &models.RemoteLink{
			ConnectionID: linkConn.String,
			UID:          linkUID.String,
			ETag:         etag.String,
			Href:         href.String,
			AddressBook:  book.String,
			LastSyncedAt: synced.Time,
		}
	}

	return c, nil
}

func linkValues(link *models.RemoteLink) (conn, uid, etag, href, book sql.NullString, synced sql.NullTime) {
	if link == nil {
		return
	}

	return sql.NullString{String: link.ConnectionID, Valid: true},
		sql.NullString{String: link.UID, Valid: true},
		sql.NullString{String: link.ETag, Valid: true},
		sql.NullString{String: link.Href, Valid: true},
		sql.NullString{String: link.AddressBook, Valid: true},
		sql.NullTime{Time: link.LastSyncedAt.UTC(), Valid: !link.LastSyncedAt.IsZero()}
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id=%s", ErrContactNotFound, id)
	}
	return nil
}
