package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/config"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/store"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/vcard"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// DefaultPushConcurrency is the group size of a batch push.
const DefaultPushConcurrency = 10

// PushPolicy tunes the change-skip check of the push engine.
type PushPolicy struct {
	// ChangeSkip enables skipping contacts whose last sync is not older
	// than their last local modification.
	ChangeSkip bool
	// SkewTolerance is added to the modification time before comparing,
	// so that a sync only counts as newer by at least this margin.
	SkewTolerance time.Duration
	Concurrency   int
}

// NewPushPolicy builds the policy from the daemon configuration.
func NewPushPolicy(syncCfg config.DaemonSync, workersCfg config.DaemonWorkers) PushPolicy {
	return PushPolicy{
		ChangeSkip:    syncCfg.ChangeSkip != config.ChangeSkipNever,
		SkewTolerance: syncCfg.ClockSkewTolerance,
		Concurrency:   workersCfg.PushConcurrency,
	}
}

// PushEngine sends local contacts to a connection's remote server.
type PushEngine struct {
	registry *ConnectionRegistry
	bridge   adapter.BridgeAdapter
	contacts store.ContactRepository
	shared   store.SharedCopyRepository
	ids      IDGenerator
	policy   PushPolicy

	now func() time.Time
}

func NewPushEngine(
	registry *ConnectionRegistry,
	bridge adapter.BridgeAdapter,
	contacts store.ContactRepository,
	shared store.SharedCopyRepository,
	ids IDGenerator,
	policy PushPolicy,
) *PushEngine {
	if policy.Concurrency <= 0 {
		policy.Concurrency = DefaultPushConcurrency
	}

	return &PushEngine{
		registry: registry,
		bridge:   bridge,
		contacts: contacts,
		shared:   shared,
		ids:      ids,
		policy:   policy,
		now:      time.Now,
	}
}

// PushOne implements [Pusher].
//
// The bridge always receives an empty version token so that it compares
// against the authoritative remote version itself. On success the contact's
// remote link is updated, except for SHARED contacts whose push is recorded
// in the shared-copy ledger instead.
func (e *PushEngine) PushOne(ctx context.Context, contact models.LocalContact, connectionID string, opts models.PushOptions) models.PushResult {
	log := logger.FromContext(ctx)
	result := models.PushResult{ContactID: contact.ID, UID: contact.UID}

	conn, err := e.registry.Get(connectionID)
	if err != nil {
		return failed(result, models.ErrorKindInvalid, err)
	}

	var ledger *models.SharedCopy
	if contact.Ownership == models.OwnershipShared {
		if ledger, err = e.shared.Get(ctx, connectionID, contact.ID); err != nil {
			return failed(result, models.ErrorKindStore, err)
		}
	}

	action := Classify(ClassifyInput{
		Direction:     models.SyncPush,
		ConnectionID:  connectionID,
		Local:         &contact,
		SharedCopy:    ledger,
		ChangeSkip:    e.policy.ChangeSkip,
		SkewTolerance: e.policy.SkewTolerance,
		Force:         opts.Force,
	}, conn.Capabilities)
	if action == ActionSkip {
		result.Status = models.PushStatusSkipped
		result.Reason = "unchanged since last sync"
		if !contact.Eligible() {
			result.Reason = "archived or deleted"
		}
		return result
	}

	uid, generated := contact.UID, false
	if uid == "" {
		if contact.Ownership == models.OwnershipShared {
			uid = contact.ID
		} else {
			uid, generated = e.ids.Generate(), true
		}
	}
	result.UID = uid

	text, err := vcard.WithUID(contact.VCardText, uid)
	if err != nil {
		return failed(result, models.ErrorKindInvalid, err)
	}

	book := routeAddressBook(contact, conn.Capabilities)
	resp, err := e.bridge.Push(ctx, connectionID, models.PushRequest{
		UID:         uid,
		VCardText:   text,
		ETag:        "",
		AddressBook: book,
	})
	if err != nil {
		log.Err(err).
			Str("func", "PushEngine.PushOne").
			Str("contact_id", contact.ID).
			Str("uid", uid).
			Str("address_book", book).
			Msg("push failed")
		return failed(result, errorKind(err), err)
	}

	if resp.AddressBook == "" {
		resp.AddressBook = book
	}
	result.ETag, result.Href, result.AddressBook = resp.ETag, resp.Href, resp.AddressBook

	now := e.now()
	if contact.Ownership == models.OwnershipShared {
		err = e.shared.Upsert(ctx, models.SharedCopy{
			ConnectionID: connectionID,
			ContactID:    contact.ID,
			UID:          uid,
			ETag:         resp.ETag,
			Href:         resp.Href,
			AddressBook:  resp.AddressBook,
			PushedAt:     now,
		})
	} else {
		link := &models.RemoteLink{
			ConnectionID: connectionID,
			UID:          uid,
			ETag:         resp.ETag,
			Href:         resp.Href,
			AddressBook:  resp.AddressBook,
			LastSyncedAt: now,
		}
		if generated || text != contact.VCardText {
			updated := contact
			updated.UID = uid
			updated.VCardText = text
			updated.RemoteLink = link
			err = e.contacts.Update(ctx, updated)
		} else {
			err = e.contacts.UpdateRemoteLink(ctx, contact.ID, link)
		}
	}
	if err != nil {
		log.Err(err).
			Str("func", "PushEngine.PushOne").
			Str("contact_id", contact.ID).
			Msg("pushed, but failed to record the result locally")
		return failed(result, models.ErrorKindStore, fmt.Errorf("record push result: %w", err))
	}

	result.Status = models.PushStatusPushed
	return result
}

func failed(result models.PushResult, kind models.ErrorKind, err error) models.PushResult {
	result.Status = models.PushStatusFailed
	result.Reason = string(kind)
	result.Err = err
	return result
}

// PushBatch implements [Pusher].
//
// A health check runs first; if the bridge cannot be reached the whole
// batch fails before any push. Eligible contacts are then pushed in groups
// of concurrency, each group in parallel, and results keep input order.
func (e *PushEngine) PushBatch(ctx context.Context, contacts []models.LocalContact, connectionID string, concurrency int) (result models.BatchResult) {
	started := e.now()
	result.ConnectionID = connectionID
	defer func() { result.Duration = e.now().Sub(started) }()

	log := logger.FromContext(ctx)

	if concurrency <= 0 {
		concurrency = e.policy.Concurrency
	}

	if _, err := e.registry.Get(connectionID); err != nil {
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}

	health, err := e.bridge.Health(ctx, connectionID)
	if err != nil {
		log.Err(err).Str("func", "PushEngine.PushBatch").Msg("bridge health check failed, batch aborted")
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}
	if !health.ServerReachable {
		err = fmt.Errorf("%w: %s", adapter.ErrServerUnavailable, health.Status)
		log.Warn().Err(err).Str("func", "PushEngine.PushBatch").Msg("remote server unreachable, batch aborted")
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}

	eligible := make([]models.LocalContact, 0, len(contacts))
	for _, c := range contacts {
		if c.Eligible() {
			eligible = append(eligible, c)
		}
	}
	result.Total = len(eligible)
	result.Results = make([]models.PushResult, len(eligible))

	for lo := 0; lo < len(eligible); lo += concurrency {
		hi := min(lo+concurrency, len(eligible))

		if err = ctx.Err(); err != nil {
			for i := lo; i < len(eligible); i++ {
				result.Results[i] = failed(models.PushResult{ContactID: eligible[i].ID, UID: eligible[i].UID}, models.ErrorKindTransport, err)
			}
			break
		}

		var g errgroup.Group
		for i := lo; i < hi; i++ {
			g.Go(func() error {
				result.Results[i] = e.PushOne(ctx, eligible[i], connectionID, models.PushOptions{})
				return nil
			})
		}
		_ = g.Wait()
	}

	for _, r := range result.Results {
		switch r.Status {
		case models.PushStatusPushed:
			result.Pushed++
		case models.PushStatusSkipped:
			result.Skipped++
		default:
			result.Failed++
			result.Errors = append(result.Errors, pushError(r))
		}
	}
	result.Success = true

	log.Info().
		Str("func", "PushEngine.PushBatch").
		Int("total", result.Total).
		Int("pushed", result.Pushed).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("push batch finished")

	return result
}

func pushError(r models.PushResult) models.ContactError {
	err := r.Err
	if err == nil {
		err = errors.New(r.Reason)
	}
	kind := models.ErrorKind(r.Reason)
	if kind == "" {
		kind = errorKind(err)
	}
	return contactError(r.ContactID, r.UID, kind, err)
}

// PushAll implements [Pusher]. It pushes every eligible contact of the
// local store.
func (e *PushEngine) PushAll(ctx context.Context, connectionID string) models.BatchResult {
	contacts, err := e.contacts.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "PushEngine.PushAll").Msg("failed to list local contacts")
		return models.BatchResult{ConnectionID: connectionID, Error: fmt.Errorf("list local contacts: %w", err).Error(), Code: errorCode(err)}
	}

	return e.PushBatch(ctx, contacts, connectionID, e.policy.Concurrency)
}
