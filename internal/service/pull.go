// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/store"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/vcard"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// PullReconciler imports the remote enumeration of a connection into the
// local store.
type PullReconciler struct {
	registry *ConnectionRegistry
	bridge   adapter.BridgeAdapter
	contacts store.ContactRepository
	shared   store.SharedCopyRepository

	now func() time.Time
}

func NewPullReconciler(
	registry *ConnectionRegistry,
	bridge adapter.BridgeAdapter,
	contacts store.ContactRepository,
	shared store.SharedCopyRepository,
) *PullReconciler {
	return &PullReconciler{
		registry: registry,
		bridge:   bridge,
		contacts: contacts,
		shared:   shared,
		now:      time.Now,
	}
}

// pullState carries one pull cycle through its phases.
type pullState struct {
	conn   models.Connection
	result *models.PullResult

	byUID  map[string]*models.LocalContact
	ledger map[string]*models.SharedCopy
	seen   map[string]struct{}
}

// Pull implements [Puller].
//
// A fetch that reports the remote server unavailable aborts the cycle
// before anything is written. Server-side deletions are applied only to
// contacts linked to this connection that are remote-deletable, and not at
// all when the enumeration holds no UID while IMPORTED contacts exist.
func (p *PullReconciler) Pull(ctx context.Context, connectionID string) (result models.PullResult) {
	started := p.now()
	result.ConnectionID = connectionID
	defer func() { result.Duration = p.now().Sub(started) }()

	log := logger.FromContext(ctx)

	conn, err := p.registry.Get(connectionID)
	if err != nil {
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}

	remotes, err := p.bridge.Fetch(ctx, connectionID)
	if errors.Is(err, adapter.ErrServerUnavailable) {
		log.Warn().Err(err).Str("func", "PullReconciler.Pull").Msg("remote server unavailable, pull aborted without changes")
		result.Aborted = true
		result.AbortReason = err.Error()
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}
	if err != nil {
		log.Err(err).Str("func", "PullReconciler.Pull").Msg("failed to fetch remote contacts")
		result.Error = fmt.Errorf("fetch remote contacts: %w", err).Error()
		result.Code = errorCode(err)
		return result
	}

	locals, err := p.contacts.List(ctx)
	if err != nil {
		log.Err(err).Str("func", "PullReconciler.Pull").Msg("failed to list local contacts")
		result.Error = fmt.Errorf("list local contacts: %w", err).Error()
		result.Code = errorCode(err)
		return result
	}

	copies, err := p.shared.List(ctx, connectionID)
	if err != nil {
		log.Err(err).Str("func", "PullReconciler.Pull").Msg("failed to list shared copies")
		result.Error = fmt.Errorf("list shared copies: %w", err).Error()
		result.Code = errorCode(err)
		return result
	}

	st := &pullState{
		conn:   conn,
		result: &result,
		byUID:  make(map[string]*models.LocalContact, len(locals)),
		ledger: make(map[string]*models.SharedCopy, len(copies)),
		seen:   make(map[string]struct{}, len(remotes)),
	}
	for i := range locals {
		uid := effectiveUID(locals[i])
		if _, dup := st.byUID[uid]; uid != "" && !dup {
			st.byUID[uid] = &locals[i]
		}
	}
	for i := range copies {
		st.ledger[copies[i].ContactID] = &copies[i]
	}

	for i := range remotes {
		if err = ctx.Err(); err != nil {
			result.Error = err.Error()
			result.Code = errorCode(err)
			return result
		}
		p.reconcileRemote(ctx, st, remotes[i])
	}

	if err = p.applyServerDeletions(ctx, st, locals, len(st.seen) == 0); err != nil {
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}

	result.Success = true
	log.Info().
		Str("func", "PullReconciler.Pull").
		Int("created", result.Created).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Int("orphans_deleted", result.OrphansDeleted).
		Int("server_deletions_applied", result.ServerDeletionsApplied).
		Int("server_deletions_skipped", result.ServerDeletionsSkipped).
		Msg("pull finished")

	return result
}

func (p *PullReconciler) reconcileRemote(ctx context.Context, st *pullState, remote models.RemoteContact) {
	log := logger.FromContext(ctx)
	result := st.result

	if remote.UID == "" {
		remote.UID, _ = vcard.UID(remote.VCardText)
	}
	if remote.UID == "" {
		result.Failed++
		result.Errors = append(result.Errors, models.ContactError{
			Kind:    models.ErrorKindInvalid,
			Message: fmt.Sprintf("remote record %s has no UID", remote.Href),
		})
		return
	}

	if _, dup := st.seen[remote.UID]; dup {
		result.Failed++
		result.Errors = append(result.Errors, models.ContactError{
			UID:     remote.UID,
			Kind:    models.ErrorKindInvalid,
			Message: fmt.Sprintf("duplicate UID in remote enumeration (href %s)", remote.Href),
		})
		return
	}
	st.seen[remote.UID] = struct{}{}

	local := st.byUID[remote.UID]
	in := ClassifyInput{
		Direction:    models.SyncPull,
		ConnectionID: st.conn.ID,
		Local:        local,
		Remote:       &remote,
	}
	if local != nil {
		in.SharedCopy = st.ledger[local.ID]
	}

	switch action := Classify(in, st.conn.Capabilities); action {
	case ActionCreate:
		// a concurrent writer may have stored the UID since List
		existing, err := p.contacts.FindByUID(ctx, remote.UID)
		if err != nil {
			p.fail(ctx, st, "", remote.UID, err)
			return
		}
		if existing != nil {
			in.Local = existing
			in.SharedCopy = st.ledger[existing.ID]
			if again := Classify(in, st.conn.Capabilities); again != ActionCreate {
				p.apply(ctx, st, again, existing, remote)
				return
			}
		}
		p.apply(ctx, st, ActionCreate, nil, remote)

	default:
		p.apply(ctx, st, action, local, remote)
	}

	log.Debug().
		Str("func", "PullReconciler.reconcileRemote").
		Str("uid", remote.UID).
		Msg("remote contact reconciled")
}

func (p *PullReconciler) apply(ctx context.Context, st *pullState, action Action, local *models.LocalContact, remote models.RemoteContact) {
	result := st.result
	now := p.now()

	link := &models.RemoteLink{
		ConnectionID: st.conn.ID,
		UID:          remote.UID,
		ETag:         remote.ETag,
		Href:         remote.Href,
		AddressBook:  remote.AddressBook,
		LastSyncedAt: now,
	}

	switch action {
	case ActionSkip, ActionProtect:
		// SHARED copies that drifted are left to the protection cycle
		result.Skipped++

	// LastModifiedAt equal to LastSyncedAt marks the content as written by
	// this pull; the push change-skip relies on it.
	case ActionCreate:
		_, err := p.contacts.Create(ctx, models.LocalContact{
			UID:            remote.UID,
			VCardText:      remote.VCardText,
			Ownership:      models.OwnershipImported,
			Imported:       true,
			RemoteLink:     link,
			CreatedAt:      now,
			LastModifiedAt: now,
		})
		if err != nil {
			p.fail(ctx, st, "", remote.UID, err)
			return
		}
		result.Created++

	case ActionUpdate:
		updated := *local
		updated.UID = remote.UID
		updated.VCardText = remote.VCardText
		updated.RemoteLink = link
		updated.LastModifiedAt = now
		if err := p.contacts.Update(ctx, updated); err != nil {
			p.fail(ctx, st, local.ID, remote.UID, err)
			return
		}
		result.Updated++

	case ActionDeleteRemote:
		logger.FromContext(ctx).Warn().
			Str("func", "PullReconciler.apply").
			Str("contact_id", local.ID).
			Str("uid", remote.UID).
			Str("href", remote.Href).
			Msg("remote copy of a shared contact is an orphan, deleting it remotely")

		err := p.bridge.Delete(ctx, st.conn.ID, models.DeleteRequest{
			UID:         remote.UID,
			Href:        remote.Href,
			AddressBook: remote.AddressBook,
		})
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			p.fail(ctx, st, local.ID, remote.UID, err)
			return
		}
		result.OrphansDeleted++
	}
}

// applyServerDeletions deletes the local contacts the server no longer
// lists. noUIDs is true when the enumeration yielded no usable UID at all,
// which covers both an empty response and one made only of broken records.
func (p *PullReconciler) applyServerDeletions(ctx context.Context, st *pullState, locals []models.LocalContact, noUIDs bool) error {
	log := logger.FromContext(ctx)
	result := st.result

	var candidates []models.LocalContact
	importedExists := false
	for _, c := range locals {
		if c.IsImported() {
			importedExists = true
		}
		if _, present := st.seen[effectiveUID(c)]; present {
			continue
		}

		in := ClassifyInput{Direction: models.SyncPull, ConnectionID: st.conn.ID, Local: &c}
		switch Classify(in, st.conn.Capabilities) {
		case ActionDeleteLocal:
			candidates = append(candidates, c)
		default:
			if c.Ownership != models.OwnershipShared && c.LinkedTo(st.conn.ID) {
				result.ServerDeletionsSkipped++
			}
		}
	}

	if noUIDs && importedExists {
		result.DeletionAborted = true
		result.AbortReason = ErrDataIntegrityGuard.Error()
		result.ServerDeletionsSkipped += len(candidates)
		log.Warn().
			Str("func", "PullReconciler.applyServerDeletions").
			Int("candidates", len(candidates)).
			Msg("empty remote enumeration while imported contacts exist, server deletions aborted")
		return ErrDataIntegrityGuard
	}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := p.contacts.Delete(ctx, c.ID)
		if err != nil && !errors.Is(err, store.ErrContactNotFound) {
			p.fail(ctx, st, c.ID, effectiveUID(c), err)
			continue
		}
		result.ServerDeletionsApplied++
	}

	return nil
}

func (p *PullReconciler) fail(ctx context.Context, st *pullState, contactID, uid string, err error) {
	logger.FromContext(ctx).Err(err).
		Str("func", "PullReconciler").
		Str("contact_id", contactID).
		Str("uid", uid).
		Msg("failed to reconcile contact")

	st.result.Failed++
	st.result.Errors = append(st.result.Errors, contactError(contactID, uid, errorKind(err), err))
}
