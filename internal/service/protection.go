package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/store"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/vcard"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// SharedProtection keeps the remote copies of SHARED contacts identical to
// the local record on servers that cannot enforce read-only access.
type SharedProtection struct {
	registry *ConnectionRegistry
	bridge   adapter.BridgeAdapter
	contacts store.ContactRepository
	shared   store.SharedCopyRepository
	pusher   Pusher
	events   *EventBus

	now func() time.Time
}

func NewSharedProtection(
	registry *ConnectionRegistry,
	bridge adapter.BridgeAdapter,
	contacts store.ContactRepository,
	shared store.SharedCopyRepository,
	pusher Pusher,
	events *EventBus,
) *SharedProtection {
	return &SharedProtection{
		registry: registry,
		bridge:   bridge,
		contacts: contacts,
		shared:   shared,
		pusher:   pusher,
		events:   events,
		now:      time.Now,
	}
}

// DetectUnauthorizedEdits implements [Protector].
//
// Every eligible SHARED contact whose remote copy differs from the last
// pushed version, or is missing, is force-pushed again and reported on the
// event bus.
func (s *SharedProtection) DetectUnauthorizedEdits(ctx context.Context, connectionID string) (result models.ProtectionResult) {
	started := s.now()
	result.ConnectionID = connectionID
	defer func() { result.Duration = s.now().Sub(started) }()

	log := logger.FromContext(ctx)

	conn, err := s.registry.Get(connectionID)
	if err != nil {
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}
	if !conn.Capabilities.ClientSideProtection() {
		result.NoOp, result.Success = true, true
		return result
	}

	remotes, err := s.bridge.Fetch(ctx, connectionID)
	if err != nil {
		log.Err(err).Str("func", "SharedProtection.DetectUnauthorizedEdits").Msg("failed to fetch remote contacts")
		result.Error = fmt.Errorf("fetch remote contacts: %w", err).Error()
		result.Code = errorCode(err)
		return result
	}
	byUID := make(map[string]*models.RemoteContact, len(remotes))
	for i := range remotes {
		uid := remotes[i].UID
		if uid == "" {
			uid, _ = vcard.UID(remotes[i].VCardText)
		}
		if _, dup := byUID[uid]; uid != "" && !dup {
			byUID[uid] = &remotes[i]
		}
	}

	shared, ledger, err := s.sharedContacts(ctx, connectionID)
	if err != nil {
		log.Err(err).Str("func", "SharedProtection.DetectUnauthorizedEdits").Msg("failed to load shared contacts")
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}

	for i := range shared {
		if err = ctx.Err(); err != nil {
			result.Error = err.Error()
			result.Code = errorCode(err)
			return result
		}

		c := shared[i]
		result.Checked++

		action := Classify(ClassifyInput{
			Direction:    models.SyncProtect,
			ConnectionID: connectionID,
			Local:        &c,
			Remote:       byUID[effectiveUID(c)],
			SharedCopy:   ledger[c.ID],
		}, conn.Capabilities)
		if action != ActionProtect {
			continue
		}

		log.Warn().
			Str("func", "SharedProtection.DetectUnauthorizedEdits").
			Str("contact_id", c.ID).
			Str("uid", effectiveUID(c)).
			Msg("remote copy of a shared contact was modified or removed, restoring it")

		if s.restore(ctx, &result, c) {
			s.events.Publish(models.Event{
				Type:         models.EventSharedContactCorrected,
				ConnectionID: connectionID,
				Direction:    models.SyncProtect,
				At:           s.now(),
				ContactID:    c.ID,
				UID:          effectiveUID(c),
				DisplayName:  vcard.DisplayName(c.VCardText),
			})
		}
	}

	result.Success = true
	log.Info().
		Str("func", "SharedProtection.DetectUnauthorizedEdits").
		Int("checked", result.Checked).
		Int("corrected", result.Corrected).
		Int("failed", result.Failed).
		Msg("shared contact protection finished")

	return result
}

// RefreshShared implements [Protector]. It force-pushes every eligible
// SHARED contact without looking at the remote side first.
func (s *SharedProtection) RefreshShared(ctx context.Context, connectionID string) (result models.ProtectionResult) {
	started := s.now()
	result.ConnectionID = connectionID
	defer func() { result.Duration = s.now().Sub(started) }()

	log := logger.FromContext(ctx)

	conn, err := s.registry.Get(connectionID)
	if err != nil {
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}
	if !conn.Capabilities.ClientSideProtection() {
		result.NoOp, result.Success = true, true
		return result
	}

	shared, _, err := s.sharedContacts(ctx, connectionID)
	if err != nil {
		log.Err(err).Str("func", "SharedProtection.RefreshShared").Msg("failed to load shared contacts")
		result.Error = err.Error()
		result.Code = errorCode(err)
		return result
	}

	for i := range shared {
		if err = ctx.Err(); err != nil {
			result.Error = err.Error()
			result.Code = errorCode(err)
			return result
		}

		c := shared[i]
		result.Checked++
		if Classify(ClassifyInput{Direction: models.SyncRefresh, ConnectionID: connectionID, Local: &c}, conn.Capabilities) == ActionProtect {
			s.restore(ctx, &result, c)
		}
	}

	result.Success = true
	log.Info().
		Str("func", "SharedProtection.RefreshShared").
		Int("checked", result.Checked).
		Int("refreshed", result.Corrected).
		Int("failed", result.Failed).
		Msg("shared contact refresh finished")

	return result
}

func (s *SharedProtection) restore(ctx context.Context, result *models.ProtectionResult, c models.LocalContact) bool {
	pushed := s.pusher.PushOne(ctx, c, result.ConnectionID, models.PushOptions{Force: true})
	if pushed.Status != models.PushStatusPushed {
		result.Failed++
		result.Errors = append(result.Errors, pushError(pushed))
		return false
	}

	result.Corrected++
	return true
}

// sharedContacts returns the eligible SHARED contacts and the ledger of the
// connection keyed by contact id.
func (s *SharedProtection) sharedContacts(ctx context.Context, connectionID string) ([]models.LocalContact, map[string]*models.SharedCopy, error) {
	locals, err := s.contacts.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list local contacts: %w", err)
	}

	shared := make([]models.LocalContact, 0)
	for _, c := range locals {
		if c.Ownership == models.OwnershipShared && c.Eligible() {
			shared = append(shared, c)
		}
	}

	copies, err := s.shared.List(ctx, connectionID)
	if err != nil {
		return nil, nil, fmt.Errorf("list shared copies: %w", err)
	}
	ledger := make(map[string]*models.SharedCopy, len(copies))
	for i := range copies {
		ledger[copies[i].ContactID] = &copies[i]
	}

	return shared, ledger, nil
}
