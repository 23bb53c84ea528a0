package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/store"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

const testConn = "conn-1"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func card(uid, fn string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\nVERSION:4.0\r\n")
	if uid != "" {
		b.WriteString("UID:" + uid + "\r\n")
	}
	b.WriteString("FN:" + fn + "\r\nEND:VCARD\r\n")
	return b.String()
}

func baikalCaps() models.Capabilities {
	return Refine(builtinProfiles[0].caps, []models.AddressBook{
		{Name: "contacts", Href: "/dav.php/addressbooks/alice/contacts/"},
		{Name: "shared-contacts", Href: "/dav.php/addressbooks/alice/shared-contacts/", ReadOnly: true},
	})
}

func newTestRegistry(caps models.Capabilities) *ConnectionRegistry {
	r := NewConnectionRegistry()
	_ = r.Add(models.Connection{ID: testConn, ServerURL: "https://dav.example.com", Capabilities: caps})
	return r
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("gen-%d", s.n)
}

// memStore is an in-memory contact store and shared-copy ledger that counts
// every write.
type memStore struct {
	mu       sync.Mutex
	contacts map[string]models.LocalContact
	ledger   map[string]models.SharedCopy
	nextID   int

	creates, updates, linkUpdates, deletes, upserts int
}

func newMemStore(contacts ...models.LocalContact) *memStore {
	s := &memStore{
		contacts: make(map[string]models.LocalContact),
		ledger:   make(map[string]models.SharedCopy),
	}
	for _, c := range contacts {
		s.contacts[c.ID] = c
	}
	return s
}

func (s *memStore) writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creates + s.updates + s.linkUpdates + s.deletes + s.upserts
}

func (s *memStore) contact(id string) (models.LocalContact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[id]
	return c, ok
}

func (s *memStore) List(context.Context) ([]models.LocalContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LocalContact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b models.LocalContact) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func (s *memStore) Get(_ context.Context, id string) (models.LocalContact, error) {
	c, ok := s.contact(id)
	if !ok {
		return models.LocalContact{}, store.ErrContactNotFound
	}
	return c, nil
}

func (s *memStore) FindByUID(_ context.Context, uid string) (*models.LocalContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.contacts {
		if c.UID == uid {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) Create(_ context.Context, c models.LocalContact) (models.LocalContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.contacts {
		if c.UID != "" && existing.UID == c.UID {
			return models.LocalContact{}, store.ErrContactAlreadyExists
		}
	}
	if c.ID == "" {
		s.nextID++
		c.ID = fmt.Sprintf("new-%d", s.nextID)
	}
	s.contacts[c.ID] = c
	s.creates++
	return c, nil
}

func (s *memStore) Update(_ context.Context, c models.LocalContact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[c.ID]; !ok {
		return store.ErrContactNotFound
	}
	s.contacts[c.ID] = c
	s.updates++
	return nil
}

func (s *memStore) UpdateRemoteLink(_ context.Context, id string, link *models.RemoteLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return store.ErrContactNotFound
	}
	c.RemoteLink = link
	s.contacts[id] = c
	s.linkUpdates++
	return nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id]; !ok {
		return store.ErrContactNotFound
	}
	delete(s.contacts, id)
	s.deletes++
	return nil
}

// sharedLedger exposes the ledger half of memStore as a
// store.SharedCopyRepository.
type sharedLedger struct{ *memStore }

func (s *memStore) shared() store.SharedCopyRepository { return sharedLedger{s} }

func (l sharedLedger) Upsert(_ context.Context, sc models.SharedCopy) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ledger[sc.ConnectionID+"/"+sc.ContactID] = sc
	l.upserts++
	return nil
}

func (l sharedLedger) Get(_ context.Context, connectionID, contactID string) (*models.SharedCopy, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	sc, ok := l.ledger[connectionID+"/"+contactID]
	if !ok {
		return nil, nil
	}
	return &sc, nil
}

func (l sharedLedger) List(_ context.Context, connectionID string) ([]models.SharedCopy, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.SharedCopy
	for _, sc := range l.ledger {
		if sc.ConnectionID == connectionID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (l sharedLedger) Delete(_ context.Context, connectionID, contactID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.ledger, connectionID+"/"+contactID)
	return nil
}

// memBridge is an in-memory remote server reached through the bridge.
type memBridge struct {
	mu      sync.Mutex
	records map[string]models.RemoteContact
	etag    int

	unavailable bool
	unreachable bool
	books       []models.AddressBook

	pushes  []models.PushRequest
	deletes []models.DeleteRequest
}

func newMemBridge(records ...models.RemoteContact) *memBridge {
	b := &memBridge{records: make(map[string]models.RemoteContact)}
	for _, r := range records {
		b.records[r.UID] = r
	}
	return b
}

var _ adapter.BridgeAdapter = (*memBridge)(nil)

func (b *memBridge) Discover(context.Context, string, models.DiscoverRequest) ([]models.AddressBook, error) {
	return b.books, nil
}

func (b *memBridge) Fetch(context.Context, string) ([]models.RemoteContact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unavailable {
		return nil, adapter.ErrServerUnavailable
	}
	out := make([]models.RemoteContact, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	slices.SortFunc(out, func(x, y models.RemoteContact) int { return strings.Compare(x.UID, y.UID) })
	return out, nil
}

func (b *memBridge) Push(_ context.Context, _ string, req models.PushRequest) (models.PushResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.etag++
	rec := models.RemoteContact{
		UID:         req.UID,
		VCardText:   req.VCardText,
		ETag:        fmt.Sprintf(`"e%d"`, b.etag),
		Href:        "/" + req.AddressBook + "/" + req.UID + ".vcf",
		AddressBook: req.AddressBook,
	}
	b.records[req.UID] = rec
	b.pushes = append(b.pushes, req)

	return models.PushResponse{ETag: rec.ETag, Href: rec.Href, AddressBook: rec.AddressBook}, nil
}

func (b *memBridge) Delete(_ context.Context, _ string, req models.DeleteRequest) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.records[req.UID]; !ok {
		return adapter.ErrNotFound
	}
	delete(b.records, req.UID)
	b.deletes = append(b.deletes, req)
	return nil
}

func (b *memBridge) Health(context.Context, string) (models.HealthResponse, error) {
	if b.unreachable {
		return models.HealthResponse{Status: "degraded"}, nil
	}
	return models.HealthResponse{Status: "ok", ServerReachable: true}, nil
}

// edit simulates a change made directly on the remote server.
func (b *memBridge) edit(uid, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec := b.records[uid]
	b.etag++
	rec.VCardText = text
	rec.ETag = fmt.Sprintf(`"e%d"`, b.etag)
	b.records[uid] = rec
}

func (b *memBridge) pushCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pushes)
}
