package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// ChangeNotifier fans out contact change notifications to subscribers.
//
// While at least one suppression is active every notification carries
// Suppressed=true so that consumers reacting to user edits can ignore the
// writes of the sync engine itself.
type ChangeNotifier struct {
	mu     sync.RWMutex
	subs   map[int]chan models.ContactChange
	nextID int

	suppressed atomic.Int32
	now        func() time.Time
}

// NewChangeNotifier returns an empty notifier.
func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{
		subs: make(map[int]chan models.ContactChange),
		now:  time.Now,
	}
}

// Subscribe registers a subscriber with the given buffer size. The returned
// function unsubscribes and closes the channel. Notifications that do not
// fit into a full buffer are dropped for that subscriber.
func (n *ChangeNotifier) Subscribe(buffer int) (<-chan models.ContactChange, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan models.ContactChange, buffer)

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = ch
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(ch)
		})
	}
}

// Suppress raises the in-flight flag until the returned release function is
// called. Suppressions nest.
func (n *ChangeNotifier) Suppress() (release func()) {
	n.suppressed.Add(1)

	var once sync.Once
	return func() {
		once.Do(func() { n.suppressed.Add(-1) })
	}
}

// Suppressed reports whether any suppression is active.
func (n *ChangeNotifier) Suppressed() bool {
	return n.suppressed.Load() > 0
}

// Notify publishes a change to all subscribers without blocking.
func (n *ChangeNotifier) Notify(contactID string, kind models.ContactChangeKind) {
	change := models.ContactChange{
		ContactID:  contactID,
		Kind:       kind,
		Suppressed: n.Suppressed(),
		At:         n.now(),
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
