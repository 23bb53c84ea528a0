package service

import (
	"fmt"
	"slices"
	"sync"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// ConnectionRegistry holds the live connections of the session keyed by
// connection id. It is owned by the orchestrator and handed to every
// component that needs connection metadata.
type ConnectionRegistry struct {
	mu    sync.RWMutex
	conns map[string]models.Connection
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{conns: make(map[string]models.Connection)}
}

// Add registers conn. It fails with [ErrConnectionExists] when the id is
// already taken.
func (r *ConnectionRegistry) Add(conn models.Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conns[conn.ID]; ok {
		return fmt.Errorf("%w: %s", ErrConnectionExists, conn.ID)
	}
	r.conns[conn.ID] = cloneConnection(conn)

	return nil
}

// Get returns a copy of the connection or [ErrConnectionNotFound].
func (r *ConnectionRegistry) Get(connectionID string) (models.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.conns[connectionID]
	if !ok {
		return models.Connection{}, fmt.Errorf("%w: %s", ErrConnectionNotFound, connectionID)
	}

	return cloneConnection(conn), nil
}

// Remove forgets the connection and reports whether it existed.
func (r *ConnectionRegistry) Remove(connectionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.conns[connectionID]
	delete(r.conns, connectionID)

	return ok
}

// IDs returns the registered connection ids in sorted order.
func (r *ConnectionRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.conns))
	for id := range r.conns {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

func cloneConnection(conn models.Connection) models.Connection {
	conn.AddressBooks = slices.Clone(conn.AddressBooks)
	return conn
}
