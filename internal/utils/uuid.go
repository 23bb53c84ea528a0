package utils

import "github.com/google/uuid"

// UUIDGenerator hands out identifiers for connections, contact UIDs and
// trace ids. Version 7 values sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return &UUIDGenerator{} }

// Generate never fails: if the v7 clock source errors it falls back to a
// random v4.
func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
