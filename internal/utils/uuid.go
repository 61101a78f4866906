package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for new users and notes.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether id is a well-formed UUID.
func IsValidUUID(id string) bool {
	return uuid.Validate(id) == nil
}
