package utils

import "github.com/google/uuid"

// UUIDGenerator issues the identifiers of file records, folder records and
// blob objects. UUIDv7 ids sort by creation time, which keeps object keys
// and primary keys index friendly.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 if the v7 clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
