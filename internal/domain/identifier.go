package domain

import (
	"regexp"

	"github.com/google/uuid"
)

// UUID v1-v5 textual form: 8-4-4-4-12 lowercase hex groups with a
// version nibble of 1-5 and a variant nibble of 8, 9, a or b.
var identifierPattern = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// Identifier is a validated unique identifier.
type Identifier struct {
	value string
}

// NewIdentifier validates value against the UUID textual grammar.
func NewIdentifier(value string) (Identifier, error) {
	if !identifierPattern.MatchString(value) {
		return Identifier{}, ErrInvalidIdentifier
	}
	return Identifier{value: value}, nil
}

// ReconstituteIdentifier rebuilds an Identifier from a trusted value.
func ReconstituteIdentifier(value string) Identifier {
	return Identifier{value: value}
}

// NewRandomIdentifier generates a fresh random Identifier.
func NewRandomIdentifier() Identifier {
	return Identifier{value: uuid.NewString()}
}

func (i Identifier) String() string { return i.value }

func (i Identifier) Equals(other Identifier) bool { return i.value == other.value }
