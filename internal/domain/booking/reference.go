package booking

import (
	"strings"

	"github.com/google/uuid"
)

const referencePrefix = "BOOK-"

// NewReference mints the internal booking id and the human-readable
// reference shown to customers: the prefix plus the first 8 hex characters
// of the id, uppercased. 32 bits of display entropy is accepted as
// negligible collision risk; no uniqueness re-check is made against storage.
func NewReference() (uuid.UUID, string) {
	id := uuid.New()
	return id, ReferenceFor(id)
}

// ReferenceFor derives the display reference for an existing booking id.
func ReferenceFor(id uuid.UUID) string {
	return referencePrefix + strings.ToUpper(id.String()[:8])
}

// NormalizeReference canonicalizes user-supplied references; customers type
// them into the assistant in whatever case they like.
func NormalizeReference(ref string) string {
	return strings.ToUpper(strings.TrimSpace(ref))
}
