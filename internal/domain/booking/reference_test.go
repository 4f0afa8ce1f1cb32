//go:build unit

package booking_test

import (
	"regexp"
	"strings"
	"testing"

	"bikeshare-api/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^BOOK-[0-9A-F]{8}$`)

func TestNewReference(t *testing.T) {
	t.Run("format is BOOK- plus 8 uppercase hex chars", func(t *testing.T) {
		for range 100 {
			_, ref := booking.NewReference()
			assert.Regexp(t, referencePattern, ref)
		}
	})

	t.Run("reference derives from the id", func(t *testing.T) {
		id, ref := booking.NewReference()
		require.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, "BOOK-"+strings.ToUpper(id.String()[:8]), ref)
		assert.Equal(t, ref, booking.ReferenceFor(id))
	})
}

func TestNormalizeReference(t *testing.T) {
	assert.Equal(t, "BOOK-3F2A9CC1", booking.NormalizeReference("  book-3f2a9cc1 "))
	assert.Equal(t, "BOOK-3F2A9CC1", booking.NormalizeReference("BOOK-3F2A9CC1"))
}
