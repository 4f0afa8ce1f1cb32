package queries

import (
	"context"
	"log/slog"
	"strings"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/infra"
	"bikeshare-api/internal/pkg/errs"
)

var ErrLookupNotFound = errs.New("booking reference not found")

// LookupReader reads the advisory reference projection. A miss is not
// authoritative; callers fall back to the booking store.
type LookupReader interface {
	Get(ctx context.Context, reference string) (*booking.LookupRecord, error)
}

// LookupRepairer re-writes a missing projection entry after a fallback hit.
type LookupRepairer interface {
	Put(ctx context.Context, rec booking.LookupRecord) error
}

// BookingProjectionSource derives a lookup record from the authoritative
// booking store.
type BookingProjectionSource interface {
	DeriveByReference(ctx context.Context, reference string) (*booking.LookupRecord, error)
}

type AssistantQueries interface {
	// LookupBooking resolves a booking reference case-insensitively,
	// consulting the fast projection first and the authoritative store on a
	// miss.
	LookupBooking(ctx context.Context, reference string) (*booking.LookupRecord, error)
	// Answer matches a free-form question against the FAQ topics.
	Answer(question string) string
}

type assistantQueriesImpl struct {
	lookup   LookupReader
	repairer LookupRepairer
	bookings BookingProjectionSource
}

func NewAssistantQueries(lookup LookupReader, repairer LookupRepairer, bookings BookingProjectionSource) AssistantQueries {
	return &assistantQueriesImpl{
		lookup:   lookup,
		repairer: repairer,
		bookings: bookings,
	}
}

func (q *assistantQueriesImpl) LookupBooking(ctx context.Context, reference string) (*booking.LookupRecord, error) {
	ref := booking.NormalizeReference(reference)
	if ref == "" {
		return nil, ErrLookupNotFound
	}

	rec, err := q.lookup.Get(ctx, ref)
	if err == nil {
		return rec, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		slog.Warn("lookup projection read failed, falling back to booking store",
			"booking_reference", ref, "error", err.Error())
	}

	// The projection is eventually consistent; a miss or a read failure
	// falls back to the authoritative record.
	rec, err = q.bookings.DeriveByReference(ctx, ref)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLookupNotFound
		}
		return nil, err
	}

	// Repair the projection so the next lookup hits the fast path.
	if err := q.repairer.Put(ctx, *rec); err != nil {
		slog.Warn("failed to repair lookup projection",
			"booking_reference", ref, "error", err.Error())
	}

	return rec, nil
}

type faqEntry struct {
	keyword string
	answer  string
}

// Ordered so the more specific topics win when a question matches several.
var faqEntries = []faqEntry{
	{"register", "To register: visit the registration page, fill in your details, create a username and password, verify your email, and complete the multi-factor setup. You'll receive a confirmation notification once done."},
	{"bikes", "We offer three types of bikes: scooters for short city rides, eBikes for longer distances, and Segways for self-balancing transport. Availability and rates for each type are on the main page."},
	{"cost", "Rental rates vary by bike type: scooters from $5/hour, eBikes from $8/hour, and Segways from $10/hour. Registered customers may receive discounts; check the rates page for current pricing."},
	{"booking", "To make a booking: log in, select your preferred bike type, choose your rental period, and confirm. You'll receive a booking reference code; use it here to get your bike access code."},
	{"help", "I can help with registration, bike types and rates, making bookings, retrieving your access code with a booking reference, and reporting concerns. What would you like to know?"},
	{"navigation", "Site sections: Home shows available bikes and rates, Register creates your account, Login accesses it, Booking reserves a bike, My Bookings lists your reservations, and Feedback shares your experience."},
}

const faqFallback = "I can assist with how to register, our bike types (scooter, eBike, Segway), rental rates, making bookings, getting your access code, and reporting problems. Please ask about any of these topics, or try rephrasing your question."

func (q *assistantQueriesImpl) Answer(question string) string {
	lower := strings.ToLower(question)
	for _, e := range faqEntries {
		if strings.Contains(lower, e.keyword) {
			return e.answer
		}
	}
	return faqFallback
}
