package commands

import (
	"context"
	"log/slog"

	"bikeshare-api/internal/domain/booking"
	"bikeshare-api/internal/domain/feedback"
	"bikeshare-api/internal/pkg/clock"
	"bikeshare-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyFeedback = errs.New("feedback text is required")

const (
	notificationConcernRaised = "CONCERN_RAISED"

	concernStatusOpen = "open"
)

type SubmitFeedbackInput struct {
	BikeID   uuid.UUID
	UserType string
	Text     string
}

type SubmitFeedbackResult struct {
	FeedbackID uuid.UUID
	Sentiment  string
}

type SubmitConcernInput struct {
	BookingReference string
	Description      string
}

type SubmitConcernResult struct {
	TicketID uuid.UUID
}

type FeedbackCommands interface {
	SubmitFeedback(ctx context.Context, in SubmitFeedbackInput) (*SubmitFeedbackResult, error)
	SubmitConcern(ctx context.Context, in SubmitConcernInput) (*SubmitConcernResult, error)
}

type feedbackCommandsImpl struct {
	feedback FeedbackRepository
	concerns ConcernRepository
	notifier Notifier
	clock    clock.Clock
}

func NewFeedbackCommands(
	feedbackRepo FeedbackRepository,
	concernRepo ConcernRepository,
	notifier Notifier,
	clk clock.Clock,
) FeedbackCommands {
	return &feedbackCommandsImpl{
		feedback: feedbackRepo,
		concerns: concernRepo,
		notifier: notifier,
		clock:    clk,
	}
}

func (f *feedbackCommandsImpl) SubmitFeedback(ctx context.Context, in SubmitFeedbackInput) (*SubmitFeedbackResult, error) {
	if in.Text == "" {
		return nil, ErrEmptyFeedback
	}

	sentiment := feedback.Analyze(in.Text)

	rec := FeedbackRecord{
		ID:        uuid.New(),
		BikeID:    in.BikeID,
		UserType:  in.UserType,
		Text:      in.Text,
		Sentiment: sentiment.String(),
		CreatedAt: f.clock.Now(),
	}

	if err := f.feedback.Create(ctx, rec); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	return &SubmitFeedbackResult{
		FeedbackID: rec.ID,
		Sentiment:  rec.Sentiment,
	}, nil
}

func (f *feedbackCommandsImpl) SubmitConcern(ctx context.Context, in SubmitConcernInput) (*SubmitConcernResult, error) {
	if in.Description == "" {
		return nil, ErrEmptyFeedback
	}

	ticket := ConcernTicket{
		ID:          uuid.New(),
		Reference:   booking.NormalizeReference(in.BookingReference),
		Description: in.Description,
		Status:      concernStatusOpen,
		CreatedAt:   f.clock.Now(),
	}

	if err := f.concerns.Create(ctx, ticket); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	// Forwarding to the operators' channel is best effort, like every other
	// out-of-band dispatch.
	payload := map[string]any{
		"ticketId":         ticket.ID.String(),
		"bookingReference": ticket.Reference,
		"description":      ticket.Description,
		"raisedAt":         ticket.CreatedAt,
	}
	if err := f.notifier.Dispatch(ctx, notificationConcernRaised, ticket.Reference, payload); err != nil {
		slog.Warn("failed to forward concern ticket",
			"ticket_id", ticket.ID.String(),
			"error", err.Error())
	}

	return &SubmitConcernResult{TicketID: ticket.ID}, nil
}
