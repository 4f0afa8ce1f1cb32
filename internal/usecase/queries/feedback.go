package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FeedbackView represents read-optimized feedback data for the analytics
// surface.
type FeedbackView struct {
	ID        uuid.UUID `json:"id"`
	BikeID    uuid.UUID `json:"bike_id"`
	UserType  string    `json:"user_type"`
	Text      string    `json:"text"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackQueries interface {
	ListFeedback(ctx context.Context) ([]*FeedbackView, error)
}

type FeedbackReadStore interface {
	FindAll(ctx context.Context) ([]*FeedbackView, error)
}

type feedbackQueriesImpl struct {
	readStore FeedbackReadStore
}

func NewFeedbackQueries(readStore FeedbackReadStore) FeedbackQueries {
	return &feedbackQueriesImpl{readStore: readStore}
}

func (q *feedbackQueriesImpl) ListFeedback(ctx context.Context) ([]*FeedbackView, error) {
	return q.readStore.FindAll(ctx)
}
