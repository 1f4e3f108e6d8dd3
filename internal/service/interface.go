package service

import (
	"context"

	"github.com/civicbridge/feedback-server/internal/classifier"
	"github.com/civicbridge/feedback-server/internal/store"
)

// FeedbackStore defines the store operations the service depends on.
type FeedbackStore interface {
	Append(rec store.FeedbackRecord) error
	All() []store.FeedbackRecord
	Recent(n int) []store.FeedbackRecord
	Len() int
}

// Classifier is the external text-classification collaborator.
type Classifier interface {
	Classify(ctx context.Context, text, feedbackType string) (classifier.Result, error)
}
