package mocks

import (
	"context"
	"errors"

	"github.com/civicbridge/feedback-server/internal/classifier"
)

// MockClassifier is a mock implementation of the Classifier interface
// for testing the service layer.
type MockClassifier struct {
	ClassifyFunc func(ctx context.Context, text, feedbackType string) (classifier.Result, error)
}

// Classify implements the Classifier interface
func (m *MockClassifier) Classify(ctx context.Context, text, feedbackType string) (classifier.Result, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text, feedbackType)
	}
	return classifier.Result{}, errors.New("ClassifyFunc not implemented")
}
