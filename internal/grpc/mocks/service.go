package mocks

import (
	"context"
	"errors"

	"github.com/civicbridge/feedback-server/internal/report"
	"github.com/civicbridge/feedback-server/internal/service"
	"github.com/civicbridge/feedback-server/internal/store"
)

// MockInsightService is a mock implementation of the InsightService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockInsightService struct {
	SubmitFunc          func(ctx context.Context, in service.SubmitInput) (store.FeedbackRecord, error)
	SnapshotFunc        func(ctx context.Context) (service.Snapshot, error)
	RecommendationsFunc func(ctx context.Context) ([]string, error)
	RecentFunc          func(ctx context.Context, n int) ([]store.FeedbackRecord, error)
	AllFunc             func(ctx context.Context) ([]store.FeedbackRecord, error)
}

// Submit implements the InsightService interface
func (m *MockInsightService) Submit(ctx context.Context, in service.SubmitInput) (store.FeedbackRecord, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, in)
	}
	return store.FeedbackRecord{}, errors.New("SubmitFunc not implemented")
}

// Snapshot implements the InsightService interface
func (m *MockInsightService) Snapshot(ctx context.Context) (service.Snapshot, error) {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(ctx)
	}
	return service.Snapshot{}, errors.New("SnapshotFunc not implemented")
}

// Recommendations implements the InsightService interface
func (m *MockInsightService) Recommendations(ctx context.Context) ([]string, error) {
	if m.RecommendationsFunc != nil {
		return m.RecommendationsFunc(ctx)
	}
	return nil, errors.New("RecommendationsFunc not implemented")
}

// Recent implements the InsightService interface
func (m *MockInsightService) Recent(ctx context.Context, n int) ([]store.FeedbackRecord, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, n)
	}
	return nil, errors.New("RecentFunc not implemented")
}

// All implements the InsightService interface
func (m *MockInsightService) All(ctx context.Context) ([]store.FeedbackRecord, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, errors.New("AllFunc not implemented")
}

// MockReportGenerator is a mock implementation of the ReportGenerator
// interface for testing the handler layer.
type MockReportGenerator struct {
	ExportCSVFunc func(records []store.FeedbackRecord) (report.Artifact, error)
	NarrativeFunc func(records []store.FeedbackRecord) report.Artifact
}

// ExportCSV implements the ReportGenerator interface
func (m *MockReportGenerator) ExportCSV(records []store.FeedbackRecord) (report.Artifact, error) {
	if m.ExportCSVFunc != nil {
		return m.ExportCSVFunc(records)
	}
	return report.Artifact{}, errors.New("ExportCSVFunc not implemented")
}

// Narrative implements the ReportGenerator interface
func (m *MockReportGenerator) Narrative(records []store.FeedbackRecord) report.Artifact {
	if m.NarrativeFunc != nil {
		return m.NarrativeFunc(records)
	}
	return report.Artifact{}
}
