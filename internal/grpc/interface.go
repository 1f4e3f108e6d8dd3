package grpc

import (
	"context"
	"time"

	"github.com/civicbridge/feedback-server/internal/report"
	"github.com/civicbridge/feedback-server/internal/service"
	"github.com/civicbridge/feedback-server/internal/store"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// InsightService is the feedback pipeline consumed by the handlers.
type InsightService interface {
	Submit(ctx context.Context, in service.SubmitInput) (store.FeedbackRecord, error)
	Snapshot(ctx context.Context) (service.Snapshot, error)
	Recommendations(ctx context.Context) ([]string, error)
	Recent(ctx context.Context, n int) ([]store.FeedbackRecord, error)
	All(ctx context.Context) ([]store.FeedbackRecord, error)
}

// ReportGenerator renders the downloadable artifacts.
type ReportGenerator interface {
	ExportCSV(records []store.FeedbackRecord) (report.Artifact, error)
	Narrative(records []store.FeedbackRecord) report.Artifact
}
