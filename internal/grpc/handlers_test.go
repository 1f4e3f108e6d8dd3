package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	pb "github.com/civicbridge/feedback-server/api/v1"
	"github.com/civicbridge/feedback-server/internal/grpc/mocks"
	"github.com/civicbridge/feedback-server/internal/report"
	"github.com/civicbridge/feedback-server/internal/service"
	"github.com/civicbridge/feedback-server/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func sampleSnapshot() service.Snapshot {
	return service.Snapshot{
		Total:      3,
		Sentiments: service.SentimentCounts{Positive: 1, Neutral: 1, Negative: 1},
		Shares:     service.SentimentShares{Positive: 33.3, Neutral: 33.3, Negative: 33.3},
		TypeCounts: map[store.FeedbackType]int{
			store.TypeSupport: 1,
			store.TypeConcern: 2,
		},
		CrossTab: []service.DemographicSentiment{
			{Demographic: store.DemographicFarmer, Positive: 1, Negative: 1},
			{Demographic: store.DemographicStudent, Neutral: 1},
		},
		HourlyCounts:         map[int]int{9: 2, 17: 1},
		DistinctDemographics: 2,
		TopConcerned:         store.DemographicFarmer,
	}
}

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{}
		mockReports := &mocks.MockReportGenerator{}
		mockCache := &mocks.MockCacher{}
		ttl := 5 * time.Minute

		handlers := NewGRPCHandlers(mockInsights, mockReports, mockCache, zap.NewNop(), ttl)

		assert.NotNil(t, handlers)
		assert.Equal(t, mockInsights, handlers.insights)
		assert.Equal(t, mockReports, handlers.reports)
		assert.Equal(t, mockCache, handlers.cache)
		assert.Equal(t, ttl, handlers.cacheTTL)
		assert.NotNil(t, handlers.logger)
	})

	t.Run("nil insight service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(nil, &mocks.MockReportGenerator{}, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		})
	})

	t.Run("nil report generator panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(&mocks.MockInsightService{}, nil, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		})
	})

	t.Run("nil cache is allowed", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockInsightService{}, &mocks.MockReportGenerator{}, nil, zap.NewNop(), time.Minute)

		assert.NotNil(t, handlers)
	})

	t.Run("zero TTL uses default", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockInsightService{}, &mocks.MockReportGenerator{}, &mocks.MockCacher{}, zap.NewNop(), 0)

		assert.Equal(t, defaultCacheDuration, handlers.cacheTTL)
	})

	t.Run("negative TTL uses default", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockInsightService{}, &mocks.MockReportGenerator{}, &mocks.MockCacher{}, zap.NewNop(), -time.Minute)

		assert.Equal(t, defaultCacheDuration, handlers.cacheTTL)
	})
}

// TestHandleError tests error handling and status code mapping
func TestHandleError(t *testing.T) {
	handlers := &GRPCHandlers{logger: zap.NewNop()}

	t.Run("context canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := handlers.handleError(ctx, "test_operation", errors.New("some error"))

		assert.Error(t, err)
		assert.Equal(t, codes.Canceled, status.Code(err))
		assert.Contains(t, err.Error(), "request canceled")
	})

	t.Run("context deadline exceeded", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)

		err := handlers.handleError(ctx, "test_operation", errors.New("some error"))

		assert.Error(t, err)
		assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
		assert.Contains(t, err.Error(), "request timed out")
	})

	t.Run("invalid record error", func(t *testing.T) {
		err := handlers.handleError(context.Background(), "test_operation", fmt.Errorf("append feedback: %w: text must not be empty", store.ErrInvalidRecord))

		assert.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, err.Error(), "text must not be empty")
	})

	t.Run("unknown error", func(t *testing.T) {
		err := handlers.handleError(context.Background(), "test_operation", errors.New("classifier connection lost"))

		assert.Error(t, err)
		assert.Equal(t, codes.Internal, status.Code(err))
		assert.Contains(t, err.Error(), "test_operation failed")
		assert.Contains(t, err.Error(), "classifier connection lost")
	})
}

// TestSubmitFeedback tests the ingestion handler
func TestSubmitFeedback(t *testing.T) {
	req := &pb.SubmitFeedbackRequest{
		Name:        "Mina",
		Demographic: "Farmer",
		Type:        "Concern",
		Text:        "Irrigation costs will rise.",
	}

	t.Run("successful submission", func(t *testing.T) {
		ts := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
		mockInsights := &mocks.MockInsightService{
			SubmitFunc: func(ctx context.Context, in service.SubmitInput) (store.FeedbackRecord, error) {
				assert.Equal(t, "Mina", in.Name)
				assert.Equal(t, store.DemographicFarmer, in.Demographic)
				assert.Equal(t, store.TypeConcern, in.Type)
				return store.FeedbackRecord{
					Timestamp:   ts,
					Name:        in.Name,
					Demographic: in.Demographic,
					Type:        in.Type,
					Text:        in.Text,
					Sentiment:   store.SentimentNegative,
					Category:    "economic",
				}, nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		resp, err := handlers.SubmitFeedback(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "Mina", resp.Record.Name)
		assert.Equal(t, "negative", resp.Record.Sentiment)
		assert.Equal(t, ts, resp.Record.Timestamp.AsTime())
	})

	t.Run("aggregate cache keys invalidated on success", func(t *testing.T) {
		var deleted []string
		mockInsights := &mocks.MockInsightService{
			SubmitFunc: func(ctx context.Context, in service.SubmitInput) (store.FeedbackRecord, error) {
				return store.FeedbackRecord{Text: in.Text}, nil
			},
		}
		mockCache := &mocks.MockCacher{
			DelFunc: func(ctx context.Context, keys ...string) error {
				deleted = append(deleted, keys...)
				return nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, mockCache, zap.NewNop(), time.Minute)

		_, err := handlers.SubmitFeedback(context.Background(), req)

		assert.NoError(t, err)
		assert.ElementsMatch(t, aggregateCacheKeys, deleted)
	})

	t.Run("cache not touched on rejection", func(t *testing.T) {
		delCalled := false
		mockInsights := &mocks.MockInsightService{
			SubmitFunc: func(ctx context.Context, in service.SubmitInput) (store.FeedbackRecord, error) {
				return store.FeedbackRecord{}, fmt.Errorf("%w: unknown demographic", store.ErrInvalidRecord)
			},
		}
		mockCache := &mocks.MockCacher{
			DelFunc: func(ctx context.Context, keys ...string) error {
				delCalled = true
				return nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.SubmitFeedback(context.Background(), req)

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.False(t, delCalled)
	})

	t.Run("cache deletion failure does not fail the request", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{
			SubmitFunc: func(ctx context.Context, in service.SubmitInput) (store.FeedbackRecord, error) {
				return store.FeedbackRecord{Text: in.Text}, nil
			},
		}
		mockCache := &mocks.MockCacher{
			DelFunc: func(ctx context.Context, keys ...string) error {
				return errors.New("redis unavailable")
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.SubmitFeedback(context.Background(), req)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
	})
}

// TestGetInsightsSummary tests the aggregation handler and proto mapping
func TestGetInsightsSummary(t *testing.T) {
	t.Run("snapshot mapped to proto", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{
			SnapshotFunc: func(ctx context.Context) (service.Snapshot, error) {
				return sampleSnapshot(), nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.GetInsightsSummary(context.Background(), &pb.GetInsightsSummaryRequest{})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, int64(3), resp.Total)
		assert.Equal(t, int64(1), resp.Sentiments.Negative)
		assert.InDelta(t, 33.3, resp.Shares.Positive, 0.001)
		assert.Equal(t, int64(2), resp.TypeCounts["Concern"])
		assert.Len(t, resp.CrossTab, 2)
		assert.Equal(t, "Farmer", resp.CrossTab[0].Demographic)
		assert.Equal(t, int64(1), resp.CrossTab[0].Negative)
		assert.Equal(t, int64(2), resp.HourlyCounts[9])
		assert.Equal(t, int64(2), resp.DistinctDemographics)
		assert.Equal(t, "Farmer", resp.TopConcerned)
	})

	t.Run("cache hit served without touching the service", func(t *testing.T) {
		serviceCalled := false
		mockInsights := &mocks.MockInsightService{
			SnapshotFunc: func(ctx context.Context) (service.Snapshot, error) {
				serviceCalled = true
				return service.Snapshot{}, nil
			},
		}
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				snap, ok := dest.(*service.Snapshot)
				assert.True(t, ok)
				*snap = sampleSnapshot()
				return nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, mockCache, zap.NewNop(), time.Minute)

		resp, err := handlers.GetInsightsSummary(context.Background(), &pb.GetInsightsSummaryRequest{})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.Total)
		assert.False(t, serviceCalled)
	})

	t.Run("cache populated before the response returns", func(t *testing.T) {
		setDone := false
		mockInsights := &mocks.MockInsightService{
			SnapshotFunc: func(ctx context.Context) (service.Snapshot, error) {
				return sampleSnapshot(), nil
			},
		}
		mockCache := &mocks.MockCacher{
			SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
				setDone = true
				return nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, mockCache, zap.NewNop(), time.Minute)

		_, err := handlers.GetInsightsSummary(context.Background(), &pb.GetInsightsSummaryRequest{})

		assert.NoError(t, err)
		assert.True(t, setDone)
	})

	t.Run("slow cache write cannot mask a later submission", func(t *testing.T) {
		var mu sync.Mutex
		cached := map[string][]byte{}
		mockCache := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				mu.Lock()
				defer mu.Unlock()
				payload, ok := cached[key]
				if !ok {
					return redis.Nil
				}
				return json.Unmarshal(payload, dest)
			},
			SetFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
				time.Sleep(50 * time.Millisecond)
				payload, err := json.Marshal(value)
				if err != nil {
					return err
				}
				mu.Lock()
				defer mu.Unlock()
				cached[key] = payload
				return nil
			},
			DelFunc: func(ctx context.Context, keys ...string) error {
				mu.Lock()
				defer mu.Unlock()
				for _, key := range keys {
					delete(cached, key)
				}
				return nil
			},
		}

		total := 0
		mockInsights := &mocks.MockInsightService{
			SnapshotFunc: func(ctx context.Context) (service.Snapshot, error) {
				return service.Snapshot{Total: total}, nil
			},
			SubmitFunc: func(ctx context.Context, in service.SubmitInput) (store.FeedbackRecord, error) {
				total++
				return store.FeedbackRecord{Text: in.Text}, nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, mockCache, zap.NewNop(), time.Minute)
		ctx := context.Background()

		first, err := handlers.GetInsightsSummary(ctx, &pb.GetInsightsSummaryRequest{})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), first.Total)

		_, err = handlers.SubmitFeedback(ctx, &pb.SubmitFeedbackRequest{Text: "new feedback"})
		assert.NoError(t, err)

		// Any write still in flight from the first read would have landed by now.
		time.Sleep(100 * time.Millisecond)

		second, err := handlers.GetInsightsSummary(ctx, &pb.GetInsightsSummaryRequest{})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), second.Total)
	})

	t.Run("service error mapped to internal", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{
			SnapshotFunc: func(ctx context.Context) (service.Snapshot, error) {
				return service.Snapshot{}, errors.New("store unavailable")
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.GetInsightsSummary(context.Background(), &pb.GetInsightsSummaryRequest{})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.Internal, status.Code(err))
	})
}

// TestGetRecommendations tests the recommendation handler
func TestGetRecommendations(t *testing.T) {
	t.Run("recommendations passed through in order", func(t *testing.T) {
		want := []string{
			"Consider addressing the high level of concerns (30%+) before policy implementation.",
			"Review 4 citizen suggestions for potential policy improvements.",
		}
		mockInsights := &mocks.MockInsightService{
			RecommendationsFunc: func(ctx context.Context) ([]string, error) {
				return want, nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.GetRecommendations(context.Background(), &pb.GetRecommendationsRequest{})

		assert.NoError(t, err)
		assert.Equal(t, want, resp.Recommendations)
	})

	t.Run("empty recommendations are not an error", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{
			RecommendationsFunc: func(ctx context.Context) ([]string, error) {
				return []string{}, nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.GetRecommendations(context.Background(), &pb.GetRecommendationsRequest{})

		assert.NoError(t, err)
		assert.Empty(t, resp.Recommendations)
	})
}

// TestGetRecentFeedback tests the recent-records handler and limit clamping
func TestGetRecentFeedback(t *testing.T) {
	newHandlers := func(capture *int) *GRPCHandlers {
		mockInsights := &mocks.MockInsightService{
			RecentFunc: func(ctx context.Context, n int) ([]store.FeedbackRecord, error) {
				*capture = n
				return []store.FeedbackRecord{{Text: "hello", Name: store.AnonymousName}}, nil
			},
		}
		return NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, nil, zap.NewNop(), time.Minute)
	}

	t.Run("zero limit uses default", func(t *testing.T) {
		var got int
		handlers := newHandlers(&got)

		resp, err := handlers.GetRecentFeedback(context.Background(), &pb.GetRecentFeedbackRequest{})

		assert.NoError(t, err)
		assert.Len(t, resp.Records, 1)
		assert.Equal(t, defaultRecentLimit, got)
	})

	t.Run("negative limit uses default", func(t *testing.T) {
		var got int
		handlers := newHandlers(&got)

		_, err := handlers.GetRecentFeedback(context.Background(), &pb.GetRecentFeedbackRequest{Limit: -3})

		assert.NoError(t, err)
		assert.Equal(t, defaultRecentLimit, got)
	})

	t.Run("oversized limit clamped to maximum", func(t *testing.T) {
		var got int
		handlers := newHandlers(&got)

		_, err := handlers.GetRecentFeedback(context.Background(), &pb.GetRecentFeedbackRequest{Limit: 5000})

		assert.NoError(t, err)
		assert.Equal(t, maxRecentLimit, got)
	})

	t.Run("explicit limit passed through", func(t *testing.T) {
		var got int
		handlers := newHandlers(&got)

		_, err := handlers.GetRecentFeedback(context.Background(), &pb.GetRecentFeedbackRequest{Limit: 7})

		assert.NoError(t, err)
		assert.Equal(t, 7, got)
	})
}

// TestExportFeedback tests the CSV export handler
func TestExportFeedback(t *testing.T) {
	t.Run("artifact returned with file name", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{
			AllFunc: func(ctx context.Context) ([]store.FeedbackRecord, error) {
				return []store.FeedbackRecord{{Text: "row one"}}, nil
			},
		}
		mockReports := &mocks.MockReportGenerator{
			ExportCSVFunc: func(records []store.FeedbackRecord) (report.Artifact, error) {
				assert.Len(t, records, 1)
				return report.Artifact{
					FileName: "policy_feedback_20250615.csv",
					Content:  []byte("timestamp,name\n"),
				}, nil
			},
		}
		handlers := NewGRPCHandlers(mockInsights, mockReports, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.ExportFeedback(context.Background(), &pb.ExportFeedbackRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "policy_feedback_20250615.csv", resp.FileName)
		assert.Equal(t, []byte("timestamp,name\n"), resp.Content)
	})

	t.Run("generator failure mapped to internal", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{
			AllFunc: func(ctx context.Context) ([]store.FeedbackRecord, error) {
				return nil, nil
			},
		}
		mockReports := &mocks.MockReportGenerator{
			ExportCSVFunc: func(records []store.FeedbackRecord) (report.Artifact, error) {
				return report.Artifact{}, errors.New("encoding failed")
			},
		}
		handlers := NewGRPCHandlers(mockInsights, mockReports, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.ExportFeedback(context.Background(), &pb.ExportFeedbackRequest{})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.Internal, status.Code(err))
	})
}

// TestGenerateReport tests the narrative report handler
func TestGenerateReport(t *testing.T) {
	t.Run("report artifact returned", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{
			AllFunc: func(ctx context.Context) ([]store.FeedbackRecord, error) {
				return []store.FeedbackRecord{{Text: "row one"}, {Text: "row two"}}, nil
			},
		}
		mockReports := &mocks.MockReportGenerator{
			NarrativeFunc: func(records []store.FeedbackRecord) report.Artifact {
				assert.Len(t, records, 2)
				return report.Artifact{
					FileName: "policy_insights_report_20250615.txt",
					Content:  []byte("POLICY FEEDBACK ANALYSIS REPORT\n"),
				}
			},
		}
		handlers := NewGRPCHandlers(mockInsights, mockReports, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.GenerateReport(context.Background(), &pb.GenerateReportRequest{})

		assert.NoError(t, err)
		assert.Equal(t, "policy_insights_report_20250615.txt", resp.FileName)
		assert.Contains(t, string(resp.Content), "POLICY FEEDBACK ANALYSIS REPORT")
	})

	t.Run("store failure mapped to internal", func(t *testing.T) {
		mockInsights := &mocks.MockInsightService{
			AllFunc: func(ctx context.Context) ([]store.FeedbackRecord, error) {
				return nil, errors.New("store unavailable")
			},
		}
		handlers := NewGRPCHandlers(mockInsights, &mocks.MockReportGenerator{}, nil, zap.NewNop(), time.Minute)

		resp, err := handlers.GenerateReport(context.Background(), &pb.GenerateReportRequest{})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, codes.Internal, status.Code(err))
	})
}
