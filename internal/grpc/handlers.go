package grpc

import (
	"context"
	"errors"
	"time"

	pb "github.com/civicbridge/feedback-server/api/v1"
	"github.com/civicbridge/feedback-server/internal/service"
	"github.com/civicbridge/feedback-server/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second

	defaultRecentLimit = 5
	maxRecentLimit     = 100
)

type CacheKeyType string

const (
	cacheKeyInsightsSummary CacheKeyType = "grpc:insights_summary"
	cacheKeyRecommendations CacheKeyType = "grpc:recommendations"
)

// aggregateCacheKeys lists every key invalidated when a submission lands,
// so cached aggregates never outlive an append.
var aggregateCacheKeys = []string{
	string(cacheKeyInsightsSummary),
	string(cacheKeyRecommendations),
}

type GRPCHandlers struct {
	pb.UnimplementedPolicyFeedbackServer
	insights InsightService
	reports  ReportGenerator
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(insights InsightService, reports ReportGenerator, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if insights == nil {
		panic("nil InsightService provided to NewGRPCHandlers")
	}
	if reports == nil {
		panic("nil ReportGenerator provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		insights: insights,
		reports:  reports,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, store.ErrInvalidRecord):
		s.logger.Info("rejected feedback submission", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func recordToProto(rec store.FeedbackRecord) *pb.FeedbackRecord {
	return &pb.FeedbackRecord{
		Timestamp:   timestamppb.New(rec.Timestamp),
		Name:        rec.Name,
		Demographic: string(rec.Demographic),
		Type:        string(rec.Type),
		Text:        rec.Text,
		Sentiment:   string(rec.Sentiment),
		KeyPoints:   rec.KeyPoints,
		Category:    rec.Category,
	}
}

func (s *GRPCHandlers) SubmitFeedback(ctx context.Context, req *pb.SubmitFeedbackRequest) (*pb.SubmitFeedbackResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	rec, err := s.insights.Submit(ctx, service.SubmitInput{
		Name:        req.GetName(),
		Demographic: store.Demographic(req.GetDemographic()),
		Type:        store.FeedbackType(req.GetType()),
		Text:        req.GetText(),
	})
	if err != nil {
		return nil, s.handleError(ctx, "SubmitFeedback", err)
	}

	// Cached aggregates are stale the moment the append lands.
	if s.cache != nil {
		if err := s.cache.Del(ctx, aggregateCacheKeys...); err != nil {
			s.logger.Warn("failed to invalidate aggregate cache", zap.Error(err))
		}
	}

	return &pb.SubmitFeedbackResponse{Record: recordToProto(rec)}, nil
}

func (s *GRPCHandlers) GetInsightsSummary(ctx context.Context, _ *pb.GetInsightsSummaryRequest) (*pb.InsightsSummaryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	snap, err := FindAndCache(ctx, s.cache, &s.sfGroup, string(cacheKeyInsightsSummary), s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.Snapshot, error) {
		return s.insights.Snapshot(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetInsightsSummary", err)
	}

	return snapshotToProto(snap), nil
}

func snapshotToProto(snap service.Snapshot) *pb.InsightsSummaryResponse {
	typeCounts := make(map[string]int64, len(snap.TypeCounts))
	for t, c := range snap.TypeCounts {
		typeCounts[string(t)] = int64(c)
	}

	hourly := make(map[int32]int64, len(snap.HourlyCounts))
	for hour, c := range snap.HourlyCounts {
		hourly[int32(hour)] = int64(c)
	}

	crossTab := make([]*pb.DemographicSentimentRow, len(snap.CrossTab))
	for i, row := range snap.CrossTab {
		crossTab[i] = &pb.DemographicSentimentRow{
			Demographic: string(row.Demographic),
			Positive:    int64(row.Positive),
			Neutral:     int64(row.Neutral),
			Negative:    int64(row.Negative),
		}
	}

	return &pb.InsightsSummaryResponse{
		Total: int64(snap.Total),
		Sentiments: &pb.SentimentCounts{
			Positive: int64(snap.Sentiments.Positive),
			Neutral:  int64(snap.Sentiments.Neutral),
			Negative: int64(snap.Sentiments.Negative),
		},
		Shares: &pb.SentimentShares{
			Positive: snap.Shares.Positive,
			Neutral:  snap.Shares.Neutral,
			Negative: snap.Shares.Negative,
		},
		TypeCounts:           typeCounts,
		CrossTab:             crossTab,
		HourlyCounts:         hourly,
		DistinctDemographics: int64(snap.DistinctDemographics),
		TopConcerned:         string(snap.TopConcerned),
	}
}

func (s *GRPCHandlers) GetRecommendations(ctx context.Context, _ *pb.GetRecommendationsRequest) (*pb.RecommendationsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	recs, err := FindAndCache(ctx, s.cache, &s.sfGroup, string(cacheKeyRecommendations), s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]string, error) {
		return s.insights.Recommendations(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetRecommendations", err)
	}

	return &pb.RecommendationsResponse{Recommendations: recs}, nil
}

func (s *GRPCHandlers) GetRecentFeedback(ctx context.Context, req *pb.GetRecentFeedbackRequest) (*pb.RecentFeedbackResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	records, err := s.insights.Recent(ctx, limit)
	if err != nil {
		return nil, s.handleError(ctx, "GetRecentFeedback", err)
	}

	pbRecords := make([]*pb.FeedbackRecord, len(records))
	for i, rec := range records {
		pbRecords[i] = recordToProto(rec)
	}
	return &pb.RecentFeedbackResponse{Records: pbRecords}, nil
}

func (s *GRPCHandlers) ExportFeedback(ctx context.Context, _ *pb.ExportFeedbackRequest) (*pb.ExportArtifactResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	records, err := s.insights.All(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "ExportFeedback", err)
	}

	artifact, err := s.reports.ExportCSV(records)
	if err != nil {
		return nil, s.handleError(ctx, "ExportFeedback", err)
	}

	return &pb.ExportArtifactResponse{FileName: artifact.FileName, Content: artifact.Content}, nil
}

func (s *GRPCHandlers) GenerateReport(ctx context.Context, _ *pb.GenerateReportRequest) (*pb.ExportArtifactResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	records, err := s.insights.All(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "GenerateReport", err)
	}

	artifact := s.reports.Narrative(records)
	return &pb.ExportArtifactResponse{FileName: artifact.FileName, Content: artifact.Content}, nil
}
