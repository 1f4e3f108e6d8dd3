package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/civicbridge/feedback-server/internal/classifier"
	"github.com/civicbridge/feedback-server/internal/store"
)

// InsightService ingests citizen feedback and serves aggregate views of it.
// All reads are pure functions of the store contents at call time.
type InsightService struct {
	store      FeedbackStore
	classifier Classifier
	logger     *zap.Logger
}

// NewInsightService creates a new InsightService instance.
func NewInsightService(feedback FeedbackStore, cls Classifier, logger *zap.Logger) *InsightService {
	if feedback == nil {
		panic("feedback store must not be nil")
	}
	if cls == nil {
		panic("classifier must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &InsightService{
		store:      feedback,
		classifier: cls,
		logger:     logger,
	}
}

// Submit classifies one submission and appends it to the session store.
// Classifier failures are tolerated: the record is stored with neutral
// sentiment and default labels rather than rejected.
func (s *InsightService) Submit(ctx context.Context, in SubmitInput) (store.FeedbackRecord, error) {
	name := in.Name
	if name == "" {
		name = store.AnonymousName
	}

	verdict, err := s.classifier.Classify(ctx, in.Text, string(in.Type))
	if err != nil {
		s.logger.Warn("classifier unavailable, storing with defaults", zap.Error(err))
		verdict = classifier.Result{}
	}
	if verdict.Category == "" {
		verdict.Category = classifier.DefaultCategory
	}

	rec := store.FeedbackRecord{
		Timestamp:   time.Now(),
		Name:        name,
		Demographic: in.Demographic,
		Type:        in.Type,
		Text:        in.Text,
		Sentiment:   store.NormalizeSentiment(store.Sentiment(verdict.Sentiment)),
		KeyPoints:   verdict.KeyPoints,
		Category:    verdict.Category,
	}

	if err := s.store.Append(rec); err != nil {
		return store.FeedbackRecord{}, fmt.Errorf("append feedback: %w", err)
	}

	s.logger.Info("feedback stored",
		zap.String("demographic", string(rec.Demographic)),
		zap.String("type", string(rec.Type)),
		zap.String("sentiment", string(rec.Sentiment)))

	return rec, nil
}

// Snapshot aggregates the full store contents into a fresh Snapshot.
func (s *InsightService) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	return BuildSnapshot(s.store.All()), nil
}

// Recommendations evaluates the threshold rules over the current snapshot.
func (s *InsightService) Recommendations(ctx context.Context) ([]string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Recommend(snap), nil
}

// Recent returns the last n records for display-oriented consumers.
func (s *InsightService) Recent(ctx context.Context, n int) ([]store.FeedbackRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Recent(n), nil
}

// All returns the full record sequence in insertion order.
func (s *InsightService) All(ctx context.Context) ([]store.FeedbackRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.All(), nil
}

// BuildSnapshot computes the aggregate view of a record sequence. It is a
// pure function: stateless, deterministic, safe to call concurrently.
func BuildSnapshot(records []store.FeedbackRecord) Snapshot {
	snap := Snapshot{
		Total:        len(records),
		TypeCounts:   make(map[store.FeedbackType]int),
		HourlyCounts: make(map[int]int),
	}

	rowIndex := make(map[store.Demographic]int)

	for _, rec := range records {
		sentiment := store.NormalizeSentiment(rec.Sentiment)

		switch sentiment {
		case store.SentimentPositive:
			snap.Sentiments.Positive++
		case store.SentimentNegative:
			snap.Sentiments.Negative++
		default:
			snap.Sentiments.Neutral++
		}

		snap.TypeCounts[rec.Type]++
		snap.HourlyCounts[rec.Timestamp.Hour()]++

		// Cross-tab rows appear in first-appearance order.
		idx, ok := rowIndex[rec.Demographic]
		if !ok {
			idx = len(snap.CrossTab)
			rowIndex[rec.Demographic] = idx
			snap.CrossTab = append(snap.CrossTab, DemographicSentiment{Demographic: rec.Demographic})
		}
		switch sentiment {
		case store.SentimentPositive:
			snap.CrossTab[idx].Positive++
		case store.SentimentNegative:
			snap.CrossTab[idx].Negative++
		default:
			snap.CrossTab[idx].Neutral++
		}
	}

	snap.DistinctDemographics = len(snap.CrossTab)

	if snap.Total > 0 {
		total := float64(snap.Total)
		snap.Shares.Positive = float64(snap.Sentiments.Positive) / total * 100
		snap.Shares.Neutral = float64(snap.Sentiments.Neutral) / total * 100
		snap.Shares.Negative = float64(snap.Sentiments.Negative) / total * 100
	}

	// Highest negative count wins; first appearance breaks ties.
	best := -1
	for _, row := range snap.CrossTab {
		if row.Negative > 0 && row.Negative > best {
			best = row.Negative
			snap.TopConcerned = row.Demographic
		}
	}

	return snap
}
