package service

import (
	"testing"

	"github.com/civicbridge/feedback-server/internal/store"
	"github.com/stretchr/testify/assert"
)

// TestRecommend tests the threshold rule set
func TestRecommend(t *testing.T) {
	t.Run("empty snapshot yields no recommendations", func(t *testing.T) {
		got := Recommend(Snapshot{})

		assert.Empty(t, got)
	})

	t.Run("exactly thirty percent negative does not warn", func(t *testing.T) {
		snap := Snapshot{
			Total:      10,
			Sentiments: SentimentCounts{Negative: 3, Positive: 7},
			CrossTab: []DemographicSentiment{
				{Demographic: store.DemographicFarmer, Negative: 3},
			},
			TopConcerned: store.DemographicFarmer,
		}

		got := Recommend(snap)

		assert.NotContains(t, got,
			"Consider addressing the high level of concerns (30%+) before policy implementation.")
	})

	t.Run("above thirty percent negative warns", func(t *testing.T) {
		snap := Snapshot{
			Total:        10,
			Sentiments:   SentimentCounts{Negative: 4, Positive: 6},
			TopConcerned: store.DemographicFarmer,
		}

		got := Recommend(snap)

		assert.Contains(t, got,
			"Consider addressing the high level of concerns (30%+) before policy implementation.")
	})

	t.Run("any negative names the top concerned group", func(t *testing.T) {
		snap := Snapshot{
			Total:        20,
			Sentiments:   SentimentCounts{Negative: 1, Positive: 19},
			TopConcerned: store.DemographicSeniorCitizen,
		}

		got := Recommend(snap)

		assert.Contains(t, got,
			"Focus stakeholder engagement on Senior Citizen group, which shows highest concern levels.")
	})

	t.Run("suggestion count embedded in message", func(t *testing.T) {
		snap := Snapshot{
			Total:      1,
			Sentiments: SentimentCounts{Neutral: 1},
			TypeCounts: map[store.FeedbackType]int{store.TypeSuggestion: 1},
		}

		got := Recommend(snap)

		assert.Equal(t, []string{
			"Review 1 citizen suggestions for potential policy improvements.",
		}, got)
	})

	t.Run("rules fire independently in declaration order", func(t *testing.T) {
		snap := Snapshot{
			Total:      5,
			Sentiments: SentimentCounts{Negative: 2, Neutral: 3},
			TypeCounts: map[store.FeedbackType]int{store.TypeSuggestion: 3},
			CrossTab: []DemographicSentiment{
				{Demographic: store.DemographicStudent, Negative: 2, Neutral: 1},
			},
			TopConcerned: store.DemographicStudent,
		}

		got := Recommend(snap)

		assert.Equal(t, []string{
			"Consider addressing the high level of concerns (30%+) before policy implementation.",
			"Focus stakeholder engagement on Student group, which shows highest concern levels.",
			"Review 3 citizen suggestions for potential policy improvements.",
		}, got)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		snap := Snapshot{
			Total:        4,
			Sentiments:   SentimentCounts{Negative: 2, Positive: 2},
			TypeCounts:   map[store.FeedbackType]int{store.TypeSuggestion: 2},
			TopConcerned: store.DemographicParent,
		}

		first := Recommend(snap)
		second := Recommend(snap)

		assert.Equal(t, first, second)
	})
}
