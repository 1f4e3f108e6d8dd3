package service

import (
	"fmt"

	"github.com/civicbridge/feedback-server/internal/store"
)

// concernThreshold is the negative-sentiment fraction above which (strictly)
// the concern warning fires. Exactly 30% does not trigger it.
const concernThreshold = 0.30

// rule is one independently evaluated recommendation trigger. Rules never
// suppress each other; triggered messages are appended in declaration order.
type rule struct {
	applies func(Snapshot) bool
	message func(Snapshot) string
}

var recommendationRules = []rule{
	{
		applies: func(s Snapshot) bool {
			return s.Total > 0 && float64(s.Sentiments.Negative)/float64(s.Total) > concernThreshold
		},
		message: func(s Snapshot) string {
			return "Consider addressing the high level of concerns (30%+) before policy implementation."
		},
	},
	{
		applies: func(s Snapshot) bool {
			return s.Sentiments.Negative > 0
		},
		message: func(s Snapshot) string {
			return fmt.Sprintf("Focus stakeholder engagement on %s group, which shows highest concern levels.", s.TopConcerned)
		},
	},
	{
		applies: func(s Snapshot) bool {
			return s.TypeCounts[store.TypeSuggestion] > 0
		},
		message: func(s Snapshot) string {
			return fmt.Sprintf("Review %d citizen suggestions for potential policy improvements.", s.TypeCounts[store.TypeSuggestion])
		},
	},
}

// Recommend applies the ordered rule list to one snapshot. An empty
// snapshot yields an empty list, never an error.
func Recommend(snap Snapshot) []string {
	recommendations := make([]string, 0, len(recommendationRules))
	for _, r := range recommendationRules {
		if r.applies(snap) {
			recommendations = append(recommendations, r.message(snap))
		}
	}
	return recommendations
}
