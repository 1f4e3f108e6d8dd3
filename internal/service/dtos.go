package service

import "github.com/civicbridge/feedback-server/internal/store"

// SentimentCounts holds per-polarity record counts.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// SentimentShares holds per-polarity percentages of the total (0–100).
// All zero for an empty store; never NaN.
type SentimentShares struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// DemographicSentiment is one cross-tabulation row: a demographic that
// appears in the data against the three fixed sentiment columns.
type DemographicSentiment struct {
	Demographic store.Demographic `json:"demographic"`
	Positive    int               `json:"positive"`
	Neutral     int               `json:"neutral"`
	Negative    int               `json:"negative"`
}

// Total returns the row sum, i.e. that demographic's record count.
func (d DemographicSentiment) Total() int {
	return d.Positive + d.Neutral + d.Negative
}

// Snapshot is the point-in-time aggregation of a feedback sequence.
// It is recomputed fresh on every query and never mutated in place.
type Snapshot struct {
	Total                int                        `json:"total"`
	Sentiments           SentimentCounts            `json:"sentiments"`
	Shares               SentimentShares            `json:"shares"`
	TypeCounts           map[store.FeedbackType]int `json:"type_counts"`
	CrossTab             []DemographicSentiment     `json:"cross_tab"`
	HourlyCounts         map[int]int                `json:"hourly_counts"`
	DistinctDemographics int                        `json:"distinct_demographics"`
	TopConcerned         store.Demographic          `json:"top_concerned"`
}

// SubmitInput carries the citizen-provided half of a submission; the
// classifier collaborator supplies the rest.
type SubmitInput struct {
	Name        string
	Demographic store.Demographic
	Type        store.FeedbackType
	Text        string
}
