package store

import (
	"errors"
	"fmt"
	"time"
)

// AnonymousName is used when a submitter leaves the name field blank.
const AnonymousName = "Anonymous"

// Sentiment is the classifier-assigned polarity of a feedback text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// NormalizeSentiment maps anything outside the known polarity set to neutral.
// The upstream classifier is noisy and must never be able to break aggregation.
func NormalizeSentiment(s Sentiment) Sentiment {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return s
	default:
		return SentimentNeutral
	}
}

// FeedbackType is the citizen's declared intent for a submission.
type FeedbackType string

const (
	TypeSupport    FeedbackType = "Support"
	TypeConcern    FeedbackType = "Concern"
	TypeSuggestion FeedbackType = "Suggestion"
	TypeQuestion   FeedbackType = "Question"
)

// Valid reports whether t is one of the declared feedback types.
func (t FeedbackType) Valid() bool {
	switch t {
	case TypeSupport, TypeConcern, TypeSuggestion, TypeQuestion:
		return true
	}
	return false
}

// Demographic is a citizen-role tag used to segment feedback.
type Demographic string

const (
	DemographicGeneralCitizen   Demographic = "General Citizen"
	DemographicStudent          Demographic = "Student"
	DemographicFarmer           Demographic = "Farmer"
	DemographicBusinessOwner    Demographic = "Business Owner"
	DemographicSeniorCitizen    Demographic = "Senior Citizen"
	DemographicParent           Demographic = "Parent"
	DemographicTeacher          Demographic = "Teacher"
	DemographicHealthcareWorker Demographic = "Healthcare Worker"
)

// Demographics returns the full enumeration in declaration order.
func Demographics() []Demographic {
	return []Demographic{
		DemographicGeneralCitizen,
		DemographicStudent,
		DemographicFarmer,
		DemographicBusinessOwner,
		DemographicSeniorCitizen,
		DemographicParent,
		DemographicTeacher,
		DemographicHealthcareWorker,
	}
}

// Valid reports whether d is a member of the demographic enumeration.
func (d Demographic) Valid() bool {
	for _, known := range Demographics() {
		if d == known {
			return true
		}
	}
	return false
}

// FeedbackRecord is one citizen submission, immutable once stored.
type FeedbackRecord struct {
	Timestamp   time.Time    `json:"timestamp"`
	Name        string       `json:"name"`
	Demographic Demographic  `json:"demographic"`
	Type        FeedbackType `json:"type"`
	Text        string       `json:"text"`
	Sentiment   Sentiment    `json:"sentiment"`
	KeyPoints   []string     `json:"key_points"`
	Category    string       `json:"category"`
}

// ErrInvalidRecord is the root of all validation failures at append time.
var ErrInvalidRecord = errors.New("invalid feedback record")

// Validate checks the record shape contract enforced at the ingestion boundary.
func (r FeedbackRecord) Validate() error {
	if r.Text == "" {
		return fmt.Errorf("%w: text must not be empty", ErrInvalidRecord)
	}
	if !r.Demographic.Valid() {
		return fmt.Errorf("%w: unknown demographic %q", ErrInvalidRecord, r.Demographic)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: unknown feedback type %q", ErrInvalidRecord, r.Type)
	}
	return nil
}
