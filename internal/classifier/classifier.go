package classifier

import "context"

// DefaultCategory is assigned when the classifier does not return one.
const DefaultCategory = "general"

// Result is the classifier's verdict on one feedback text. The pipeline
// treats all three fields as opaque, possibly missing, external input.
type Result struct {
	Sentiment string   `json:"sentiment"`
	KeyPoints []string `json:"key_points"`
	Category  string   `json:"category"`
}

// Classifier turns free-form feedback text plus the citizen's declared
// feedback type into a sentiment/key-point/category verdict.
type Classifier interface {
	Classify(ctx context.Context, text, feedbackType string) (Result, error)
}
