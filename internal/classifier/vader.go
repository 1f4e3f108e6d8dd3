package classifier

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

const (
	positiveCutoff = 0.20
	negativeCutoff = -0.20
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// VADER is a local, deterministic classifier backed by the VADER lexicon.
// It needs no network access, which makes it the default provider.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADER creates a VADER-backed classifier.
func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func stripLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

func plainText(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	collapsed := strings.Join(strings.Fields(string(rendered)), " ")
	return stripLinks(collapsed)
}

// Classify scores the text's compound polarity and maps it onto the three
// sentiment labels. Key points are not extracted locally; the category
// falls back to the declared feedback type.
func (v *VADER) Classify(_ context.Context, text, feedbackType string) (Result, error) {
	scores := v.analyzer.PolarityScores(plainText(text))

	label := "neutral"
	switch {
	case scores.Compound >= positiveCutoff:
		label = "positive"
	case scores.Compound <= negativeCutoff:
		label = "negative"
	}

	category := DefaultCategory
	if feedbackType != "" {
		category = strings.ToLower(feedbackType)
	}

	return Result{
		Sentiment: label,
		KeyPoints: nil,
		Category:  category,
	}, nil
}
