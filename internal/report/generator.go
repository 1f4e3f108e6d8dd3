// Package report renders the two exportable artifacts of an analysis
// session: a CSV export of the raw feedback and a plain-text narrative
// report. Both are pure functions of the records passed in.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/civicbridge/feedback-server/internal/service"
	"github.com/civicbridge/feedback-server/internal/store"
)

const (
	csvFileNamePattern    = "policy_feedback_%s.csv"
	reportFileNamePattern = "policy_insights_report_%s.txt"

	reportTimeLayout = "2006-01-02 15:04:05"
	fileNameLayout   = "20060102"

	// quotedFeedbackLimit caps the verbatim feedback excerpts per section,
	// taken in insertion order.
	quotedFeedbackLimit = 5
)

var csvHeader = []string{"timestamp", "name", "demographic", "type", "text", "sentiment", "key_points", "category"}

// Artifact is one downloadable payload plus its stable file name.
type Artifact struct {
	FileName string
	Content  []byte
}

// Generator renders artifacts. The clock is injectable so tests can pin
// the embedded generation timestamp.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a Generator with a caller-supplied clock.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// ExportCSV serializes every record, one row each in insertion order,
// under a fixed header. An empty sequence yields a header-only export.
func (g *Generator) ExportCSV(records []store.FeedbackRecord) (Artifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return Artifact{}, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp.Format(time.RFC3339),
			rec.Name,
			string(rec.Demographic),
			string(rec.Type),
			rec.Text,
			string(rec.Sentiment),
			strings.Join(rec.KeyPoints, "; "),
			rec.Category,
		}
		if err := w.Write(row); err != nil {
			return Artifact{}, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Artifact{}, fmt.Errorf("flush csv: %w", err)
	}

	return Artifact{
		FileName: fmt.Sprintf(csvFileNamePattern, g.now().Format(fileNameLayout)),
		Content:  buf.Bytes(),
	}, nil
}

type labelCount struct {
	label string
	count int
}

// sortByCount orders entries by count descending, keeping the incoming
// (first-appearance) order among equal counts.
func sortByCount(entries []labelCount) []labelCount {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	return entries
}

// appearanceCounts tallies one label per record, keeping labels in
// first-appearance order so equal counts break ties deterministically.
func appearanceCounts(records []store.FeedbackRecord, label func(store.FeedbackRecord) string) []labelCount {
	index := make(map[string]int)
	var entries []labelCount
	for _, rec := range records {
		l := label(rec)
		if i, ok := index[l]; ok {
			entries[i].count++
			continue
		}
		index[l] = len(entries)
		entries = append(entries, labelCount{label: l, count: 1})
	}
	return entries
}

func writeBreakdown(b *strings.Builder, entries []labelCount) {
	for _, e := range sortByCount(entries) {
		fmt.Fprintf(b, "%s: %d\n", e.label, e.count)
	}
}

func writeQuoted(b *strings.Builder, records []store.FeedbackRecord, sentiment store.Sentiment) {
	n := 0
	for _, rec := range records {
		if store.NormalizeSentiment(rec.Sentiment) != sentiment {
			continue
		}
		n++
		fmt.Fprintf(b, "%d. %s\n", n, rec.Text)
		if n == quotedFeedbackLimit {
			break
		}
	}
}

// Narrative renders the fixed-section plain-text report. Apart from the
// generation timestamp, output is byte-identical for identical input.
func (g *Generator) Narrative(records []store.FeedbackRecord) Artifact {
	snap := service.BuildSnapshot(records)
	generatedAt := g.now()

	var b strings.Builder

	b.WriteString("POLICY FEEDBACK ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(reportTimeLayout))

	b.WriteString("SUMMARY STATISTICS\n==================\n")
	fmt.Fprintf(&b, "Total Feedback Received: %d\n", snap.Total)
	fmt.Fprintf(&b, "Support Rate: %.1f%%\n", snap.Shares.Positive)
	fmt.Fprintf(&b, "Concern Rate: %.1f%%\n", snap.Shares.Negative)
	fmt.Fprintf(&b, "Demographics Represented: %d\n\n", snap.DistinctDemographics)

	b.WriteString("DEMOGRAPHIC BREAKDOWN\n====================\n")
	demoEntries := make([]labelCount, 0, len(snap.CrossTab))
	for _, row := range snap.CrossTab {
		demoEntries = append(demoEntries, labelCount{label: string(row.Demographic), count: row.Total()})
	}
	writeBreakdown(&b, demoEntries)
	b.WriteString("\n")

	b.WriteString("SENTIMENT ANALYSIS\n==================\n")
	writeBreakdown(&b, appearanceCounts(records, func(r store.FeedbackRecord) string {
		return string(store.NormalizeSentiment(r.Sentiment))
	}))
	b.WriteString("\n")

	b.WriteString("FEEDBACK TYPES\n==============\n")
	writeBreakdown(&b, appearanceCounts(records, func(r store.FeedbackRecord) string {
		return string(r.Type)
	}))
	b.WriteString("\n")

	b.WriteString("TOP CONCERNS\n============\n")
	writeQuoted(&b, records, store.SentimentNegative)
	b.WriteString("\n")

	b.WriteString("TOP SUPPORT POINTS\n================\n")
	writeQuoted(&b, records, store.SentimentPositive)

	return Artifact{
		FileName: fmt.Sprintf(reportFileNamePattern, generatedAt.Format(fileNameLayout)),
		Content:  []byte(b.String()),
	}
}
