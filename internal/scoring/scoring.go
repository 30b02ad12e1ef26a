// Package scoring derives the capability and confidence scores of a survey sheet.
package scoring

import (
	"fmt"
	"math"

	"github.com/JaimeStill/assessor/internal/catalog"
)

// Result holds the derived scores for one sheet.
type Result struct {
	CapabilityScore float64 `json:"capability_score"`
	YesCount        int     `json:"yes_count"`
	TotalQuestions  int     `json:"total_questions"`
	CapabilityRaw   string  `json:"capability_raw"`
	AvgConfidence   float64 `json:"avg_confidence_score"`
}

// Summary is the score block returned to a respondent after submission.
type Summary struct {
	Capability    int    `json:"capability"`
	CapabilityRaw string `json:"capability_raw"`
	Confidence    string `json:"confidence"`
}

// Calculate scores a sheet against the catalog.
//
// The capability score divides yes answers by the full catalog question count,
// so partially completed sheets score lower rather than being scored on answered
// questions only. The confidence score is the mean of every in-range rating, or 0
// when none were given. Both are rounded to two decimals.
func Calculate(sheet catalog.Sheet) Result {
	total := catalog.TotalQuestions()

	yes := 0
	sum, n := 0, 0

	for _, t := range catalog.Tools() {
		for _, q := range t.Questions {
			if a := sheet.Answer(t.Key, q.ID); a != nil && *a {
				yes++
			}
		}
		for _, d := range catalog.Dimensions() {
			if r := sheet.Rating(t.Key, d.Key); r != nil {
				sum += *r
				n++
			}
		}
	}

	result := Result{
		YesCount:       yes,
		TotalQuestions: total,
		CapabilityRaw:  fmt.Sprintf("%d/%d", yes, total),
	}

	if total > 0 {
		result.CapabilityScore = round2(100 * float64(yes) / float64(total))
	}
	if n > 0 {
		result.AvgConfidence = round2(float64(sum) / float64(n))
	}

	return result
}

// Summary returns the whole-percent capability and one-decimal confidence.
func (r Result) Summary() Summary {
	return Summary{
		Capability:    int(math.Round(r.CapabilityScore)),
		CapabilityRaw: r.CapabilityRaw,
		Confidence:    fmt.Sprintf("%.1f", r.AvgConfidence),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
