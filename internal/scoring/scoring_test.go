package scoring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/internal/scoring"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

// answerFirst marks the first n catalog questions (in catalog order) with value.
func answerFirst(n int, value bool) catalog.Answers {
	answers := catalog.Answers{}
	for _, t := range catalog.Tools() {
		for _, q := range t.Questions {
			if n == 0 {
				return answers
			}
			if answers[t.Key] == nil {
				answers[t.Key] = map[string]*bool{}
			}
			answers[t.Key][q.ID] = boolPtr(value)
			n--
		}
	}
	return answers
}

func TestCalculateWorkedExamples(t *testing.T) {
	tests := []struct {
		name  string
		sheet catalog.Sheet
		want  scoring.Result
	}{
		{
			name:  "empty sheet",
			sheet: catalog.Sheet{},
			want: scoring.Result{
				CapabilityScore: 0,
				YesCount:        0,
				TotalQuestions:  33,
				CapabilityRaw:   "0/33",
				AvgConfidence:   0,
			},
		},
		{
			name: "all yes with five top ratings on one tool",
			sheet: catalog.Sheet{
				Answers: answerFirst(33, true),
				Ratings: catalog.Ratings{
					"title-profile": {
						"awareness":    intPtr(5),
						"access":       intPtr(5),
						"setup":        intPtr(5),
						"usage":        intPtr(5),
						"needTraining": intPtr(5),
					},
				},
			},
			want: scoring.Result{
				CapabilityScore: 100,
				YesCount:        33,
				TotalQuestions:  33,
				CapabilityRaw:   "33/33",
				AvgConfidence:   5,
			},
		},
		{
			name:  "all answered no",
			sheet: catalog.Sheet{Answers: answerFirst(33, false)},
			want: scoring.Result{
				TotalQuestions: 33,
				CapabilityRaw:  "0/33",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.Calculate(tt.sheet)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Calculate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateUsesFullCatalogDenominator(t *testing.T) {
	tests := []struct {
		yes  int
		want float64
	}{
		{yes: 1, want: 3.03},
		{yes: 11, want: 33.33},
		{yes: 17, want: 51.52},
		{yes: 22, want: 66.67},
		{yes: 32, want: 96.97},
	}

	for _, tt := range tests {
		got := scoring.Calculate(catalog.Sheet{Answers: answerFirst(tt.yes, true)})
		if got.CapabilityScore != tt.want {
			t.Errorf("yes=%d: CapabilityScore = %v, want %v", tt.yes, got.CapabilityScore, tt.want)
		}
		if got.YesCount != tt.yes {
			t.Errorf("yes=%d: YesCount = %d", tt.yes, got.YesCount)
		}
	}
}

func TestCalculateConfidenceMean(t *testing.T) {
	sheet := catalog.Sheet{
		Ratings: catalog.Ratings{
			"title-profile":   {"awareness": intPtr(4), "usage": intPtr(2)},
			"sales-dashboard": {"needTraining": intPtr(1), "setup": nil},
			"trainings":       {"access": intPtr(5)},
		},
	}

	got := scoring.Calculate(sheet)
	if got.AvgConfidence != 3 {
		t.Errorf("AvgConfidence = %v, want 3", got.AvgConfidence)
	}
}

func TestCalculateRoundsConfidence(t *testing.T) {
	sheet := catalog.Sheet{
		Ratings: catalog.Ratings{
			"pct-website": {"awareness": intPtr(1), "access": intPtr(2), "setup": intPtr(2)},
		},
	}

	got := scoring.Calculate(sheet)
	if got.AvgConfidence != 1.67 {
		t.Errorf("AvgConfidence = %v, want 1.67", got.AvgConfidence)
	}
}

func TestCalculateIgnoresUnknownAndOutOfRange(t *testing.T) {
	sheet := catalog.Sheet{
		Answers: catalog.Answers{
			"not-a-tool":    {"q1": boolPtr(true)},
			"title-profile": {"q99": boolPtr(true), "q1": boolPtr(true)},
		},
		Ratings: catalog.Ratings{
			"not-a-tool":    {"awareness": intPtr(5)},
			"title-profile": {"awareness": intPtr(0), "access": intPtr(6), "bogus": intPtr(3), "usage": intPtr(4)},
		},
	}

	got := scoring.Calculate(sheet)
	if got.YesCount != 1 {
		t.Errorf("YesCount = %d, want 1", got.YesCount)
	}
	if got.AvgConfidence != 4 {
		t.Errorf("AvgConfidence = %v, want 4", got.AvgConfidence)
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name   string
		result scoring.Result
		want   scoring.Summary
	}{
		{
			name:   "rounds capability to whole percent",
			result: scoring.Result{CapabilityScore: 66.67, CapabilityRaw: "22/33", AvgConfidence: 3.26},
			want:   scoring.Summary{Capability: 67, CapabilityRaw: "22/33", Confidence: "3.3"},
		},
		{
			name:   "zero",
			result: scoring.Result{CapabilityRaw: "0/33"},
			want:   scoring.Summary{Capability: 0, CapabilityRaw: "0/33", Confidence: "0.0"},
		},
		{
			name:   "half rounds away from zero",
			result: scoring.Result{CapabilityScore: 50.5, CapabilityRaw: "x", AvgConfidence: 5},
			want:   scoring.Summary{Capability: 51, CapabilityRaw: "x", Confidence: "5.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.result.Summary()); diff != "" {
				t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
