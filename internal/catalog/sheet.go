package catalog

import "database/sql"

// Answers maps tool key to question id to a tri-state yes/no answer.
type Answers map[string]map[string]*bool

// Ratings maps tool key to dimension key to a 1-5 confidence rating.
type Ratings map[string]map[string]*int

// Sheet is one respondent's full set of capability answers and confidence ratings.
type Sheet struct {
	Answers Answers `json:"responses"`
	Ratings Ratings `json:"confidence_ratings"`
}

// Answer returns the answer for a question, or nil when unanswered.
func (s Sheet) Answer(toolKey, questionID string) *bool {
	return s.Answers[toolKey][questionID]
}

// Rating returns the rating for a dimension, or nil when absent or out of range.
func (s Sheet) Rating(toolKey, dimensionKey string) *int {
	r := s.Ratings[toolKey][dimensionKey]
	if r == nil || *r < MinRating || *r > MaxRating {
		return nil
	}
	return r
}

// Values returns the sheet as statement arguments aligned with Columns.
// Unknown tools, questions, and dimensions are ignored.
func (s Sheet) Values() []any {
	values := make([]any, 0, len(answerColumns)+len(ratingColumns))

	for _, t := range tools {
		for _, q := range t.Questions {
			if a := s.Answer(t.Key, q.ID); a != nil {
				values = append(values, *a)
			} else {
				values = append(values, nil)
			}
		}
	}

	for _, t := range tools {
		for _, d := range dimensions {
			if r := s.Rating(t.Key, d.Key); r != nil {
				values = append(values, int64(*r))
			} else {
				values = append(values, nil)
			}
		}
	}

	return values
}

// ScanTargets returns scan destinations aligned with Columns and a function that
// assembles the scanned values into a Sheet. Every catalog entry is present in
// the assembled sheet, with nil marking unanswered questions and absent ratings.
func ScanTargets() ([]any, func() Sheet) {
	answers := make([]sql.NullBool, len(answerColumns))
	ratings := make([]sql.NullInt64, len(ratingColumns))

	targets := make([]any, 0, len(answers)+len(ratings))
	for i := range answers {
		targets = append(targets, &answers[i])
	}
	for i := range ratings {
		targets = append(targets, &ratings[i])
	}

	assemble := func() Sheet {
		sheet := Sheet{
			Answers: make(Answers, len(tools)),
			Ratings: make(Ratings, len(tools)),
		}

		i := 0
		for _, t := range tools {
			m := make(map[string]*bool, len(t.Questions))
			for _, q := range t.Questions {
				if answers[i].Valid {
					v := answers[i].Bool
					m[q.ID] = &v
				} else {
					m[q.ID] = nil
				}
				i++
			}
			sheet.Answers[t.Key] = m
		}

		i = 0
		for _, t := range tools {
			m := make(map[string]*int, len(dimensions))
			for _, d := range dimensions {
				if ratings[i].Valid {
					v := int(ratings[i].Int64)
					m[d.Key] = &v
				} else {
					m[d.Key] = nil
				}
				i++
			}
			sheet.Ratings[t.Key] = m
		}

		return sheet
	}

	return targets, assemble
}
