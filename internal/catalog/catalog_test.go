package catalog_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/JaimeStill/assessor/internal/catalog"
)

func TestTotalQuestionsDerivedFromTools(t *testing.T) {
	n := 0
	for _, tool := range catalog.Tools() {
		n += len(tool.Questions)
	}

	if n != catalog.TotalQuestions() {
		t.Errorf("TotalQuestions() = %d, tools sum to %d", catalog.TotalQuestions(), n)
	}
	if catalog.TotalQuestions() != 33 {
		t.Errorf("TotalQuestions() = %d, want 33", catalog.TotalQuestions())
	}
}

func TestToolsOrderAndPrefixes(t *testing.T) {
	want := []struct {
		key       string
		prefix    string
		questions int
	}{
		{"title-profile", "tp", 5},
		{"title-toolbox", "ttb", 6},
		{"pacific-agent-one", "pao", 5},
		{"pct-smart-direct", "psd", 5},
		{"pct-website", "pw", 4},
		{"trainings", "tr", 4},
		{"sales-dashboard", "sd", 4},
	}

	tools := catalog.Tools()
	if len(tools) != len(want) {
		t.Fatalf("len(Tools()) = %d, want %d", len(tools), len(want))
	}

	for i, w := range want {
		tool := tools[i]
		if tool.Key != w.key || tool.Prefix != w.prefix || len(tool.Questions) != w.questions {
			t.Errorf("tool %d = %s/%s/%d, want %s/%s/%d",
				i, tool.Key, tool.Prefix, len(tool.Questions), w.key, w.prefix, w.questions)
		}
		for j, q := range tool.Questions {
			if q.Index != j+1 {
				t.Errorf("%s question %d has index %d", tool.Key, j, q.Index)
			}
			if q.Prompt == "" {
				t.Errorf("%s %s has empty prompt", tool.Key, q.ID)
			}
		}
	}
}

func TestToolsReturnsCopy(t *testing.T) {
	tools := catalog.Tools()
	tools[0].Key = "mutated"

	if catalog.Tools()[0].Key != "title-profile" {
		t.Error("mutating Tools() result changed the catalog")
	}
}

func TestColumns(t *testing.T) {
	cols := catalog.Columns()

	if len(cols) != 33+7*5 {
		t.Fatalf("len(Columns()) = %d, want %d", len(cols), 33+7*5)
	}

	checks := map[int]string{
		0:  "tp_q1",
		5:  "ttb_q1",
		32: "sd_q4",
		33: "tp_awareness",
		37: "tp_need_training",
		67: "sd_need_training",
	}
	for i, want := range checks {
		if cols[i] != want {
			t.Errorf("Columns()[%d] = %s, want %s", i, cols[i], want)
		}
	}

	seen := map[string]bool{}
	for _, c := range cols {
		if seen[c] {
			t.Errorf("duplicate column %s", c)
		}
		seen[c] = true
	}

	if !slices.Equal(cols, slices.Concat(catalog.AnswerColumns(), catalog.RatingColumns())) {
		t.Error("Columns() is not answer columns followed by rating columns")
	}
}

func TestFindTool(t *testing.T) {
	tool, ok := catalog.FindTool("pct-website")
	if !ok || tool.Prefix != "pw" {
		t.Errorf("FindTool(pct-website) = %+v, %v", tool, ok)
	}

	if _, ok := catalog.FindTool("missing"); ok {
		t.Error("FindTool(missing) should report false")
	}
}

func TestSheetValuesAlignWithColumns(t *testing.T) {
	yes, no := true, false
	four, nine := 4, 9

	sheet := catalog.Sheet{
		Answers: catalog.Answers{
			"title-profile":   {"q1": &yes, "q2": &no},
			"sales-dashboard": {"q4": &yes},
			"unknown":         {"q1": &yes},
		},
		Ratings: catalog.Ratings{
			"title-profile": {"needTraining": &four, "usage": &nine},
		},
	}

	values := sheet.Values()
	cols := catalog.Columns()
	if len(values) != len(cols) {
		t.Fatalf("len(Values()) = %d, want %d", len(values), len(cols))
	}

	byColumn := map[string]any{}
	for i, c := range cols {
		byColumn[c] = values[i]
	}

	if byColumn["tp_q1"] != true {
		t.Errorf("tp_q1 = %v, want true", byColumn["tp_q1"])
	}
	if byColumn["tp_q2"] != false {
		t.Errorf("tp_q2 = %v, want false", byColumn["tp_q2"])
	}
	if byColumn["tp_q3"] != nil {
		t.Errorf("tp_q3 = %v, want nil", byColumn["tp_q3"])
	}
	if byColumn["sd_q4"] != true {
		t.Errorf("sd_q4 = %v, want true", byColumn["sd_q4"])
	}
	if byColumn["tp_need_training"] != int64(4) {
		t.Errorf("tp_need_training = %v, want 4", byColumn["tp_need_training"])
	}
	if byColumn["tp_usage"] != nil {
		t.Errorf("tp_usage = %v, want nil for out-of-range rating", byColumn["tp_usage"])
	}
}

func TestScanTargetsRoundTrip(t *testing.T) {
	targets, assemble := catalog.ScanTargets()
	if len(targets) != len(catalog.Columns()) {
		t.Fatalf("len(targets) = %d, want %d", len(targets), len(catalog.Columns()))
	}

	*targets[0].(*sql.NullBool) = sql.NullBool{Bool: true, Valid: true}
	*targets[1].(*sql.NullBool) = sql.NullBool{Bool: false, Valid: true}
	*targets[33].(*sql.NullInt64) = sql.NullInt64{Int64: 3, Valid: true}

	sheet := assemble()

	if a := sheet.Answer("title-profile", "q1"); a == nil || !*a {
		t.Errorf("tp q1 = %v, want true", a)
	}
	if a := sheet.Answer("title-profile", "q2"); a == nil || *a {
		t.Errorf("tp q2 = %v, want false", a)
	}
	if a := sheet.Answer("title-profile", "q3"); a != nil {
		t.Errorf("tp q3 = %v, want nil", *a)
	}
	if r := sheet.Rating("title-profile", "awareness"); r == nil || *r != 3 {
		t.Errorf("tp awareness = %v, want 3", r)
	}

	if _, ok := sheet.Answers["sales-dashboard"]["q4"]; !ok {
		t.Error("assembled sheet should carry every catalog question key")
	}
}

func TestHandlerGet(t *testing.T) {
	h := catalog.NewHandler()
	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/catalog", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var view catalog.View
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if view.TotalQuestions != 33 || len(view.Tools) != 7 || len(view.Dimensions) != 5 {
		t.Errorf("view = total %d, tools %d, dimensions %d", view.TotalQuestions, len(view.Tools), len(view.Dimensions))
	}
	if view.Version != catalog.Version {
		t.Errorf("version = %s, want %s", view.Version, catalog.Version)
	}
}
