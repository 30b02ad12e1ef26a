package responses_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/internal/responses"
	"github.com/JaimeStill/assessor/internal/scoring"
	"github.com/JaimeStill/assessor/pkg/pagination"
)

var (
	responseID  = uuid.MustParse("7d1f0c2e-5b9a-4a55-9a53-0e6f3c0b9d11")
	submittedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
)

func newTestSystem(t *testing.T) (responses.System, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sys := responses.New(
		db,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultLimit: 50, MaxLimit: 100},
	)
	return sys, mock
}

func yes() *bool        { v := true; return &v }
func no() *bool         { v := false; return &v }
func rating(n int) *int { return &n }

// sampleSheet answers six questions yes and rates two dimensions.
func sampleSheet() catalog.Sheet {
	return catalog.Sheet{
		Answers: catalog.Answers{
			"title-profile": {"q1": yes(), "q2": yes(), "q3": yes(), "q4": yes(), "q5": yes()},
			"title-toolbox": {"q1": yes(), "q2": no()},
		},
		Ratings: catalog.Ratings{
			"title-profile": {"awareness": rating(4), "access": rating(2)},
		},
	}
}

func insertArgs(name, email string, sheet catalog.Sheet) []driver.Value {
	result := scoring.Calculate(sheet)

	args := []driver.Value{name, email}
	for _, v := range sheet.Values() {
		args = append(args, v)
	}
	return append(args, result.CapabilityScore, result.AvgConfidence)
}

func TestSubmit(t *testing.T) {
	sys, mock := newTestSystem(t)
	sheet := sampleSheet()

	mock.ExpectQuery(`INSERT INTO responses \(respondent_name, respondent_email, tp_q1, .*, sd_need_training, capability_score, avg_confidence_score\) VALUES \(\$1, .*\$72\) RETURNING id, submitted_at`).
		WithArgs(insertArgs("Ana Lopez", "ana@example.com", sheet)...).
		WillReturnRows(sqlmock.NewRows([]string{"id", "submitted_at"}).AddRow(responseID.String(), submittedAt))

	receipt, err := sys.Submit(context.Background(), responses.SubmitCommand{
		RespondentName:  "  Ana Lopez ",
		RespondentEmail: "ana@example.com",
		Sheet:           sheet,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	want := &responses.Receipt{
		ID:          responseID,
		SubmittedAt: submittedAt,
		Scores:      scoring.Summary{Capability: 18, CapabilityRaw: "6/33", Confidence: "3.0"},
	}
	if diff := cmp.Diff(want, receipt); diff != "" {
		t.Errorf("receipt mismatch (-want +got):\n%s", diff)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSubmitEmptySheet(t *testing.T) {
	sys, mock := newTestSystem(t)

	mock.ExpectQuery(`INSERT INTO responses`).
		WithArgs(insertArgs("Ana", "ana@example.com", catalog.Sheet{})...).
		WillReturnRows(sqlmock.NewRows([]string{"id", "submitted_at"}).AddRow(responseID.String(), submittedAt))

	receipt, err := sys.Submit(context.Background(), responses.SubmitCommand{
		RespondentName:  "Ana",
		RespondentEmail: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	want := scoring.Summary{Capability: 0, CapabilityRaw: "0/33", Confidence: "0.0"}
	if receipt.Scores != want {
		t.Errorf("scores = %+v, want %+v", receipt.Scores, want)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  responses.SubmitCommand
	}{
		{"missing name", responses.SubmitCommand{RespondentEmail: "ana@example.com"}},
		{"missing email", responses.SubmitCommand{RespondentName: "Ana"}},
		{"blank name", responses.SubmitCommand{RespondentName: "   ", RespondentEmail: "ana@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, mock := newTestSystem(t)

			_, err := sys.Submit(context.Background(), tt.cmd)
			if !errors.Is(err, responses.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	sys, mock := newTestSystem(t)

	mock.ExpectQuery(`INSERT INTO responses`).WillReturnError(errors.New("connection reset"))

	_, err := sys.Submit(context.Background(), responses.SubmitCommand{
		RespondentName:  "Ana",
		RespondentEmail: "ana@example.com",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if responses.MapHTTPStatus(err) != 500 {
		t.Errorf("status = %d, want 500", responses.MapHTTPStatus(err))
	}
}

func responseColumns() []string {
	return append(
		[]string{"id", "respondent_name", "respondent_email", "submitted_at", "capability_score", "avg_confidence_score"},
		catalog.Columns()...,
	)
}

// responseRow stores the sample sheet: tp answers yes, ttb_q1 yes, ttb_q2 no, two tp ratings.
func responseRow() []driver.Value {
	row := []driver.Value{responseID.String(), "Ana Lopez", "ana@example.com", submittedAt, "18.18", "3.00"}
	for _, c := range catalog.AnswerColumns() {
		switch c {
		case "tp_q1", "tp_q2", "tp_q3", "tp_q4", "tp_q5", "ttb_q1":
			row = append(row, true)
		case "ttb_q2":
			row = append(row, false)
		default:
			row = append(row, nil)
		}
	}
	for _, c := range catalog.RatingColumns() {
		switch c {
		case "tp_awareness":
			row = append(row, int64(4))
		case "tp_access":
			row = append(row, int64(2))
		default:
			row = append(row, nil)
		}
	}
	return row
}

func TestFind(t *testing.T) {
	sys, mock := newTestSystem(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM public.responses r WHERE r.id = $1")).
		WithArgs(responseID.String()).
		WillReturnRows(sqlmock.NewRows(responseColumns()).AddRow(responseRow()...))

	got, err := sys.Find(context.Background(), responseID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if got.CapabilityScore != 18.18 || got.AvgConfidenceScore != 3 {
		t.Errorf("scores = %v/%v", got.CapabilityScore, got.AvgConfidenceScore)
	}

	if a := got.Answer("title-toolbox", "q2"); a == nil || *a {
		t.Errorf("ttb q2 = %v, want false", a)
	}
	if a := got.Answer("sales-dashboard", "q4"); a != nil {
		t.Errorf("sd q4 = %v, want unanswered", *a)
	}
	if _, ok := got.Answers["sales-dashboard"]["q4"]; !ok {
		t.Error("rebuilt sheet should list unanswered questions")
	}

	recalc := scoring.Calculate(got.Sheet)
	if recalc.CapabilityScore != got.CapabilityScore || recalc.AvgConfidence != got.AvgConfidenceScore {
		t.Errorf("stored scores %v/%v differ from recalculated %v/%v",
			got.CapabilityScore, got.AvgConfidenceScore, recalc.CapabilityScore, recalc.AvgConfidence)
	}
}

func TestFindNotFound(t *testing.T) {
	sys, mock := newTestSystem(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM public.responses r WHERE r.id = $1")).
		WillReturnError(sql.ErrNoRows)

	_, err := sys.Find(context.Background(), responseID)
	if !errors.Is(err, responses.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	sys, mock := newTestSystem(t)

	search := "ana"

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM public.responses r WHERE (r.respondent_name ILIKE $1 OR r.respondent_email ILIKE $2)",
	)).
		WithArgs("%ana%", "%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.submitted_at DESC LIMIT 50 OFFSET 0")).
		WithArgs("%ana%", "%ana%").
		WillReturnRows(sqlmock.NewRows(responseColumns()).AddRow(responseRow()...))

	result, err := sys.List(context.Background(), pagination.PageRequest{Search: &search}, responses.Filters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if result.Total != 1 || len(result.Data) != 1 || result.Limit != 50 {
		t.Errorf("result = total %d, rows %d, limit %d", result.Total, len(result.Data), result.Limit)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
