package exports_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/JaimeStill/assessor/internal/exports"
	"github.com/JaimeStill/assessor/pkg/routes"
	"github.com/JaimeStill/assessor/pkg/storage"
)

func setupMux(t *testing.T, store storage.System) (*http.ServeMux, sqlmock.Sqlmock) {
	t.Helper()

	sys, mock := newTestSystem(t, store)
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())
	return mux, mock
}

func serve(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHandlerDatasets(t *testing.T) {
	mux, _ := setupMux(t, nil)

	rec := serve(mux, "GET", "/exports")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var names []string
	if err := json.NewDecoder(rec.Body).Decode(&names); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(names) != 3 {
		t.Errorf("datasets = %v", names)
	}
}

func TestHandlerDownload(t *testing.T) {
	mux, mock := setupMux(t, nil)
	expectResponses(mock, []string{"11111111-1111-1111-1111-111111111111", "Ada", "ada@example.com"})

	rec := serve(mux, "GET", "/exports/responses")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, `filename="responses-`) {
		t.Errorf("Content-Disposition = %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "id,respondent_name,respondent_email") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandlerDownloadUnknown(t *testing.T) {
	mux, _ := setupMux(t, nil)

	rec := serve(mux, "GET", "/exports/invoices")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerDownloadQueryFailure(t *testing.T) {
	mux, mock := setupMux(t, nil)
	mock.ExpectQuery(`SELECT .+ FROM responses`).WillReturnError(errors.New("connection reset"))

	rec := serve(mux, "GET", "/exports/responses")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != "" {
		t.Errorf("Content-Disposition = %q, want none", got)
	}
	if strings.Contains(rec.Body.String(), "connection reset") {
		t.Errorf("body leaks error detail: %s", rec.Body.String())
	}
}

func TestHandlerArchive(t *testing.T) {
	store := newMemoryStore()
	mux, mock := setupMux(t, store)
	expectResponses(mock)

	rec := serve(mux, "POST", "/exports/responses")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var archive exports.Archive
	if err := json.NewDecoder(rec.Body).Decode(&archive); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := store.blobs[archive.Key]; !ok {
		t.Errorf("archive %q not stored", archive.Key)
	}
}

func TestHandlerArchiveStorageDisabled(t *testing.T) {
	mux, _ := setupMux(t, nil)

	rec := serve(mux, "POST", "/exports/responses")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHandlerArchiveRoutes(t *testing.T) {
	store := newMemoryStore()
	store.blobs["exports/responses/20260101T000000Z.csv"] = []byte("id\nabc\n")
	store.types["exports/responses/20260101T000000Z.csv"] = "text/csv"
	mux, _ := setupMux(t, store)

	t.Run("list", func(t *testing.T) {
		rec := serve(mux, "GET", "/exports/archive?dataset=responses")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "20260101T000000Z.csv") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("list bad max_results", func(t *testing.T) {
		rec := serve(mux, "GET", "/exports/archive?max_results=zero")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("download", func(t *testing.T) {
		rec := serve(mux, "GET", "/exports/archive/exports/responses/20260101T000000Z.csv")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="20260101T000000Z.csv"` {
			t.Errorf("Content-Disposition = %q", got)
		}
		if rec.Body.String() != "id\nabc\n" {
			t.Errorf("body = %q", rec.Body.String())
		}
	})

	t.Run("download outside prefix", func(t *testing.T) {
		rec := serve(mux, "GET", "/exports/archive/uploads/secret.txt")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		rec := serve(mux, "DELETE", "/exports/archive/exports/responses/20260101T000000Z.csv")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
		rec = serve(mux, "DELETE", "/exports/archive/exports/responses/20260101T000000Z.csv")
		if rec.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d, want 404", rec.Code)
		}
	})
}
