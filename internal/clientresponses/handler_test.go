package clientresponses_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/internal/clientresponses"
	"github.com/JaimeStill/assessor/pkg/pagination"
	"github.com/JaimeStill/assessor/pkg/routes"
)

type mockSystem struct {
	submitFn func(ctx context.Context, cmd clientresponses.SubmitCommand) (*clientresponses.Receipt, error)
	listFn   func(ctx context.Context, page pagination.PageRequest, filters clientresponses.Filters) (*pagination.PageResult[clientresponses.ClientResponse], error)
	findFn   func(ctx context.Context, id uuid.UUID) (*clientresponses.ClientResponse, error)
}

func (m *mockSystem) Handler() *clientresponses.Handler { return newTestHandler(m) }

func (m *mockSystem) Submit(ctx context.Context, cmd clientresponses.SubmitCommand) (*clientresponses.Receipt, error) {
	return m.submitFn(ctx, cmd)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters clientresponses.Filters) (*pagination.PageResult[clientresponses.ClientResponse], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*clientresponses.ClientResponse, error) {
	return m.findFn(ctx, id)
}

func newTestHandler(sys clientresponses.System) *clientresponses.Handler {
	return clientresponses.NewHandler(sys, discardLogger(), pagination.Config{DefaultLimit: 50, MaxLimit: 100})
}

func setupMux(h *clientresponses.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())
	return mux
}

func TestHandlerTimelines(t *testing.T) {
	rec := httptest.NewRecorder()
	setupMux(newTestHandler(&mockSystem{})).ServeHTTP(rec, httptest.NewRequest("GET", "/client-responses/timelines", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []string
	json.NewDecoder(rec.Body).Decode(&got)

	want := []string{"Immediately", "Within 1 month", "Within 3 months", "Within 6 months", "Just exploring options"}
	if !slices.Equal(got, want) {
		t.Errorf("timelines = %v, want %v", got, want)
	}
}

func TestHandlerNeeds(t *testing.T) {
	rec := httptest.NewRecorder()
	setupMux(newTestHandler(&mockSystem{})).ServeHTTP(rec, httptest.NewRequest("GET", "/client-responses/needs", nil))

	var got []clientresponses.NeedOption
	json.NewDecoder(rec.Body).Decode(&got)

	if len(got) != 7 || got[0].Key != "title_search" || got[6].Key != "training" {
		t.Errorf("needs = %+v", got)
	}
}

func TestHandlerListRepFilter(t *testing.T) {
	var got clientresponses.Filters
	sys := &mockSystem{
		listFn: func(_ context.Context, page pagination.PageRequest, filters clientresponses.Filters) (*pagination.PageResult[clientresponses.ClientResponse], error) {
			got = filters
			result := pagination.NewPageResult[clientresponses.ClientResponse](nil, 0, page.Limit, page.Offset)
			return &result, nil
		},
	}

	rec := httptest.NewRecorder()
	setupMux(newTestHandler(sys)).ServeHTTP(rec, httptest.NewRequest("GET", "/client-responses?rep=jane-doe", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.Rep == nil || *got.Rep != "jane-doe" {
		t.Errorf("rep filter = %v", got.Rep)
	}
}

func TestHandlerSubmit(t *testing.T) {
	var got clientresponses.SubmitCommand
	sys := &mockSystem{
		submitFn: func(_ context.Context, cmd clientresponses.SubmitCommand) (*clientresponses.Receipt, error) {
			if cmd.SalesRepSlug == "" {
				return nil, clientresponses.ErrValidation
			}
			got = cmd
			return &clientresponses.Receipt{ID: responseID, SubmittedAt: submittedAt}, nil
		},
	}
	mux := setupMux(newTestHandler(sys))

	body := `{
		"sales_rep_slug": "jane-doe",
		"client_name": "Casey Client",
		"client_email": "casey@example.com",
		"needs_assessment": {"farm_lists": true, "timeline": "Immediately"},
		"responses": {"pct-website": {"q2": true}}
	}`

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/client-responses", bytes.NewBufferString(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if got.Needs == nil || !got.Needs.FarmLists || got.Needs.Timeline == nil || *got.Needs.Timeline != "Immediately" {
		t.Errorf("needs = %+v", got.Needs)
	}
	if a := got.Answer("pct-website", "q2"); a == nil || !*a {
		t.Errorf("pct-website q2 = %v, want true", a)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/client-responses", bytes.NewBufferString(`{"client_name":"Casey"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerMalformedID(t *testing.T) {
	mux := setupMux(newTestHandler(&mockSystem{}))

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/client-responses/not-an-id"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(`{}`)))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			json.NewDecoder(rec.Body).Decode(&body)
			if body["error"] != clientresponses.ErrInvalidID.Error() {
				t.Errorf("error = %q, want %q", body["error"], clientresponses.ErrInvalidID.Error())
			}
		})
	}
}
