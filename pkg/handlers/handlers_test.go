package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/assessor/pkg/handlers"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.RespondJSON(rec, http.StatusCreated, map[string]int{"total": 33})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"total":33}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		err     error
		wantMsg string
	}{
		{"client error keeps message", http.StatusBadRequest, errors.New("validation failed: respondent_name is required"), "validation failed: respondent_name is required"},
		{"server error hides message", http.StatusInternalServerError, errors.New("pq: relation does not exist"), "Internal Server Error"},
		{"unavailable hides message", http.StatusServiceUnavailable, errors.New("no connection string"), "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondError(rec, discard, tt.status, tt.err)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", body["error"], tt.wantMsg)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name      string
		body      io.Reader
		wantErr   bool
		wantEmpty bool
	}{
		{"valid", strings.NewReader(`{"name":"Dana"}`), false, false},
		{"empty", nil, true, true},
		{"malformed", strings.NewReader(`{"name":`), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", tt.body)
			var p payload
			err := handlers.DecodeJSON(req, &p)

			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantEmpty && !errors.Is(err, handlers.ErrEmptyBody) {
				t.Errorf("err = %v, want ErrEmptyBody", err)
			}
			if !tt.wantErr && p.Name != "Dana" {
				t.Errorf("decoded name = %q", p.Name)
			}
		})
	}
}
