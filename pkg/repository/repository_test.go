package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/assessor/pkg/pagination"
	"github.com/JaimeStill/assessor/pkg/query"
	"github.com/JaimeStill/assessor/pkg/repository"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func TestMapError(t *testing.T) {
	other := errors.New("some other error")
	fk := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, errNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), errNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other pg error passes through", fk, fk},
		{"other error passes through", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repository.MapError(tt.err, errNotFound, errDuplicate); got != tt.want {
				t.Errorf("MapError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514", ConstraintName: "score_overall_range"}
	wrapped := fmt.Errorf("update: %w", pgErr)

	if !repository.IsCheckViolation(wrapped) {
		t.Error("IsCheckViolation() = false, want true")
	}
	if got := repository.ConstraintName(wrapped); got != "score_overall_range" {
		t.Errorf("ConstraintName() = %q", got)
	}
	if repository.IsCheckViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation reported as check violation")
	}
	if got := repository.ConstraintName(errors.New("plain")); got != "" {
		t.Errorf("ConstraintName(plain) = %q, want empty", got)
	}
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestWithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE sales_reps").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		got, err := repository.WithTx(context.Background(), db, func(tx *sql.Tx) (string, error) {
			_, err := tx.Exec("UPDATE sales_reps SET is_active = false")
			return "done", err
		})
		if err != nil || got != "done" {
			t.Fatalf("WithTx() = (%q, %v)", got, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		got, err := repository.WithTx(context.Background(), db, func(tx *sql.Tx) (int, error) {
			return 7, boom
		})
		if !errors.Is(err, boom) || got != 0 {
			t.Fatalf("WithTx() = (%d, %v), want (0, boom)", got, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		_, err := repository.WithTx(context.Background(), db, func(tx *sql.Tx) (int, error) {
			t.Fatal("fn called without a transaction")
			return 0, nil
		})
		if !errors.Is(err, sql.ErrConnDone) {
			t.Errorf("error = %v, want ErrConnDone", err)
		}
	})
}

func scanName(s repository.Scanner) (string, error) {
	var name string
	err := s.Scan(&name)
	return name, err
}

func TestQueryOne(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT name FROM sales_reps").
		WithArgs("jane-doe").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Jane Doe"))

	got, err := repository.QueryOne(context.Background(), db, "SELECT name FROM sales_reps WHERE slug = $1", []any{"jane-doe"}, scanName)
	if err != nil || got != "Jane Doe" {
		t.Errorf("QueryOne() = (%q, %v)", got, err)
	}
}

func TestQueryOneNoRows(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT name FROM sales_reps").WillReturnRows(sqlmock.NewRows([]string{"name"}))

	_, err := repository.QueryOne(context.Background(), db, "SELECT name FROM sales_reps", nil, scanName)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error = %v, want ErrNoRows", err)
	}
}

func TestQueryMany(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("SELECT name FROM sales_reps").
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ada").AddRow("Grace"))

		got, err := repository.QueryMany(context.Background(), db, "SELECT name FROM sales_reps", nil, scanName)
		if err != nil {
			t.Fatalf("QueryMany: %v", err)
		}
		if diff := cmp.Diff([]string{"Ada", "Grace"}, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty is non-nil", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("SELECT name FROM sales_reps").WillReturnRows(sqlmock.NewRows([]string{"name"}))

		got, err := repository.QueryMany(context.Background(), db, "SELECT name FROM sales_reps", nil, scanName)
		if err != nil || got == nil || len(got) != 0 {
			t.Errorf("QueryMany() = (%v, %v), want empty slice", got, err)
		}
	})

	t.Run("row error", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("SELECT name FROM sales_reps").
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ada").RowError(0, sql.ErrConnDone))

		if _, err := repository.QueryMany(context.Background(), db, "SELECT name FROM sales_reps", nil, scanName); err == nil {
			t.Error("expected row error")
		}
	})
}

func TestQueryCount(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM responses`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repository.QueryCount(context.Background(), db, "SELECT COUNT(*) FROM responses")
	if err != nil || n != 12 {
		t.Errorf("QueryCount() = (%d, %v), want 12", n, err)
	}
}

func TestQueryPage(t *testing.T) {
	projection := query.NewProjectionMap("public", "sales_reps", "sr").Project("name", "Name")
	page := pagination.PageRequest{Limit: 2, Offset: 2}

	t.Run("count then window", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM public.sales_reps sr`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectQuery(`SELECT sr.name FROM public.sales_reps sr LIMIT 2 OFFSET 2`).
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ada").AddRow("Grace"))

		got, err := repository.QueryPage(context.Background(), db, query.NewBuilder(projection), page, scanName)
		if err != nil {
			t.Fatalf("QueryPage: %v", err)
		}
		want := &pagination.PageResult[string]{Data: []string{"Ada", "Grace"}, Total: 5, Limit: 2, Offset: 2}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("count failure skips page", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT COUNT\(\*\)`).WillReturnError(sql.ErrConnDone)

		_, err := repository.QueryPage(context.Background(), db, query.NewBuilder(projection), page, scanName)
		if !errors.Is(err, sql.ErrConnDone) {
			t.Errorf("error = %v, want ErrConnDone", err)
		}
	})
}
