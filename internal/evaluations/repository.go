package evaluations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/pkg/pagination"
	"github.com/JaimeStill/assessor/pkg/query"
	"github.com/JaimeStill/assessor/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an evaluation repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "evaluations"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

var insertSQL = func() string {
	columns := append([]string{}, headerColumns...)
	for _, q := range questions {
		columns = append(columns, q.ID)
	}
	return fmt.Sprintf(
		"INSERT INTO title_officer_evaluations (%s) VALUES (%s) RETURNING %s",
		strings.Join(columns, ", "),
		query.Placeholders(1, len(columns)),
		returning,
	)
}()

var scoreSQL = func() string {
	sets := make([]string, 0, len(sections)+3)
	for i, s := range sections {
		sets = append(sets, fmt.Sprintf("%s = $%d", s.ScoreColumn, i+1))
	}
	n := len(sections)
	sets = append(sets,
		fmt.Sprintf("executive_notes = $%d", n+1),
		fmt.Sprintf("scored_by = $%d", n+2),
		"scored_at = NOW()",
	)
	return fmt.Sprintf(
		"UPDATE title_officer_evaluations SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "),
		n+3,
		returning,
	)
}()

// validate checks the header fields, then every answer in form order,
// and reports the first failure.
func (cmd CreateCommand) validate() (Date, error) {
	header := []string{
		cmd.Company,
		cmd.TitleOfficerName,
		cmd.TitleUnitLocation,
		cmd.EvaluationPeriod,
		cmd.DateCompleted,
	}
	for _, h := range header {
		if strings.TrimSpace(h) == "" {
			return Date{}, fmt.Errorf("%w: all header fields are required", ErrValidation)
		}
	}

	date, err := ParseDate(strings.TrimSpace(cmd.DateCompleted))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date_completed must be YYYY-MM-DD", ErrValidation)
	}

	for _, q := range questions {
		if utf8.RuneCountInString(strings.TrimSpace(cmd.Answers[q.ID])) < MinAnswerLength {
			return Date{}, fmt.Errorf(
				"%w: %s is required and must be at least %d characters",
				ErrValidation, q.ID, MinAnswerLength,
			)
		}
	}

	return date, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Evaluation, error) {
	date, err := cmd.validate()
	if err != nil {
		return nil, err
	}

	args := []any{
		strings.TrimSpace(cmd.Company),
		strings.TrimSpace(cmd.TitleOfficerName),
		strings.TrimSpace(cmd.TitleUnitLocation),
		strings.TrimSpace(cmd.EvaluationPeriod),
		date,
	}
	for _, q := range questions {
		args = append(args, strings.TrimSpace(cmd.Answers[q.ID]))
	}

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Evaluation, error) {
		return repository.QueryOne(ctx, tx, insertSQL, args, scanEvaluation)
	})
	if err != nil {
		return nil, fmt.Errorf("insert evaluation: %w", err)
	}

	r.logger.Info("evaluation submitted", "id", e.ID, "officer", e.TitleOfficerName)
	return &e, nil
}

func (r *repo) Score(ctx context.Context, id uuid.UUID, cmd ScoreCommand) (*Evaluation, error) {
	args := make([]any, 0, len(sections)+3)
	for _, s := range sections {
		if v := cmd.Scores[s.Key]; v != nil {
			args = append(args, int64(*v))
		} else {
			args = append(args, nil)
		}
	}
	args = append(args, cmd.ExecutiveNotes, cmd.ScoredBy, id)

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Evaluation, error) {
		return repository.QueryOne(ctx, tx, scoreSQL, args, scanEvaluation)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if repository.IsCheckViolation(err) {
			return nil, fmt.Errorf(
				"%w: scores must be between 1 and 5 (%s)",
				ErrValidation, repository.ConstraintName(err),
			)
		}
		return nil, fmt.Errorf("score evaluation: %w", err)
	}

	r.logger.Info("evaluation scored", "id", e.ID, "average", e.AverageScore())
	return &e, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Evaluation], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Company", "TitleOfficerName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	result, err := repository.QueryPage(ctx, r.db, qb, page, scanEvaluation)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEvaluation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrValidation)
	}
	return &e, nil
}
