package responses

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/internal/catalog"
	"github.com/JaimeStill/assessor/internal/scoring"
	"github.com/JaimeStill/assessor/pkg/pagination"
	"github.com/JaimeStill/assessor/pkg/query"
	"github.com/JaimeStill/assessor/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a response repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "responses"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

var insertSQL = func() string {
	columns := slices.Concat(
		[]string{"respondent_name", "respondent_email"},
		catalog.Columns(),
		[]string{"capability_score", "avg_confidence_score"},
	)
	return fmt.Sprintf(
		"INSERT INTO responses (%s) VALUES (%s) RETURNING id, submitted_at",
		strings.Join(columns, ", "),
		query.Placeholders(1, len(columns)),
	)
}()

func (r *repo) Submit(ctx context.Context, cmd SubmitCommand) (*Receipt, error) {
	name := strings.TrimSpace(cmd.RespondentName)
	email := strings.TrimSpace(cmd.RespondentEmail)

	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email required", ErrValidation)
	}

	result := scoring.Calculate(cmd.Sheet)

	args := slices.Concat(
		[]any{name, email},
		cmd.Sheet.Values(),
		[]any{result.CapabilityScore, result.AvgConfidence},
	)

	var (
		id          uuid.UUID
		submittedAt time.Time
	)
	if err := r.db.QueryRowContext(ctx, insertSQL, args...).Scan(&id, &submittedAt); err != nil {
		return nil, fmt.Errorf("insert response: %w", err)
	}

	r.logger.Info(
		"response submitted",
		"id", id,
		"capability", result.CapabilityRaw,
		"confidence", result.AvgConfidence,
	)

	return &Receipt{
		ID:          id,
		SubmittedAt: submittedAt,
		Scores:      result.Summary(),
	}, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Response], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "RespondentName", "RespondentEmail")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	result, err := repository.QueryPage(ctx, r.db, qb, page, scanResponse)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Response, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	resp, err := repository.QueryOne(ctx, r.db, q, args, scanResponse)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrValidation)
	}
	return &resp, nil
}
