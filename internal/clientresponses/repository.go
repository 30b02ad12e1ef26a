package clientresponses

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
	reps       RepResolver
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a client response repository implementing the System interface.
func New(
	db *sql.DB,
	reps RepResolver,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		reps:       reps,
		logger:     logger.With("system", "clientresponses"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

var insertSQL = func() string {
	columns := slices.Concat(
		[]string{
			"sales_rep_id",
			"sales_rep_slug",
			"client_name",
			"client_email",
			"client_phone",
			"client_company",
		},
		needsColumns,
		catalog.Columns(),
		[]string{"capability_score", "avg_confidence_score"},
	)
	return fmt.Sprintf(
		"INSERT INTO client_responses (%s) VALUES (%s) RETURNING id, submitted_at",
		strings.Join(columns, ", "),
		query.Placeholders(1, len(columns)),
	)
}()

// Submit resolves the rep slug and stores the response in two separate round trips.
// A slug with no active rep is stored with a null rep id.
func (r *repo) Submit(ctx context.Context, cmd SubmitCommand) (*Receipt, error) {
	slug := strings.TrimSpace(cmd.SalesRepSlug)
	name := strings.TrimSpace(cmd.ClientName)
	email := strings.TrimSpace(cmd.ClientEmail)

	if slug == "" || name == "" || email == "" {
		return nil, fmt.Errorf("%w: sales rep, client name, and email are required", ErrValidation)
	}

	repID, err := r.reps.ResolveSlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if repID == nil {
		r.logger.Warn("no active sales rep for slug", "slug", slug)
	}

	var needs Needs
	if cmd.Needs != nil {
		needs = *cmd.Needs
	}

	result := scoring.Calculate(cmd.Sheet)

	args := slices.Concat(
		[]any{
			repID,
			slug,
			name,
			email,
			blankToNil(cmd.ClientPhone),
			blankToNil(cmd.ClientCompany),
		},
		needs.values(),
		cmd.Sheet.Values(),
		[]any{result.CapabilityScore, result.AvgConfidence},
	)

	var (
		id          uuid.UUID
		submittedAt time.Time
	)
	if err := r.db.QueryRowContext(ctx, insertSQL, args...).Scan(&id, &submittedAt); err != nil {
		return nil, fmt.Errorf("insert client response: %w", err)
	}

	r.logger.Info(
		"client response submitted",
		"id", id,
		"slug", slug,
		"capability", result.CapabilityRaw,
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
) (*pagination.PageResult[ClientResponse], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ClientName", "ClientEmail", "ClientCompany")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	result, err := repository.QueryPage(ctx, r.db, qb, page, scanClientResponse)
	if err != nil {
		return nil, fmt.Errorf("list client responses: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	resp, err := repository.QueryOne(ctx, r.db, q, args, scanClientResponse)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrValidation)
	}
	return &resp, nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
