package salesreps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

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

// New creates a sales rep repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "salesreps"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[SalesRep], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Email", "Slug")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	result, err := repository.QueryPage(ctx, r.db, qb, page, scanSalesRep)
	if err != nil {
		return nil, fmt.Errorf("list sales reps: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*SalesRep, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rep, err := repository.QueryOne(ctx, r.db, q, args, scanSalesRep)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateSlug)
	}
	return &rep, nil
}

func (r *repo) FindBySlug(ctx context.Context, slug string) (*SalesRep, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Slug", slug)

	rep, err := repository.QueryOne(ctx, r.db, q, args, scanSalesRep)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateSlug)
	}
	return &rep, nil
}

func (r *repo) ResolveSlug(ctx context.Context, slug string) (*uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx,
		"SELECT id FROM sales_reps WHERE slug = $1 AND is_active = true",
		slug,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve sales rep slug: %w", err)
	}
	return &id, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*SalesRep, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)

	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email required", ErrValidation)
	}

	slug := Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("%w: name must contain letters or digits", ErrValidation)
	}

	q := `
		INSERT INTO sales_reps(name, slug, email, phone, title)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + returning

	args := []any{name, slug, email, cmd.Phone, cmd.Title}

	rep, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (SalesRep, error) {
		return repository.QueryOne(ctx, tx, q, args, scanSalesRep)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateSlug)
	}

	r.logger.Info("sales rep created", "id", rep.ID, "slug", rep.Slug)
	return &rep, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*SalesRep, error) {
	if cmd.empty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", ErrValidation)
		}
		slug := Slugify(name)
		if slug == "" {
			return nil, fmt.Errorf("%w: name must contain letters or digits", ErrValidation)
		}
		set("name", name)
		set("slug", slug)
	}
	if cmd.Email != nil {
		email := strings.TrimSpace(*cmd.Email)
		if email == "" {
			return nil, fmt.Errorf("%w: email cannot be blank", ErrValidation)
		}
		set("email", email)
	}
	if cmd.Phone != nil {
		set("phone", *cmd.Phone)
	}
	if cmd.Title != nil {
		set("title", *cmd.Title)
	}
	if cmd.IsActive != nil {
		set("is_active", *cmd.IsActive)
	}

	args = append(args, id)
	q := fmt.Sprintf(`
		UPDATE sales_reps
		SET %s, updated_at = NOW()
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(sets, ", "), len(args), returning,
	)

	rep, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (SalesRep, error) {
		return repository.QueryOne(ctx, tx, q, args, scanSalesRep)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateSlug)
	}

	r.logger.Info("sales rep updated", "id", rep.ID, "slug", rep.Slug)
	return &rep, nil
}

func (r *repo) Deactivate(ctx context.Context, id uuid.UUID) (*SalesRep, error) {
	q := `
		UPDATE sales_reps
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + returning

	rep, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (SalesRep, error) {
		return repository.QueryOne(ctx, tx, q, []any{id}, scanSalesRep)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicateSlug)
	}

	r.logger.Info("sales rep deactivated", "id", rep.ID, "slug", rep.Slug)
	return &rep, nil
}
