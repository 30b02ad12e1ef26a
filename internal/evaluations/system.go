package evaluations

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/pkg/pagination"
)

// System defines the public contract for title officer evaluations.
type System interface {
	Handler() *Handler

	Create(ctx context.Context, cmd CreateCommand) (*Evaluation, error)

	// Score overwrites every section score and the executive notes. The last write wins.
	Score(ctx context.Context, id uuid.UUID, cmd ScoreCommand) (*Evaluation, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Evaluation], error)

	Find(ctx context.Context, id uuid.UUID) (*Evaluation, error)
}
