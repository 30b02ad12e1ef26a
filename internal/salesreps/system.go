package salesreps

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/pkg/pagination"
)

// System defines the public contract for sales rep directory operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[SalesRep], error)

	Find(ctx context.Context, id uuid.UUID) (*SalesRep, error)
	FindBySlug(ctx context.Context, slug string) (*SalesRep, error)
	Create(ctx context.Context, cmd CreateCommand) (*SalesRep, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*SalesRep, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*SalesRep, error)

	// ResolveSlug returns the id of the active rep owning slug, or nil when
	// no active rep matches. A missing rep is not an error.
	ResolveSlug(ctx context.Context, slug string) (*uuid.UUID, error)
}
