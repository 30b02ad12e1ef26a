package clientresponses

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/pkg/pagination"
)

// RepResolver maps a survey link slug to the id of an active sales rep.
// A nil id with a nil error means no active rep owns the slug.
type RepResolver interface {
	ResolveSlug(ctx context.Context, slug string) (*uuid.UUID, error)
}

// System defines the public contract for client survey submissions.
type System interface {
	Handler() *Handler

	Submit(ctx context.Context, cmd SubmitCommand) (*Receipt, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[ClientResponse], error)

	Find(ctx context.Context, id uuid.UUID) (*ClientResponse, error)
}
