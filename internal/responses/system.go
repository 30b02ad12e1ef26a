package responses

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/assessor/pkg/pagination"
)

// System defines the public contract for sales rep survey submissions.
type System interface {
	Handler() *Handler

	Submit(ctx context.Context, cmd SubmitCommand) (*Receipt, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Response], error)

	Find(ctx context.Context, id uuid.UUID) (*Response, error)
}
