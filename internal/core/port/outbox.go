package port

import (
	"context"

	"github.com/lmaki/rewarddining/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// OutboxPort stages an event for publication. When the context carries a
// transaction the staged row commits or rolls back with it.
type OutboxPort interface {
	Stage(ctx context.Context, event domain.Event) error
}
