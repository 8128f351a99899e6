package run

import (
	"context"
	"fmt"

	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_run

// Repository stores recorded runs: the seed, the action log and the hand
// results they produced
type Repository interface {
	SaveRun(ctx context.Context, record *entities.RunRecord) error
	GetRun(ctx context.Context, id string) (*entities.RunRecord, error)
	// ListRuns returns the most recent runs first; limit <= 0 returns all
	ListRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error)

	// Close closes any resources used by the repository
	Close() error
}

func notFound(id string) error {
	return types.NewGameError(types.ErrRunNotFound, fmt.Sprintf("no run with id %q", id))
}
