package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/repositories/run"
	"github.com/fadedpez/roguejack/pkg/rng"
)

// Service stores recorded runs and checks that they replay
type Service struct {
	repo   run.Repository
	logger *logging.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a Service
type Option func(*Service)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDs replaces the uuid generator
func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a replay service
func NewService(repo run.Repository, logger *logging.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = logging.Default
	}
	s := &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record assigns the run an id and timestamp and saves it
func (s *Service) Record(ctx context.Context, record *entities.RunRecord) (string, error) {
	if record.ID == "" {
		record.ID = s.newID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now().UTC()
	}

	if err := s.repo.SaveRun(ctx, record); err != nil {
		return "", err
	}
	s.logger.Info("Recorded run %s: seed %s, %d actions, %d hands, %s",
		record.ID, record.Seed, len(record.Actions), len(record.Results), record.Outcome)
	return record.ID, nil
}

// Get loads a stored run
func (s *Service) Get(ctx context.Context, id string) (*entities.RunRecord, error) {
	return s.repo.GetRun(ctx, id)
}

// List returns the most recent runs first
func (s *Service) List(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	return s.repo.ListRuns(ctx, limit)
}

var seedComparer = cmp.Comparer(func(a, b rng.Seed) bool { return a == b })

// Diff compares what a run recorded with what replaying it produced. An
// empty string means they agree.
func Diff(recorded, replayed *entities.RunRecord) string {
	type outcome struct {
		Results []entities.HandResult
		Outcome entities.RunOutcome
		Final   entities.FinalState
	}
	return cmp.Diff(
		outcome{recorded.Results, recorded.Outcome, recorded.Final},
		outcome{replayed.Results, replayed.Outcome, replayed.Final},
		seedComparer,
	)
}

// Verify replays a stored run from its seed and action log and checks that
// every hand result and the end state come out the same
func (s *Service) Verify(ctx context.Context, id string) (*entities.RunRecord, error) {
	recorded, err := s.repo.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}

	replayed, err := Replay(recorded)
	if err != nil {
		return nil, types.WrapError(types.ErrReplayDiverged, fmt.Sprintf("run %s could not be replayed", id), err)
	}

	if diff := Diff(recorded, replayed); diff != "" {
		err := types.NewGameError(types.ErrReplayDiverged, fmt.Sprintf("run %s replayed differently (-recorded +replayed):\n%s", id, diff))
		s.logger.LogError(err)
		return replayed, err
	}

	s.logger.Info("Run %s replayed identically over %d hands", id, len(replayed.Results))
	return replayed, nil
}
