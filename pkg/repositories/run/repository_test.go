package run

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/rng"
)

func sampleRecord(id string, at time.Time) *entities.RunRecord {
	seed := rng.StringSeed("sample " + id)
	return &entities.RunRecord{
		ID:   id,
		Seed: seed,
		Setup: entities.RunSetup{
			Stage:       2,
			Boss:        true,
			Equipment:   []string{"bronze_armor", "iron_trinket"},
			Consumables: map[string]int{"health_potion": 2},
			Rules:       entities.DefaultRules(),
		},
		Actions: []entities.PlayerAction{
			{Type: entities.ActionHit},
			{Type: entities.ActionUseItem, ItemID: "health_potion"},
			{Type: entities.ActionStand},
		},
		Results: []entities.HandResult{
			{PlayerScore: 20, DealerScore: 18, Winner: entities.WinnerPlayer, DamageDealt: 2, DamageTarget: entities.TargetDealer, DamageBreakdown: "Base: 2"},
			{PlayerScore: 19, DealerScore: 19, Winner: entities.WinnerPush, DamageTarget: entities.TargetNone, DamageBreakdown: "Push - no damage"},
			{PlayerScore: 15, DealerScore: 21, Winner: entities.WinnerDealer, DamageTarget: entities.TargetPlayer, Dodged: true, DamageBreakdown: "Base: 6 | DODGED"},
		},
		Outcome: entities.OutcomeAbandoned,
		Final: entities.FinalState{
			PlayerHP:    44,
			PlayerMaxHP: 50,
			Gold:        3,
			EnemyID:     "troll",
			EnemyHP:     68,
			RNGState:    rng.State{Seed: seed, CallCount: 61},
		},
		CreatedAt: at,
	}
}

// RepositoryTestSuite runs the same behavior checks against every store
type RepositoryTestSuite struct {
	suite.Suite
	open func() Repository
	repo Repository
	ctx  context.Context
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{open: func() Repository { return NewMemoryRepository() }})
}

func TestSQLiteRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.open = func() Repository {
		repo, err := NewSQLiteRepository(InMemoryDSN, logging.Discard)
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.open()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func (s *RepositoryTestSuite) assertSameRun(want, got *entities.RunRecord) {
	s.Require().NotNil(got)
	s.True(want.CreatedAt.Equal(got.CreatedAt), "created at %v, want %v", got.CreatedAt, want.CreatedAt)
	copied := *got
	copied.CreatedAt = want.CreatedAt
	s.Equal(*want, copied)
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	want := sampleRecord("run-1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.SaveRun(s.ctx, want))

	got, err := s.repo.GetRun(s.ctx, "run-1")
	s.Require().NoError(err)
	s.assertSameRun(want, got)
}

func (s *RepositoryTestSuite) TestSaveReplacesExistingRun() {
	first := sampleRecord("run-1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.Require().NoError(s.repo.SaveRun(s.ctx, first))

	second := sampleRecord("run-1", first.CreatedAt)
	second.Outcome = entities.OutcomeVictory
	second.Results = second.Results[:1]
	s.Require().NoError(s.repo.SaveRun(s.ctx, second))

	got, err := s.repo.GetRun(s.ctx, "run-1")
	s.Require().NoError(err)
	s.assertSameRun(second, got)
}

func (s *RepositoryTestSuite) TestGetMissingRun() {
	_, err := s.repo.GetRun(s.ctx, "nope")
	s.True(types.IsGameError(err, types.ErrRunNotFound))
}

func (s *RepositoryTestSuite) TestSaveWithoutID() {
	err := s.repo.SaveRun(s.ctx, sampleRecord("", time.Now()))
	s.True(types.IsGameError(err, types.ErrInvalidState))
}

func (s *RepositoryTestSuite) TestListMostRecentFirst() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "newest", "middle"} {
		offset := []time.Duration{0, 2 * time.Hour, time.Hour}[i]
		s.Require().NoError(s.repo.SaveRun(s.ctx, sampleRecord(id, base.Add(offset))))
	}

	all, err := s.repo.ListRuns(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]string{"newest", "middle", "old"}, []string{all[0].ID, all[1].ID, all[2].ID})
	s.Len(all[0].Results, 3)

	limited, err := s.repo.ListRuns(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(limited, 2)
	s.Equal("middle", limited[1].ID)
}

func (s *RepositoryTestSuite) TestReturnedRecordIsACopy() {
	s.Require().NoError(s.repo.SaveRun(s.ctx, sampleRecord("run-1", time.Now().UTC())))

	got, err := s.repo.GetRun(s.ctx, "run-1")
	s.Require().NoError(err)
	got.Results[0].DamageDealt = 999
	got.Setup.Consumables["health_potion"] = 0

	again, err := s.repo.GetRun(s.ctx, "run-1")
	s.Require().NoError(err)
	s.Equal(2, again.Results[0].DamageDealt)
	s.Equal(2, again.Setup.Consumables["health_potion"])
}
