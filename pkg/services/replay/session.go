package replay

import (
	"fmt"

	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/catalog"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/rng"
	"github.com/fadedpez/roguejack/pkg/services/battle"
	"github.com/fadedpez/roguejack/pkg/services/effects"
)

// Session is one battle being recorded. Everything the battle does is a
// function of the seed, the setup and the actions played, so those three
// are enough to play it again.
type Session struct {
	Seed   rng.Seed
	Setup  entities.RunSetup
	Battle *battle.Battle

	actions []entities.PlayerAction
}

// NewSession builds the player from the setup's loadout, draws the enemy
// from the seeded RNG and starts the battle
func NewSession(seed rng.Seed, setup entities.RunSetup, logger *logging.Logger) (*Session, error) {
	r := rng.New(seed)
	player := entities.NewPlayerState(setup.Rules)

	for _, id := range setup.Equipment {
		item, err := catalog.Equipment(id)
		if err != nil {
			return nil, err
		}
		if _, taken := player.Equipment[item.Slot]; taken {
			return nil, types.NewGameError(types.ErrInvalidState, fmt.Sprintf("two items for the %s slot", item.Slot))
		}
		player.Equipment[item.Slot] = item
	}
	for id, count := range setup.Consumables {
		if _, err := catalog.Consumable(id); err != nil {
			return nil, err
		}
		if count > 0 {
			player.Consumables[id] = count
		}
	}

	for i, w := range setup.Wishes {
		wish, err := buildWish(i+1, w)
		if err != nil {
			return nil, err
		}
		player.Wishes = append(player.Wishes, wish)
	}

	stage := max(setup.Stage, 1)
	enemy, err := catalog.PickEnemy(r, stage, setup.Boss, setup.Rules)
	if err != nil {
		return nil, err
	}

	b, err := battle.New(r, setup.Rules, player, enemy, battle.WithLogger(logger), battle.WithPosition(stage, 1))
	if err != nil {
		return nil, err
	}

	return &Session{
		Seed:   seed,
		Setup:  setup,
		Battle: b,
	}, nil
}

// buildWish compiles a recorded wish. The blessing is sanitized again on
// every build so a stored definition can never skip validation.
func buildWish(n int, w entities.WishSetup) (entities.Wish, error) {
	id := fmt.Sprintf("wish-%d", n)
	wish := entities.Wish{
		Text:     w.Text,
		Blessing: effects.CompileBlessing(id, w.Blessing),
	}
	if w.CurseID != "" {
		curse, err := catalog.Curse(w.CurseID, id)
		if err != nil {
			return entities.Wish{}, err
		}
		wish.Curse = curse
	}
	return wish, nil
}

// Act plays an action and records it. Actions that return an error changed
// nothing and are not recorded.
func (s *Session) Act(action entities.PlayerAction) (types.ActionResult, error) {
	result, err := s.Battle.Act(action)
	if err != nil {
		return result, err
	}
	s.actions = append(s.actions, action)
	return result, nil
}

// Play drives the battle with a strategy until it ends or maxActions more
// actions have been recorded
func (s *Session) Play(strategy battle.Strategy, maxActions int) error {
	for i := 0; i < maxActions && !s.Battle.IsOver(); i++ {
		if _, err := s.Act(strategy(s.Battle.View())); err != nil {
			return err
		}
	}
	return nil
}

// Actions returns the recorded action log
func (s *Session) Actions() []entities.PlayerAction {
	return append([]entities.PlayerAction(nil), s.actions...)
}

// Finish snapshots the session as a run record. The id and timestamp are
// left for the service to fill in.
func (s *Session) Finish() *entities.RunRecord {
	outcome := entities.OutcomeAbandoned
	switch s.Battle.Status {
	case battle.StatusVictory:
		outcome = entities.OutcomeVictory
	case battle.StatusDefeat:
		outcome = entities.OutcomeDefeat
	}

	return &entities.RunRecord{
		Seed:    s.Seed,
		Setup:   s.Setup,
		Actions: s.Actions(),
		Results: append([]entities.HandResult(nil), s.Battle.Results...),
		Outcome: outcome,
		Final: entities.FinalState{
			PlayerHP:    s.Battle.Player.HP,
			PlayerMaxHP: s.Battle.Player.MaxHP,
			Gold:        s.Battle.Player.Gold,
			EnemyID:     s.Battle.Enemy.ID,
			EnemyHP:     s.Battle.Enemy.HP,
			RNGState:    s.Battle.RNG().State(),
		},
	}
}

// Replay plays a record's actions against a fresh session built from its
// seed and setup, and returns what that produced
func Replay(record *entities.RunRecord) (*entities.RunRecord, error) {
	session, err := NewSession(record.Seed, record.Setup, logging.Discard)
	if err != nil {
		return nil, err
	}
	for i, action := range record.Actions {
		if _, err := session.Act(action); err != nil {
			return nil, fmt.Errorf("replaying action %d (%s): %w", i+1, action.Type, err)
		}
	}

	replayed := session.Finish()
	replayed.ID = record.ID
	replayed.CreatedAt = record.CreatedAt
	return replayed, nil
}
