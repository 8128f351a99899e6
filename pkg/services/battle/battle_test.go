package battle

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/rng"
	"github.com/fadedpez/roguejack/pkg/services/blackjack"
	"github.com/fadedpez/roguejack/pkg/services/effects"
)

type BattleTestSuite struct {
	suite.Suite
	rules  entities.GameRules
	player *entities.PlayerState
}

func TestBattleSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}

func (s *BattleTestSuite) SetupTest() {
	s.rules = entities.DefaultRules()
	s.player = entities.NewPlayerState(s.rules)
}

func dummy(hp int) *entities.EnemyState {
	return &entities.EnemyState{ID: "dummy", Name: "Training Dummy", HP: hp, MaxHP: hp}
}

func (s *BattleTestSuite) start(seed string, enemy *entities.EnemyState) *Battle {
	b, err := New(rng.New(rng.StringSeed(seed)), s.rules, s.player, enemy, WithLogger(logging.Discard))
	s.Require().NoError(err)
	return b
}

func (s *BattleTestSuite) TestNewRejectsInvalidRules() {
	s.rules.Deck.NumberOfDecks = 0

	_, err := New(rng.New(rng.NumberSeed(1)), s.rules, s.player, dummy(10))

	s.True(types.IsGameError(err, types.ErrInvalidRules))
}

func (s *BattleTestSuite) TestNewDealsFirstHand() {
	b := s.start("first hand", dummy(30))

	s.Equal(1, b.HandNumber)
	s.Equal(StatusPlayerTurn, b.Status)
	s.Equal(blackjack.PhaseDealt, b.Combat.Phase)

	view := b.View()
	s.Len(view.PlayerHand, 2)
	s.Len(view.DealerHand, 1, "hole card stays hidden")
	s.Equal(1, view.DealerHiddenCards)
	s.Equal(blackjack.ScoreHand(b.Combat.DealerHand[:1], b.Rules), view.DealerScore)
	s.Equal([]entities.ActionType{entities.ActionHit, entities.ActionStand, entities.ActionDoubleDown}, view.Actions)
	s.Equal("dealt", view.Phase)
}

func (s *BattleTestSuite) TestStandResolvesHandAndAppliesDamage() {
	b := s.start("stand", dummy(500))
	playerHP, enemyHP := s.player.HP, b.Enemy.HP

	result, err := b.Act(Stand)
	s.Require().NoError(err)
	s.True(result.Success)
	s.Require().Len(b.Results, 1)

	hand := b.Results[0]
	switch hand.DamageTarget {
	case entities.TargetDealer:
		s.Equal(enemyHP-hand.DamageDealt, b.Enemy.HP)
		s.Equal(playerHP, s.player.HP)
	case entities.TargetPlayer:
		s.Equal(max(playerHP-hand.DamageDealt, 0), s.player.HP)
		s.Equal(enemyHP, b.Enemy.HP)
	default:
		s.Equal(entities.WinnerPush, hand.Winner)
		s.Equal(blackjack.PushBreakdown, hand.DamageBreakdown)
	}

	if !b.IsOver() {
		s.Equal(2, b.HandNumber, "next hand is dealt straight away")
		s.Equal(blackjack.PhaseDealt, b.Combat.Phase)
		s.Equal(&hand, b.View().LastResult)
	}
}

func (s *BattleTestSuite) TestDoubleDownOnlyAsFirstDecision() {
	for i := 0; i < 50; i++ {
		s.SetupTest()
		b := s.start(fmt.Sprintf("double %d", i), dummy(500))
		_, err := b.Act(Hit)
		s.Require().NoError(err)
		if b.HandNumber != 1 {
			continue
		}

		s.NotContains(b.AvailableActions(), entities.ActionDoubleDown)
		result, err := b.Act(DoubleDown)
		s.Require().NoError(err)
		s.False(result.Success)
		s.Empty(b.Results)
		return
	}
	s.Fail("every seed busted on the first hit")
}

func (s *BattleTestSuite) TestDisabledDoubleDown() {
	s.rules.Actions.CanDoubleDown = false
	b := s.start("no double", dummy(30))

	s.NotContains(b.AvailableActions(), entities.ActionDoubleDown)
	result, err := b.Act(DoubleDown)
	s.Require().NoError(err)
	s.False(result.Success)
}

func (s *BattleTestSuite) TestDamagePotionWinsAndAwardsGold() {
	s.player.Consumables["damage_potion"] = 1
	b := s.start("potion", dummy(5))

	result, err := b.Act(UseItem("damage_potion"))
	s.Require().NoError(err)
	s.True(result.Success)
	s.Equal("Used Damage Potion: dealt 5 damage", result.Message)

	s.Equal(StatusVictory, b.Status)
	s.Equal(10, s.player.Gold)
	s.Equal(10, b.GoldEarned)
	s.Empty(s.player.Consumables)
	s.Empty(b.AvailableActions())

	_, err = b.Act(Stand)
	s.True(types.IsGameError(err, types.ErrBattleOver))
}

func (s *BattleTestSuite) TestBossGoldGoesThroughActiveEffects() {
	s.player.Consumables["gold_charm"] = 1
	s.player.Consumables["damage_potion"] = 1
	enemy := dummy(10)
	enemy.IsBoss = true
	b := s.start("boss", enemy)

	_, err := b.Act(UseItem("gold_charm"))
	s.Require().NoError(err)
	_, err = b.Act(UseItem("damage_potion"))
	s.Require().NoError(err)

	s.Equal(StatusVictory, b.Status)
	s.Equal(37, s.player.Gold, "floor(25 * 1.5)")
}

func (s *BattleTestSuite) TestUseItemRefusals() {
	b := s.start("items", dummy(30))

	result, err := b.Act(UseItem("health_potion"))
	s.Require().NoError(err)
	s.False(result.Success, "not owned")

	_, err = b.Act(UseItem("elixir_of_life"))
	s.True(types.IsGameError(err, types.ErrUnknownItem))

	result, err = b.Act(entities.PlayerAction{Type: "split"})
	s.Require().NoError(err)
	s.False(result.Success)
}

func (s *BattleTestSuite) TestBattleStartHooksRunOnce() {
	ring := &entities.Equipment{ID: "ring", Name: "Ring of Vigor", Slot: entities.SlotTrinket}
	ring.Modifier = effects.Compile(ring.ID, ring.Name, entities.SourceEquipment,
		[]entities.ComponentEffect{{Type: entities.EffectMaxHPBonus, Value: 10}})
	s.player.Equipment[entities.SlotTrinket] = ring

	b := s.start("vigor", dummy(500))
	s.Equal(60, s.player.MaxHP)
	s.Equal(60, s.player.HP)

	_, err := b.Act(Stand)
	s.Require().NoError(err)
	s.Equal(60, s.player.MaxHP, "battle start hooks don't run per hand")
}

func (s *BattleTestSuite) TestDefeatedEnemyAtStart() {
	b := s.start("dead", dummy(0))

	s.Equal(StatusVictory, b.Status)
	s.Nil(b.Combat)
	s.Equal(0, b.HandNumber)
	s.Empty(b.View().PlayerHand)
}

func (s *BattleTestSuite) TestPlayToTheEnd() {
	b := s.start("to the end", dummy(40))

	actions, err := Play(b, HitBelow(17), 1000)
	s.Require().NoError(err)
	s.NotEmpty(actions)
	s.True(b.IsOver())

	if b.Status == StatusDefeat {
		s.Equal(0, s.player.HP)
	} else {
		s.Equal(0, b.Enemy.HP)
		s.Equal(10, b.GoldEarned)
	}
}

func (s *BattleTestSuite) TestSameSeedSameBattle() {
	run := func() (*Battle, []entities.PlayerAction) {
		s.SetupTest()
		s.player.Consumables["strength_elixir"] = 1
		b := s.start("replayable", dummy(60))
		_, err := b.Act(UseItem("strength_elixir"))
		s.Require().NoError(err)
		actions, err := Play(b, HitBelow(16), 1000)
		s.Require().NoError(err)
		return b, actions
	}

	first, firstActions := run()
	second, secondActions := run()

	s.Empty(cmp.Diff(firstActions, secondActions))
	s.Empty(cmp.Diff(first.Results, second.Results))
	s.Equal(first.RNG().State(), second.RNG().State())
	s.Equal(first.Player.HP, second.Player.HP)
	s.Equal(first.Enemy.HP, second.Enemy.HP)
}
