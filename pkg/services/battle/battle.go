package battle

import (
	"errors"
	"fmt"

	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/catalog"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/rng"
	"github.com/fadedpez/roguejack/pkg/services/blackjack"
	"github.com/fadedpez/roguejack/pkg/services/consumables"
	"github.com/fadedpez/roguejack/pkg/services/modifiers"
)

// Battle drives one fight between the player and an enemy, hand after hand,
// until one side is out of hp. Every random draw comes from the battle's RNG
// so the same seed and actions always give the same battle.
type Battle struct {
	Stage  int
	Number int

	Player    *entities.PlayerState
	Enemy     *entities.EnemyState
	BaseRules entities.GameRules

	// Rules is BaseRules run through the player's modifiers for the current hand
	Rules      entities.GameRules
	Combat     *blackjack.Combat
	HandNumber int
	Status     Status
	Results    []entities.HandResult
	GoldEarned int

	rng    *rng.RNG
	logger *logging.Logger
}

// Option configures a Battle
type Option func(*Battle)

// WithLogger sets the battle's logger
func WithLogger(l *logging.Logger) Option {
	return func(b *Battle) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithPosition records where in the run this battle sits
func WithPosition(stage, number int) Option {
	return func(b *Battle) {
		b.Stage = stage
		b.Number = number
	}
}

// New starts a battle: it runs battle start hooks and deals the first hand
func New(r *rng.RNG, rules entities.GameRules, player *entities.PlayerState, enemy *entities.EnemyState, opts ...Option) (*Battle, error) {
	if r == nil || player == nil || enemy == nil {
		return nil, types.NewGameError(types.ErrInvalidState, "battle needs an rng, a player and an enemy")
	}
	if err := rules.Validate(); err != nil {
		return nil, types.WrapError(types.ErrInvalidRules, "invalid battle rules", err)
	}

	b := &Battle{
		Stage:     1,
		Number:    1,
		Player:    player,
		Enemy:     enemy,
		BaseRules: rules.Clone(),
		Status:    StatusPlayerTurn,
		rng:       r,
		logger:    logging.Default,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.Rules = modifiers.ApplyModifierPipeline(b.playerMods(), b.BaseRules)
	modifiers.RunBattleStart(b.allMods(), b.context())
	b.logger.Info("Battle %d-%d: %s (%d hp) vs player (%d/%d hp)", b.Stage, b.Number, enemy.Name, enemy.HP, player.HP, player.MaxHP)

	if b.checkOver() {
		return b, nil
	}
	if err := b.startHand(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Battle) playerMods() []*entities.Modifier {
	return modifiers.CollectPlayerModifiers(b.Player)
}

func (b *Battle) enemyMods() []*entities.Modifier {
	return modifiers.CollectEnemyModifiers(b.Enemy)
}

func (b *Battle) allMods() []*entities.Modifier {
	return append(b.playerMods(), b.enemyMods()...)
}

func (b *Battle) context() *entities.ModifierContext {
	return &entities.ModifierContext{
		Player:     b.Player,
		Enemy:      b.Enemy,
		Rules:      b.Rules,
		RNG:        b.rng,
		Stage:      b.Stage,
		Battle:     b.Number,
		HandNumber: b.HandNumber,
	}
}

// RNG returns the battle's random source
func (b *Battle) RNG() *rng.RNG {
	return b.rng
}

// IsOver reports whether the battle has a winner
func (b *Battle) IsOver() bool {
	return b.Status != StatusPlayerTurn
}

func (b *Battle) startHand() error {
	b.HandNumber++
	b.Rules = modifiers.ApplyModifierPipeline(b.playerMods(), b.BaseRules)
	if err := b.Rules.Validate(); err != nil {
		return types.WrapError(types.ErrInvalidRules, fmt.Sprintf("modifiers broke the rules for hand %d", b.HandNumber), err)
	}

	modifiers.RunHandStart(b.allMods(), b.context())
	if b.checkOver() {
		b.Combat = nil
		return nil
	}

	b.Combat = blackjack.NewCombat(b.rng, b.Rules)
	if err := b.Combat.DealInitial(b.Rules); err != nil {
		return b.fatal(err)
	}
	b.logger.Debug("Hand %d dealt: player %s", b.HandNumber, b.Combat.PlayerHand)
	return nil
}

// Act applies one player command. Expected refusals, such as an action the
// rules do not allow, come back as a failed ActionResult. Errors are
// reserved for misuse: acting after the battle ended, unknown items and an
// exhausted deck.
func (b *Battle) Act(action entities.PlayerAction) (types.ActionResult, error) {
	if b.IsOver() {
		return types.ActionResult{}, types.NewGameError(types.ErrBattleOver, fmt.Sprintf("battle already ended in %s", b.Status))
	}

	switch action.Type {
	case entities.ActionHit:
		if !b.Rules.Actions.CanHit {
			return types.Fail("You can't hit"), nil
		}
		if err := b.Combat.Hit(); err != nil {
			return b.combatError(err)
		}
		card := b.Combat.PlayerHand[len(b.Combat.PlayerHand)-1]
		score := blackjack.ScoreHand(b.Combat.PlayerHand, b.Rules)
		if score.Busted || score.Value == b.Rules.Scoring.BustThreshold {
			if err := b.Combat.Stand(); err != nil {
				return b.combatError(err)
			}
			return b.finishHand(fmt.Sprintf("You drew %s", card))
		}
		return types.Ok("You drew %s (%d)", card, score.Value), nil

	case entities.ActionStand:
		if !b.Rules.Actions.CanStand {
			return types.Fail("You can't stand"), nil
		}
		if err := b.Combat.Stand(); err != nil {
			return b.combatError(err)
		}
		return b.finishHand("You stand")

	case entities.ActionDoubleDown:
		if !b.Rules.Actions.CanDoubleDown || b.Combat.Phase != blackjack.PhaseDealt {
			return types.Fail("You can't double down now"), nil
		}
		if err := b.Combat.DoubleDown(); err != nil {
			return b.combatError(err)
		}
		return b.finishHand(fmt.Sprintf("You double down and draw %s", b.Combat.PlayerHand[len(b.Combat.PlayerHand)-1]))

	case entities.ActionUseItem:
		item, err := catalog.Consumable(action.ItemID)
		if err != nil {
			return types.ActionResult{}, err
		}
		result := consumables.Use(b.Player, b.Enemy, item)
		if result.Success {
			b.logger.Info("Hand %d: %s", b.HandNumber, result.Message)
			b.checkOver()
		}
		return result, nil
	}

	return types.Fail("Unknown action %q", action.Type), nil
}

func (b *Battle) finishHand(lead string) (types.ActionResult, error) {
	if err := b.Combat.DealerPlay(b.Rules); err != nil {
		return b.combatError(err)
	}

	result, err := b.Combat.ResolveHand(b.playerMods(), b.enemyMods(), b.Rules, b.context())
	if err != nil {
		return b.combatError(err)
	}

	switch result.DamageTarget {
	case entities.TargetDealer:
		b.Enemy.TakeDamage(result.DamageDealt)
	case entities.TargetPlayer:
		b.Player.TakeDamage(result.DamageDealt)
	}
	b.Results = append(b.Results, result)
	b.logger.Info("Hand %d: %s (%d vs %d) %d damage to %s [%s]",
		b.HandNumber, result.Winner, result.PlayerScore, result.DealerScore,
		result.DamageDealt, result.DamageTarget, result.DamageBreakdown)

	ctx := b.context()
	ctx.PlayerHand = b.Combat.PlayerHand
	ctx.DealerHand = b.Combat.DealerHand
	ctx.PlayerScore = b.Combat.PlayerScore
	ctx.DealerScore = b.Combat.DealerScore
	ctx.DoubledDown = b.Combat.DoubledDown
	ctx.Result = &result
	modifiers.RunHandEnd(b.allMods(), ctx)

	message := fmt.Sprintf("%s. %s", lead, describe(result))
	over := b.checkOver()

	for _, expired := range consumables.Tick(b.Player) {
		b.logger.Debug("Effect %s expired", expired.Name)
	}

	if over {
		return types.Ok("%s", message), nil
	}
	if err := b.startHand(); err != nil {
		return types.ActionResult{}, err
	}
	return types.Ok("%s", message), nil
}

func describe(result entities.HandResult) string {
	switch {
	case result.Winner == entities.WinnerPush:
		return fmt.Sprintf("Push at %d", result.PlayerScore)
	case result.Dodged && result.Winner == entities.WinnerPlayer:
		return fmt.Sprintf("You win %d to %d but the enemy dodged", result.PlayerScore, result.DealerScore)
	case result.Dodged:
		return fmt.Sprintf("Dealer wins %d to %d but you dodged", result.DealerScore, result.PlayerScore)
	case result.Winner == entities.WinnerPlayer:
		return fmt.Sprintf("You win %d to %d and deal %d damage", result.PlayerScore, result.DealerScore, result.DamageDealt)
	}
	return fmt.Sprintf("Dealer wins %d to %d and deals %d damage", result.DealerScore, result.PlayerScore, result.DamageDealt)
}

// checkOver ends the battle when either side is down, awarding gold on a win
func (b *Battle) checkOver() bool {
	switch {
	case b.Enemy.IsDefeated():
		b.Status = StatusVictory
		b.awardGold()
	case b.Player.IsDefeated():
		b.Status = StatusDefeat
		b.logger.Info("Battle %d-%d lost to %s", b.Stage, b.Number, b.Enemy.Name)
	default:
		return false
	}
	return true
}

func (b *Battle) awardGold() {
	base := b.Rules.Economy.GoldPerBattle
	if b.Enemy.IsBoss {
		base = b.Rules.Economy.GoldPerBossBattle
	}
	gold := modifiers.ApplyGoldModifiers(base, b.playerMods(), b.context())
	b.Player.Gold += gold
	b.GoldEarned = gold
	b.logger.Info("Battle %d-%d won against %s: +%d gold", b.Stage, b.Number, b.Enemy.Name, gold)
}

func (b *Battle) combatError(err error) (types.ActionResult, error) {
	if errors.Is(err, blackjack.ErrInvalidAction) {
		return types.Fail("That action isn't available now"), nil
	}
	return types.ActionResult{}, b.fatal(err)
}

func (b *Battle) fatal(err error) error {
	if errors.Is(err, blackjack.ErrDeckExhausted) {
		gameErr := types.WrapError(types.ErrDeckExhausted, fmt.Sprintf("deck ran out during hand %d", b.HandNumber), err)
		b.logger.LogError(gameErr)
		return gameErr
	}
	return types.WrapError(types.ErrInternalError, "combat failed", err)
}

// AvailableActions lists what the player may do right now
func (b *Battle) AvailableActions() []entities.ActionType {
	if b.IsOver() || b.Combat == nil {
		return nil
	}

	var actions []entities.ActionType
	if b.Combat.Phase == blackjack.PhaseDealt || b.Combat.Phase == blackjack.PhasePlayerActing {
		if b.Rules.Actions.CanHit {
			actions = append(actions, entities.ActionHit)
		}
		if b.Rules.Actions.CanStand {
			actions = append(actions, entities.ActionStand)
		}
		if b.Rules.Actions.CanDoubleDown && b.Combat.Phase == blackjack.PhaseDealt {
			actions = append(actions, entities.ActionDoubleDown)
		}
	}
	for _, count := range b.Player.Consumables {
		if count > 0 {
			actions = append(actions, entities.ActionUseItem)
			break
		}
	}
	return actions
}

// View snapshots the battle for display
func (b *Battle) View() GameView {
	view := GameView{
		Stage:       b.Stage,
		Battle:      b.Number,
		HandNumber:  b.HandNumber,
		Status:      b.Status,
		PlayerHP:    b.Player.HP,
		PlayerMaxHP: b.Player.MaxHP,
		Gold:        b.Player.Gold,
		EnemyID:     b.Enemy.ID,
		EnemyName:   b.Enemy.Name,
		EnemyHP:     b.Enemy.HP,
		EnemyMaxHP:  b.Enemy.MaxHP,
		Consumables: make(map[string]int, len(b.Player.Consumables)),
		Actions:     b.AvailableActions(),
		GoldEarned:  b.GoldEarned,
	}
	for id, count := range b.Player.Consumables {
		if count > 0 {
			view.Consumables[id] = count
		}
	}
	for _, effect := range b.Player.ActiveEffects {
		view.ActiveEffects = append(view.ActiveEffects, ActiveEffectView{
			ID:             effect.ID,
			Name:           effect.Name,
			RemainingHands: effect.RemainingHands,
		})
	}
	if n := len(b.Results); n > 0 {
		last := b.Results[n-1]
		view.LastResult = &last
	}

	if b.Combat == nil {
		return view
	}
	view.Phase = string(b.Combat.Phase)
	view.PlayerHand = append([]entities.Card(nil), b.Combat.PlayerHand...)
	view.PlayerScore = blackjack.ScoreHand(b.Combat.PlayerHand, b.Rules)

	dealer := b.Combat.DealerHand
	if !b.Combat.DealerRevealed && len(dealer) > 1 {
		view.DealerHiddenCards = len(dealer) - 1
		dealer = dealer[:1]
	}
	view.DealerHand = append([]entities.Card(nil), dealer...)
	view.DealerScore = blackjack.ScoreHand(dealer, b.Rules)
	return view
}
