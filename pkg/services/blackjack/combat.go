package blackjack

import (
	"errors"
	"fmt"

	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/rng"
	"github.com/fadedpez/roguejack/pkg/services/modifiers"
)

var (
	ErrInvalidAction = errors.New("invalid action for current combat phase")
	ErrDeckExhausted = errors.New("deck exhausted")
)

// PushBreakdown is the damage trace of every pushed hand
const PushBreakdown = "Push - no damage"

// Phase of a single hand
type Phase string

const (
	PhaseReady        Phase = "ready"
	PhaseDealt        Phase = "dealt"
	PhasePlayerActing Phase = "player_acting"
	PhaseDealerActing Phase = "dealer_acting"
	PhaseResolved     Phase = "resolved"
)

// Combat sequences one hand from the deal to its result. The deck is built
// once at creation and never reshuffled mid-hand.
type Combat struct {
	Phase          Phase
	PlayerHand     entities.Hand
	DealerHand     entities.Hand
	DealerRevealed bool
	DoubledDown    bool

	// Set by ResolveHand, after bust overrides
	PlayerScore entities.HandScore
	DealerScore entities.HandScore
	Result      *entities.HandResult

	deck []entities.Card
	next int
}

// NewCombat builds and shuffles a deck for the hand
func NewCombat(r *rng.RNG, rules entities.GameRules) *Combat {
	return newCombat(entities.BuildDeck(r, rules.Deck.NumberOfDecks))
}

func newCombat(deck []entities.Card) *Combat {
	return &Combat{
		Phase:      PhaseReady,
		PlayerHand: entities.Hand{},
		DealerHand: entities.Hand{},
		deck:       deck,
	}
}

// Remaining returns how many cards are left to draw
func (c *Combat) Remaining() int {
	return len(c.deck) - c.next
}

func (c *Combat) draw() (entities.Card, error) {
	if c.next >= len(c.deck) {
		return entities.Card{}, fmt.Errorf("draw card %d of %d: %w", c.next+1, len(c.deck), ErrDeckExhausted)
	}
	card := c.deck[c.next]
	c.next++
	return card, nil
}

// DealInitial deals the opening cards one at a time, alternating between
// the two hands in the configured turn order until each has its count.
func (c *Combat) DealInitial(rules entities.GameRules) error {
	if c.Phase != PhaseReady {
		return ErrInvalidAction
	}

	first, second := &c.PlayerHand, &c.DealerHand
	firstCount, secondCount := rules.TurnOrder.InitialPlayerCards, rules.TurnOrder.InitialDealerCards
	if !rules.TurnOrder.PlayerFirst {
		first, second = second, first
		firstCount, secondCount = secondCount, firstCount
	}

	for i := 0; i < firstCount || i < secondCount; i++ {
		if i < firstCount {
			card, err := c.draw()
			if err != nil {
				return err
			}
			*first = append(*first, card)
		}
		if i < secondCount {
			card, err := c.draw()
			if err != nil {
				return err
			}
			*second = append(*second, card)
		}
	}

	c.Phase = PhaseDealt
	return nil
}

func (c *Combat) playerCanAct() bool {
	return c.Phase == PhaseDealt || c.Phase == PhasePlayerActing
}

// Hit draws one card into the player's hand
func (c *Combat) Hit() error {
	if !c.playerCanAct() {
		return ErrInvalidAction
	}

	card, err := c.draw()
	if err != nil {
		return err
	}
	c.PlayerHand = append(c.PlayerHand, card)
	c.Phase = PhasePlayerActing
	return nil
}

// Stand ends the player's turn and turns the dealer's hole card face up
func (c *Combat) Stand() error {
	if !c.playerCanAct() {
		return ErrInvalidAction
	}

	c.DealerRevealed = true
	c.Phase = PhaseDealerActing
	return nil
}

// DoubleDown draws exactly one card and ends the player's turn. It is only
// allowed as the first decision of the hand.
func (c *Combat) DoubleDown() error {
	if c.Phase != PhaseDealt {
		return ErrInvalidAction
	}

	card, err := c.draw()
	if err != nil {
		return err
	}
	c.PlayerHand = append(c.PlayerHand, card)
	c.DoubledDown = true
	c.DealerRevealed = true
	c.Phase = PhaseDealerActing
	return nil
}

// DealerPlay draws for the dealer until the hand busts, exceeds StandsOn,
// or sits exactly on StandsOn (a soft StandsOn still draws when the dealer
// hits soft 17).
func (c *Combat) DealerPlay(rules entities.GameRules) error {
	if c.Phase != PhaseDealerActing {
		return ErrInvalidAction
	}

	for {
		score := ScoreHand(c.DealerHand, rules)
		if score.Busted || score.Value > rules.Dealer.StandsOn {
			return nil
		}
		if score.Value == rules.Dealer.StandsOn && !(score.Soft && !rules.Dealer.StandsOnSoft17) {
			return nil
		}

		card, err := c.draw()
		if err != nil {
			return err
		}
		c.DealerHand = append(c.DealerHand, card)
	}
}

// ResolveHand scores both hands, lets each side's bust hooks rescue a busted
// score, compares them and runs the winner's base damage through the damage
// pipeline. The winner's modifiers attack and the loser's defend. ctx
// carries the player, enemy, RNG and counters; hands, scores, rules and the
// double down flag are filled in here on a copy.
func (c *Combat) ResolveHand(playerMods, enemyMods []*entities.Modifier, rules entities.GameRules, ctx *entities.ModifierContext) (entities.HandResult, error) {
	if c.Phase != PhaseDealerActing {
		return entities.HandResult{}, ErrInvalidAction
	}

	hctx := entities.ModifierContext{}
	if ctx != nil {
		hctx = *ctx
	}
	hctx.PlayerHand = c.PlayerHand
	hctx.DealerHand = c.DealerHand
	hctx.Rules = rules
	hctx.DoubledDown = c.DoubledDown
	hctx.PlayerScore = ScoreHand(c.PlayerHand, rules)
	hctx.DealerScore = ScoreHand(c.DealerHand, rules)

	hctx.PlayerScore = modifiers.ApplyBustModifiers(c.PlayerHand, hctx.PlayerScore, playerMods, &hctx)
	hctx.DealerScore = modifiers.ApplyBustModifiers(c.DealerHand, hctx.DealerScore, enemyMods, &hctx)

	player, dealer := hctx.PlayerScore, hctx.DealerScore
	result := entities.HandResult{
		PlayerScore:  player.Value,
		DealerScore:  dealer.Value,
		Winner:       CompareHands(player, dealer, rules),
		DamageTarget: entities.TargetNone,
	}

	c.Phase = PhaseResolved
	c.DealerRevealed = true
	c.PlayerScore, c.DealerScore = player, dealer
	c.Result = &result

	if result.Winner == entities.WinnerPush {
		result.DamageBreakdown = PushBreakdown
		return result, nil
	}

	winScore, loseScore := dealer, player
	attacker, defender := enemyMods, playerMods
	result.DamageTarget = entities.TargetPlayer
	if result.Winner == entities.WinnerPlayer {
		winScore, loseScore = player, dealer
		attacker, defender = playerMods, enemyMods
		result.DamageTarget = entities.TargetDealer
	}

	base := CalculateBaseDamage(winScore, loseScore, rules)
	if result.Winner == entities.WinnerPlayer && c.DoubledDown {
		base = entities.ScaleFloor(base, rules.Actions.DoubleDownMultiplier)
	}

	damage := modifiers.ApplyDamageModifiers(base, result.DamageTarget, attacker, defender, &hctx)
	result.DamageDealt = damage.FinalDamage
	result.Dodged = damage.Dodged
	result.DamageBreakdown = damage.Breakdown
	return result, nil
}
