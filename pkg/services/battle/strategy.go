package battle

import "github.com/fadedpez/roguejack/pkg/entities"

// Strategy picks the next action from what the player can see
type Strategy func(view GameView) entities.PlayerAction

// HitBelow hits while the visible player score is under n and stands
// otherwise. It never doubles down or uses items.
func HitBelow(n int) Strategy {
	return func(view GameView) entities.PlayerAction {
		for _, a := range view.Actions {
			if a == entities.ActionHit && view.PlayerScore.Value < n {
				return Hit
			}
		}
		return Stand
	}
}

// Play drives the battle with the strategy until it ends or maxActions
// actions have been taken. It returns the actions in the order played.
func Play(b *Battle, strategy Strategy, maxActions int) ([]entities.PlayerAction, error) {
	var played []entities.PlayerAction
	for !b.IsOver() && len(played) < maxActions {
		action := strategy(b.View())
		if _, err := b.Act(action); err != nil {
			return played, err
		}
		played = append(played, action)
	}
	return played, nil
}
