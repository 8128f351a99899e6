package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/rng"
	"github.com/fadedpez/roguejack/pkg/services/battle"
	"github.com/fadedpez/roguejack/pkg/services/replay"
)

type playOptions struct {
	seed     string
	hands    int
	stage    int
	boss     bool
	hitBelow int
	equip    []string
	items    []string
	noRecord bool
}

func newPlayCmd(a *app) *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Auto-play one battle and record it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.play(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.seed, "seed", "", "seed for the battle (defaults to ROGUEJACK_SEED, then the clock)")
	flags.IntVar(&opts.hands, "hands", 50, "stop after this many hands")
	flags.IntVar(&opts.stage, "stage", 1, "stage to draw the enemy from")
	flags.BoolVar(&opts.boss, "boss", false, "fight the stage boss")
	flags.IntVar(&opts.hitBelow, "hit-below", 17, "hit while the hand is under this score")
	flags.StringSliceVar(&opts.equip, "equip", nil, "equipment ids to start with")
	flags.StringSliceVar(&opts.items, "item", nil, "consumable ids to start with, repeat for more than one")
	flags.BoolVar(&opts.noRecord, "no-record", false, "don't store the run")
	return cmd
}

func (a *app) seed(flag string) rng.Seed {
	switch {
	case flag != "":
		return rng.ParseSeed(flag)
	case a.cfg.Seed != "":
		return rng.ParseSeed(a.cfg.Seed)
	}
	return rng.NumberSeed(time.Now().UnixNano())
}

func (a *app) play(cmd *cobra.Command, opts *playOptions) error {
	setup := entities.RunSetup{
		Stage:       opts.stage,
		Boss:        opts.boss,
		Equipment:   opts.equip,
		Consumables: make(map[string]int),
		Rules:       entities.DefaultRules(),
	}
	for _, id := range opts.items {
		setup.Consumables[id]++
	}

	seed := a.seed(opts.seed)
	session, err := replay.NewSession(seed, setup, a.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	b := session.Battle
	fmt.Fprintf(out, "Seed %s: %s (%d hp) vs you (%d hp)\n", seed, b.Enemy.Name, b.Enemy.HP, b.Player.HP)

	strategy := battle.HitBelow(opts.hitBelow)
	for !b.IsOver() && len(b.Results) < opts.hands {
		played := len(b.Results)
		if err := session.Play(strategy, 1); err != nil {
			return err
		}
		if len(b.Results) > played {
			hand := b.Results[len(b.Results)-1]
			fmt.Fprintf(out, "Hand %d: %s %d-%d, %d to %s [%s] | you %d hp, %s %d hp\n",
				len(b.Results), hand.Winner, hand.PlayerScore, hand.DealerScore,
				hand.DamageDealt, hand.DamageTarget, hand.DamageBreakdown,
				b.Player.HP, b.Enemy.Name, b.Enemy.HP)
		}
	}

	record := session.Finish()
	fmt.Fprintf(out, "Outcome: %s after %d hands, %d gold\n", record.Outcome, len(record.Results), record.Final.Gold)
	if opts.noRecord {
		return nil
	}

	repo, err := a.repository(cmd.Context())
	if err != nil {
		return err
	}
	id, err := replay.NewService(repo, a.logger).Record(cmd.Context(), record)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Recorded run %s\n", id)
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
