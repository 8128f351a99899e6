package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fadedpez/roguejack/pkg/services/replay"
)

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay RUN_ID",
		Short: "Replay a recorded run from its seed and actions and check it matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository(cmd.Context())
			if err != nil {
				return err
			}

			replayed, err := replay.NewService(repo, a.logger).Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Run %s replays identically: %s, %s\n",
				args[0], plural(len(replayed.Results), "hand"), replayed.Outcome)
			return nil
		},
	}
}
