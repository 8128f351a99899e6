package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/fadedpez/roguejack/pkg/db/migrations"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the SQLite run store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(filepath.Dir(a.cfg.DBPath), 0755); err != nil {
				return fmt.Errorf("error creating database directory: %w", err)
			}
			db, err := sql.Open("sqlite3", a.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("error opening database: %w", err)
			}
			defer db.Close()

			count, err := migrations.NewMigrator(db, migrations.Embedded(), a.logger).MigrateUp()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %s to %s\n", plural(count, "migration"), a.cfg.DBPath)
			return nil
		},
	}

	var dir string
	create := &cobra.Command{
		Use:   "new DESCRIPTION",
		Short: "Create an empty, numbered migration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := migrations.CreateMigration(dir, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created migration file: %s\n", path)
			return nil
		},
	}
	create.Flags().StringVar(&dir, "dir", "pkg/db/migrations/sql", "directory to store migrations")
	cmd.AddCommand(create)
	return cmd
}
