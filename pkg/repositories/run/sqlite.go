package run

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/db/migrations"
	"github.com/fadedpez/roguejack/pkg/entities"
	"github.com/fadedpez/roguejack/pkg/rng"
)

// InMemoryDSN opens a private in-memory database
const InMemoryDSN = ":memory:"

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dbPath and applies the
// embedded migrations
func NewSQLiteRepository(dbPath string, logger *logging.Logger) (*SQLiteRepository, error) {
	if dbPath != InMemoryDSN {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if dbPath == InMemoryDSN {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	migrator := migrations.NewMigrator(db, migrations.Embedded(), logger)
	if _, err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRun stores the run and its hand results in one transaction
func (r *SQLiteRepository) SaveRun(ctx context.Context, record *entities.RunRecord) error {
	if record == nil || record.ID == "" {
		return types.NewGameError(types.ErrInvalidState, "run record needs an id")
	}

	seed, err := json.Marshal(record.Seed)
	if err != nil {
		return err
	}
	setup, err := json.Marshal(record.Setup)
	if err != nil {
		return err
	}
	actions, err := json.Marshal(record.Actions)
	if err != nil {
		return err
	}
	final, err := json.Marshal(record.Final)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "begin save run", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO runs (id, seed, outcome, setup, actions, final_state, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id)
		DO UPDATE SET seed = excluded.seed, outcome = excluded.outcome, setup = excluded.setup,
			actions = excluded.actions, final_state = excluded.final_state, created_at = excluded.created_at`
	if _, err := tx.ExecContext(ctx, query, record.ID, string(seed), string(record.Outcome),
		string(setup), string(actions), string(final), record.CreatedAt.UTC()); err != nil {
		return types.WrapError(types.ErrDatabaseError, "save run "+record.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM hand_results WHERE run_id = ?`, record.ID); err != nil {
		return types.WrapError(types.ErrDatabaseError, "clear hand results", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO hand_results (run_id, hand_number, winner, player_score, dealer_score,
			damage_dealt, damage_target, dodged, breakdown)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "prepare hand results", err)
	}
	defer stmt.Close()

	for i, hand := range record.Results {
		if _, err := stmt.ExecContext(ctx, record.ID, i+1, string(hand.Winner), hand.PlayerScore, hand.DealerScore,
			hand.DamageDealt, string(hand.DamageTarget), hand.Dodged, hand.DamageBreakdown); err != nil {
			return types.WrapError(types.ErrDatabaseError, fmt.Sprintf("save hand %d", i+1), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WrapError(types.ErrDatabaseError, "commit run "+record.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*entities.RunRecord, error) {
	var (
		record                             entities.RunRecord
		seed, outcome, setup, actions, fin string
		createdAt                          time.Time
	)
	if err := row.Scan(&record.ID, &seed, &outcome, &setup, &actions, &fin, &createdAt); err != nil {
		return nil, err
	}

	var s rng.Seed
	if err := json.Unmarshal([]byte(seed), &s); err != nil {
		return nil, fmt.Errorf("decoding seed of run %s: %w", record.ID, err)
	}
	record.Seed = s
	record.Outcome = entities.RunOutcome(outcome)
	record.CreatedAt = createdAt
	if err := json.Unmarshal([]byte(setup), &record.Setup); err != nil {
		return nil, fmt.Errorf("decoding setup of run %s: %w", record.ID, err)
	}
	if err := json.Unmarshal([]byte(actions), &record.Actions); err != nil {
		return nil, fmt.Errorf("decoding actions of run %s: %w", record.ID, err)
	}
	if err := json.Unmarshal([]byte(fin), &record.Final); err != nil {
		return nil, fmt.Errorf("decoding final state of run %s: %w", record.ID, err)
	}
	return &record, nil
}

func (r *SQLiteRepository) loadResults(ctx context.Context, record *entities.RunRecord) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT winner, player_score, dealer_score, damage_dealt, damage_target, dodged, breakdown
		FROM hand_results WHERE run_id = ? ORDER BY hand_number`, record.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			hand           entities.HandResult
			winner, target string
		)
		if err := rows.Scan(&winner, &hand.PlayerScore, &hand.DealerScore, &hand.DamageDealt,
			&target, &hand.Dodged, &hand.DamageBreakdown); err != nil {
			return err
		}
		hand.Winner = entities.Winner(winner)
		hand.DamageTarget = entities.DamageTarget(target)
		record.Results = append(record.Results, hand)
	}
	return rows.Err()
}

const selectRun = `SELECT id, seed, outcome, setup, actions, final_state, created_at FROM runs`

// GetRun retrieves a run and its hand results
func (r *SQLiteRepository) GetRun(ctx context.Context, id string) (*entities.RunRecord, error) {
	record, err := scanRun(r.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "get run "+id, err)
	}

	if err := r.loadResults(ctx, record); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "get hand results of "+id, err)
	}
	return record, nil
}

// ListRuns returns the most recent runs first
func (r *SQLiteRepository) ListRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, selectRun+` ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "list runs", err)
	}

	var records []*entities.RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, types.WrapError(types.ErrDatabaseError, "list runs", err)
		}
		records = append(records, record)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "list runs", err)
	}

	for _, record := range records {
		if err := r.loadResults(ctx, record); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "get hand results of "+record.ID, err)
		}
	}
	return records, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
