package run

import (
	"context"
	"sort"
	"sync"

	"github.com/fadedpez/roguejack/internal/types"
	"github.com/fadedpez/roguejack/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu   sync.RWMutex
	runs map[string]*entities.RunRecord
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		runs: make(map[string]*entities.RunRecord),
	}
}

// SaveRun stores a copy of the record, replacing any run with the same id
func (r *MemoryRepository) SaveRun(ctx context.Context, record *entities.RunRecord) error {
	if record == nil || record.ID == "" {
		return types.NewGameError(types.ErrInvalidState, "run record needs an id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[record.ID] = clone(record)
	return nil
}

// GetRun retrieves a run by id
func (r *MemoryRepository) GetRun(ctx context.Context, id string) (*entities.RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.runs[id]
	if !ok {
		return nil, notFound(id)
	}
	return clone(record), nil
}

// ListRuns returns the most recent runs first
func (r *MemoryRepository) ListRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*entities.RunRecord, 0, len(r.runs))
	for _, record := range r.runs {
		records = append(records, clone(record))
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

func clone(record *entities.RunRecord) *entities.RunRecord {
	out := *record
	out.Actions = append([]entities.PlayerAction(nil), record.Actions...)
	out.Results = append([]entities.HandResult(nil), record.Results...)
	out.Setup.Equipment = append([]string(nil), record.Setup.Equipment...)
	out.Setup.Rules = record.Setup.Rules.Clone()
	if record.Setup.Consumables != nil {
		out.Setup.Consumables = make(map[string]int, len(record.Setup.Consumables))
		for id, n := range record.Setup.Consumables {
			out.Setup.Consumables[id] = n
		}
	}
	return &out
}
