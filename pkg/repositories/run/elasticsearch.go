package run

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/pkg/entities"
)

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
	// Transport replaces the HTTP transport; tests point it at a fake server
	Transport http.RoundTripper
}

// DefaultElasticsearchConfig returns a default configuration for Elasticsearch
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		URL:         "http://localhost:9200",
		IndexPrefix: "roguejack",
	}
}

// ElasticsearchRepository stores runs in a base repository and indexes a
// summary of each run plus every hand result for analytics. Reads go to
// the base repository.
type ElasticsearchRepository struct {
	baseRepo    Repository
	client      *elasticsearch.Client
	indexPrefix string
	logger      *logging.Logger
}

// NewElasticsearchRepository creates the client and makes sure both indices exist
func NewElasticsearchRepository(ctx context.Context, baseRepo Repository, config *ElasticsearchConfig, logger *logging.Logger) (*ElasticsearchRepository, error) {
	if logger == nil {
		logger = logging.Default
	}

	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
		Transport: config.Transport,
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	prefix := config.IndexPrefix
	if prefix == "" {
		prefix = "roguejack"
	}

	repo := &ElasticsearchRepository{
		baseRepo:    baseRepo,
		client:      client,
		indexPrefix: prefix,
		logger:      logger,
	}

	if err := repo.initIndices(ctx); err != nil {
		return nil, fmt.Errorf("error initializing indices: %w", err)
	}
	return repo, nil
}

// RunsIndex is the name of the run summary index
func (r *ElasticsearchRepository) RunsIndex() string {
	return r.indexPrefix + "_runs"
}

// HandsIndex is the name of the hand result index
func (r *ElasticsearchRepository) HandsIndex() string {
	return r.indexPrefix + "_hands"
}

const runMapping = `{
	"mappings": {
		"properties": {
			"run_id": { "type": "keyword" },
			"seed": { "type": "keyword" },
			"outcome": { "type": "keyword" },
			"stage": { "type": "integer" },
			"boss": { "type": "boolean" },
			"enemy_id": { "type": "keyword" },
			"hands": { "type": "integer" },
			"player_hp": { "type": "integer" },
			"gold": { "type": "integer" },
			"created_at": { "type": "date" }
		}
	}
}`

const handMapping = `{
	"mappings": {
		"properties": {
			"run_id": { "type": "keyword" },
			"hand_number": { "type": "integer" },
			"enemy_id": { "type": "keyword" },
			"stage": { "type": "integer" },
			"winner": { "type": "keyword" },
			"player_score": { "type": "integer" },
			"dealer_score": { "type": "integer" },
			"damage_dealt": { "type": "integer" },
			"damage_target": { "type": "keyword" },
			"dodged": { "type": "boolean" },
			"breakdown": { "type": "text" },
			"created_at": { "type": "date" }
		}
	}
}`

// initIndices creates the necessary indices if they don't exist
func (r *ElasticsearchRepository) initIndices(ctx context.Context) error {
	indices := []struct{ name, mapping string }{
		{r.RunsIndex(), runMapping},
		{r.HandsIndex(), handMapping},
	}
	for _, idx := range indices {
		index := idx.name
		res, err := r.client.Indices.Exists([]string{index}, r.client.Indices.Exists.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("error checking if index %s exists: %w", index, err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusNotFound {
			continue
		}

		res, err = r.client.Indices.Create(index,
			r.client.Indices.Create.WithContext(ctx),
			r.client.Indices.Create.WithBody(bytes.NewReader([]byte(idx.mapping))),
		)
		if err != nil {
			return fmt.Errorf("error creating index %s: %w", index, err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("error creating index %s: %s", index, res.String())
		}
		r.logger.Info("Created Elasticsearch index %s", index)
	}
	return nil
}

// SaveRun saves to the base repository, then indexes the run
func (r *ElasticsearchRepository) SaveRun(ctx context.Context, record *entities.RunRecord) error {
	if err := r.baseRepo.SaveRun(ctx, record); err != nil {
		return fmt.Errorf("error saving run to base repository: %w", err)
	}
	return r.IndexRun(ctx, record)
}

// IndexRun indexes the run summary and one document per hand
func (r *ElasticsearchRepository) IndexRun(ctx context.Context, record *entities.RunRecord) error {
	summary := ESRun{
		RunID:     record.ID,
		Seed:      record.Seed.String(),
		Outcome:   string(record.Outcome),
		Stage:     record.Setup.Stage,
		Boss:      record.Setup.Boss,
		EnemyID:   record.Final.EnemyID,
		Hands:     len(record.Results),
		PlayerHP:  record.Final.PlayerHP,
		Gold:      record.Final.Gold,
		CreatedAt: record.CreatedAt,
	}
	if err := r.index(ctx, r.RunsIndex(), record.ID, summary); err != nil {
		return err
	}

	for i, hand := range record.Results {
		doc := ESHandResult{
			RunID:        record.ID,
			HandNumber:   i + 1,
			EnemyID:      record.Final.EnemyID,
			Stage:        record.Setup.Stage,
			Winner:       string(hand.Winner),
			PlayerScore:  hand.PlayerScore,
			DealerScore:  hand.DealerScore,
			DamageDealt:  hand.DamageDealt,
			DamageTarget: string(hand.DamageTarget),
			Dodged:       hand.Dodged,
			Breakdown:    hand.DamageBreakdown,
			CreatedAt:    record.CreatedAt,
		}
		if err := r.index(ctx, r.HandsIndex(), fmt.Sprintf("%s-%d", record.ID, i+1), doc); err != nil {
			return err
		}
	}
	return nil
}

func (r *ElasticsearchRepository) index(ctx context.Context, index, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling %s document: %w", index, err)
	}

	req := esapi.IndexRequest{
		Index:      index,
		DocumentID: id,
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error indexing %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing %s/%s: %s", index, id, res.String())
	}
	return nil
}

// GetRun reads from the base repository
func (r *ElasticsearchRepository) GetRun(ctx context.Context, id string) (*entities.RunRecord, error) {
	return r.baseRepo.GetRun(ctx, id)
}

// ListRuns reads from the base repository
func (r *ElasticsearchRepository) ListRuns(ctx context.Context, limit int) ([]*entities.RunRecord, error) {
	return r.baseRepo.ListRuns(ctx, limit)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}
