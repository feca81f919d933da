package storage

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/algorithms"
)

// Store persists finished NSGA-II runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run RunRecord) error
	GetRun(ctx context.Context, id string) (RunRecord, bool, error)
	// ListRuns returns the summaries of all stored runs, newest first.
	ListRuns(ctx context.Context) ([]RunSummary, error)
	Close() error
}

// NewStore opens the store backend of the given kind. path is only used by
// the sqlite backend.
func NewStore(kind, path string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		if path == "" {
			return nil, fmt.Errorf("sqlite path is required")
		}
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// VersionedRecord tags every stored payload with the layout it was written in.
type VersionedRecord struct {
	SchemaVersion int `json:"schemaVersion"`
	CodecVersion  int `json:"codecVersion"`
}

// RunRecord is a finished run as it is persisted.
type RunRecord struct {
	VersionedRecord

	ID        string    `json:"id"`
	Problem   string    `json:"problem"`
	CreatedAt time.Time `json:"createdAt"`

	Config      RunConfig `json:"config"`
	Generations int       `json:"generations"`
	Evaluations int       `json:"evaluations"`
	CacheHits   int       `json:"cacheHits,omitempty"`
	Fronts      int       `json:"fronts"`

	Population []SolutionRecord `json:"population"`
	History    []SnapshotRecord `json:"history,omitempty"`
}

// RunConfig is the algorithm configuration of a stored run.
type RunConfig struct {
	Dimensions           int     `json:"dimensions"`
	PopulationSize       int     `json:"populationSize"`
	MaxGenerations       int     `json:"maxGenerations"`
	CrossoverProbability float64 `json:"crossoverProbability"`
	BitsPerParam         int     `json:"bitsPerParam"`
	Seed                 uint64  `json:"seed"`
	Dominance            string  `json:"dominance"`
	BoundaryInfinity     bool    `json:"boundaryInfinity,omitempty"`
}

// SolutionRecord is one member of the final population.
type SolutionRecord struct {
	Genome     string    `json:"genome"`
	Vector     []float64 `json:"vector"`
	Objectives []float64 `json:"objectives"`
	Rank       int       `json:"rank"`
	// Distance is nil when the crowding distance is infinite.
	Distance *float64 `json:"distance,omitempty"`
}

// SnapshotRecord is the summary of one generation.
type SnapshotRecord struct {
	Generation int       `json:"generation"`
	Fronts     int       `json:"fronts"`
	Best       []float64 `json:"best"`
}

// RunSummary is the listing entry of a stored run.
type RunSummary struct {
	ID          string    `json:"id"`
	Problem     string    `json:"problem"`
	CreatedAt   time.Time `json:"createdAt"`
	Evaluations int       `json:"evaluations"`
	FrontSize   int       `json:"frontSize"`
}

// NewRunRecord converts the result of a run into its stored form.
func NewRunRecord(id, problem string, config algorithms.NSGA2Config, res *algorithms.Result, createdAt time.Time) RunRecord {
	run := RunRecord{
		VersionedRecord: VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		ID:              id,
		Problem:         problem,
		CreatedAt:       createdAt.UTC(),
		Config: RunConfig{
			Dimensions:           len(config.SearchSpace),
			PopulationSize:       config.PopulationSize,
			MaxGenerations:       config.MaxGenerations,
			CrossoverProbability: config.CrossoverProbability,
			BitsPerParam:         config.BitsPerParam,
			Seed:                 config.Seed,
			Dominance:            config.Dominance.String(),
			BoundaryInfinity:     config.BoundaryInfinity,
		},
		Generations: res.Generations,
		Evaluations: res.Evaluations,
		CacheHits:   res.CacheHits,
		Fronts:      res.Fronts,
		Population:  make([]SolutionRecord, len(res.Population)),
		History:     make([]SnapshotRecord, len(res.History)),
	}

	for i, m := range res.Population {
		s := SolutionRecord{
			Genome:     m.Genome.String(),
			Vector:     m.Vector,
			Objectives: m.Objectives,
			Rank:       m.Rank,
		}
		if m.Crowded && !math.IsInf(m.Distance, 0) {
			d := m.Distance
			s.Distance = &d
		}
		run.Population[i] = s
	}
	for i, s := range res.History {
		run.History[i] = SnapshotRecord{
			Generation: s.Generation,
			Fronts:     s.Fronts,
			Best:       s.Best,
		}
	}
	return run
}

// Summary returns the listing entry of the run.
func (r RunRecord) Summary() RunSummary {
	return RunSummary{
		ID:          r.ID,
		Problem:     r.Problem,
		CreatedAt:   r.CreatedAt,
		Evaluations: r.Evaluations,
		FrontSize:   len(r.ParetoFront()),
	}
}

// ParetoFront returns the stored solutions of rank 0.
func (r RunRecord) ParetoFront() []SolutionRecord {
	var front []SolutionRecord
	for _, s := range r.Population {
		if s.Rank == 0 {
			front = append(front, s)
		}
	}
	return front
}
