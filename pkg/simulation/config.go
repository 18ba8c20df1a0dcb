package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-torus/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed boids.schema.json
var schemaSource string

const schemaURL = "https://github.com/lao-tseu-is-alive/go-boids-torus/boids.schema.json"

// ErrInvalidConfig is wrapped by every configuration failure.
var ErrInvalidConfig = errors.New("invalid config")

// Neighbor index names accepted by NeighborIndex.
const (
	IndexBrute = "brute"
	IndexGrid  = "grid"
)

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth" toml:"worldWidth"`
	WorldHeight float64 `json:"worldHeight" toml:"worldHeight"`

	// Population
	Population     int     `json:"population" toml:"population"`
	SpeedVariation float64 `json:"speedVariation" toml:"speedVariation"` // upper bound of the per boid speed jitter

	// Flocking, weights on the 0..100 slider scale
	PerceptionRadius float64 `json:"perceptionRadius" toml:"perceptionRadius"`
	BaseSpeed        float64 `json:"baseSpeed" toml:"baseSpeed"`
	Separation       float64 `json:"separation" toml:"separation"`
	Alignment        float64 `json:"alignment" toml:"alignment"`
	Cohesion         float64 `json:"cohesion" toml:"cohesion"`

	// Fear field
	FearRadius    float64 `json:"fearRadius" toml:"fearRadius"`
	FearDecay     float64 `json:"fearDecay" toml:"fearDecay"`
	FearThreshold float64 `json:"fearThreshold" toml:"fearThreshold"`

	// Engine
	Seed           uint64 `json:"seed" toml:"seed"`       // 0 picks a random seed
	Workers        int    `json:"workers" toml:"workers"` // 0 means GOMAXPROCS
	NeighborIndex  string `json:"neighborIndex" toml:"neighborIndex"`
	Highlight      bool   `json:"highlight" toml:"highlight"`
	TicksPerSecond int    `json:"ticksPerSecond" toml:"ticksPerSecond"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:       1000,
		WorldHeight:      800,
		Population:       300,
		SpeedVariation:   behavior.DefaultSpeedVariation,
		PerceptionRadius: 50,
		BaseSpeed:        2,
		Separation:       8,
		Alignment:        6,
		Cohesion:         4,
		FearRadius:       behavior.DefaultFearRadius,
		FearDecay:        behavior.DefaultFearDecay,
		FearThreshold:    behavior.DefaultFearThreshold,
		NeighborIndex:    IndexGrid,
		TicksPerSecond:   60,
	}
}

var compiledSchema = jsonschema.MustCompileString(schemaURL, schemaSource)

// LoadConfig reads a JSON or TOML file (chosen by extension), validates it
// against the embedded schema and overlays it on DefaultConfig.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(configFile)); ext {
	case ".json":
		return ParseConfig(b)
	case ".toml":
		return ParseTOMLConfig(b)
	default:
		return nil, fmt.Errorf("%w: unsupported config extension %q (want .json or .toml)", ErrInvalidConfig, ext)
	}
}

// ParseTOMLConfig converts a TOML document to its JSON equivalent so both
// formats go through the same schema.
func ParseTOMLConfig(b []byte) (*Config, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config toml: %w", err)
	}
	jb, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config toml: %w", err)
	}
	return ParseConfig(jb)
}

// ParseConfig validates a JSON document and overlays it on DefaultConfig.
func ParseConfig(b []byte) (*Config, error) {
	if err := validateDocument(b); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate applies the schema to an in-memory config, for instance after
// command line flags changed it.
func (c *Config) Validate() error {
	b, err := json.Marshal(c)
	if err != nil {
		// NaN and Inf cannot be marshaled
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return validateDocument(b)
}

func validateDocument(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: config validation failed: %w", ErrInvalidConfig, err)
	}
	return nil
}

// WriteTOML dumps the configuration, handy as a starting point for a file.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// World is the torus the flock lives on.
func (c *Config) World() geometry.World {
	return geometry.World{Width: c.WorldWidth, Height: c.WorldHeight}
}

// TickParameters builds the per tick snapshot of the flocking settings.
func (c *Config) TickParameters() behavior.TickParameters {
	return behavior.TickParameters{
		Radius:     c.PerceptionRadius,
		Separation: c.Separation,
		Alignment:  c.Alignment,
		Cohesion:   c.Cohesion,
		Speed:      c.BaseSpeed,
	}
}

// Repulsion returns the fear field constants.
func (c *Config) Repulsion() behavior.RepulsionSettings {
	return behavior.RepulsionSettings{
		Radius:    c.FearRadius,
		Decay:     c.FearDecay,
		Threshold: c.FearThreshold,
	}
}

// NewFlock builds an empty kernel configured from c. Call Reset to populate it.
func (c *Config) NewFlock() (*behavior.Flock, error) {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := []behavior.Option{
		behavior.WithWorkers(workers),
		behavior.WithSpeedVariation(c.SpeedVariation),
		behavior.WithRepulsion(c.Repulsion()),
	}
	if c.NeighborIndex == IndexGrid {
		opts = append(opts, behavior.WithNeighborFinder(behavior.NewGrid()))
	}
	if c.Seed != 0 {
		opts = append(opts, behavior.WithSeed(c.Seed))
	}
	return behavior.NewFlock(c.World(), opts...)
}
