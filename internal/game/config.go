package game

import (
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minefield/internal/engine"
	"github.com/samdwyer/minefield/internal/gamedata"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Preset names a board size from presets.json. Empty means the default preset.
	Preset string
	// Rows, Columns and Bombs override the preset when non-zero.
	Rows    int
	Columns int
	Bombs   int
	// Tracer is used for game and engine spans. Nil means the global provider.
	Tracer trace.Tracer
}

// Board resolves the preset and overrides into engine dimensions.
// Range checks are left to the engine.
func (c Config) Board(presets *gamedata.PresetRegistry) (engine.Config, error) {
	var p *gamedata.PresetDef
	if c.Preset == "" {
		p = presets.Default()
	} else {
		p = presets.GetByID(c.Preset)
	}
	if p == nil {
		return engine.Config{}, fmt.Errorf("unknown preset %q (available: %v)", c.Preset, presets.IDs())
	}

	cfg := engine.Config{Rows: p.Rows, Columns: p.Columns, Bombs: p.Bombs}
	if c.Rows != 0 {
		cfg.Rows = c.Rows
	}
	if c.Columns != 0 {
		cfg.Columns = c.Columns
	}
	if c.Bombs != 0 {
		cfg.Bombs = c.Bombs
	}
	return cfg, nil
}
