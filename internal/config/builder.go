package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the diagnostic writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.SetOutput(w)
	return b
}

// WithPerspective sets the side the board is drawn from.
func (b *ConfigBuilder) WithPerspective(colour chess.Colour) *ConfigBuilder {
	b.cfg.Output.Perspective = colour
	return b
}

// WithPreset selects a named starting position.
func (b *ConfigBuilder) WithPreset(name string) *ConfigBuilder {
	b.cfg.Board.Preset = name
	return b
}

// WithFEN selects a starting position given in FEN.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Board.FEN = fen
	return b
}

// WithBoardEcho prints the board after every move.
func (b *ConfigBuilder) WithBoardEcho(enabled bool) *ConfigBuilder {
	b.cfg.Output.EchoBoard = enabled
	return b
}

// WithFENEcho prints the FEN string after every move.
func (b *ConfigBuilder) WithFENEcho(enabled bool) *ConfigBuilder {
	b.cfg.Output.EchoFEN = enabled
	return b
}

// WithJSON writes finished games as JSON.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithLineLength sets the movetext wrap column.
func (b *ConfigBuilder) WithLineLength(n uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = n
	return b
}
