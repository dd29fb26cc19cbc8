package config

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputConfig holds settings related to what is printed.
type OutputConfig struct {
	// Perspective is the side the board is drawn from
	Perspective chess.Colour

	// EchoBoard prints the board after every accepted move
	EchoBoard bool

	// EchoFEN prints the FEN string after every accepted move
	EchoFEN bool

	// JSONFormat writes finished games as JSON instead of movetext
	JSONFormat bool

	// MaxLineLength wraps movetext output
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Perspective:   chess.White,
		MaxLineLength: 80,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if !o.Perspective.Valid() {
		return errors.Wrapf(errors.ErrInvalidConfig, "perspective %d is not a colour", int(o.Perspective))
	}
	return nil
}
