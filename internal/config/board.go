package config

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BoardConfig selects the starting position.
type BoardConfig struct {
	// Preset names a built-in starting state ("default" or "empty")
	Preset string

	// FEN, when set, overrides Preset
	FEN string
}

// NewBoardConfig creates a BoardConfig for the standard starting position.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{Preset: engine.PresetDefault}
}

// Validate checks that exactly one known starting position is selected.
func (b *BoardConfig) Validate() error {
	if b.FEN != "" {
		if b.Preset != "" && b.Preset != engine.PresetDefault {
			return errors.Wrapf(errors.ErrInvalidConfig, "both preset %q and a FEN given", b.Preset)
		}
		return nil
	}
	if _, err := engine.Preset(b.Preset); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "%v", err)
	}
	return nil
}

// NewBoard builds the configured starting position.
func (b *BoardConfig) NewBoard() (*engine.Board, error) {
	if b.FEN != "" {
		return engine.NewBoardFromFEN(b.FEN)
	}
	return engine.NewBoardFromPreset(b.Preset)
}
