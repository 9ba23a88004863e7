// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"go-coin-rush/pkg/logger"

	"github.com/sirupsen/logrus"
)

//go:embed levels/default.json
var defaultLevelJSON []byte

// DefaultLevel parses the built-in level.
func DefaultLevel() (LevelDefinition, error) {
	return ParseLevel(defaultLevelJSON)
}

// LoadLevel reads a level file. An empty path falls back to the built-in level.
func LoadLevel(path string) (LevelDefinition, error) {
	if path == "" {
		return DefaultLevel()
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to read level file: %w", err)
	}
	level, err := ParseLevel(file)
	if err != nil {
		return LevelDefinition{}, fmt.Errorf("level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel unmarshals and validates a level definition.
func ParseLevel(data []byte) (LevelDefinition, error) {
	var level LevelDefinition
	if err := json.Unmarshal(data, &level); err != nil {
		return LevelDefinition{}, fmt.Errorf("failed to unmarshal level definition: %w", err)
	}
	if err := level.Validate(); err != nil {
		return LevelDefinition{}, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "defs",
		"level":     level.Name,
		"walls":     len(level.Walls),
		"enemies":   len(level.Enemies),
		"coins":     level.CoinCount,
	}).Info("Loaded level definition")
	return level, nil
}

// Validate checks every box of the level and the starting values.
func (l LevelDefinition) Validate() error {
	if err := l.Player.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if l.Player.Health <= 0 {
		return fmt.Errorf("player: health must be positive, got %d", l.Player.Health)
	}
	for i, w := range l.Walls {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
	}
	for i, e := range l.Enemies {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("enemy %d: %w", i, err)
		}
		if e.Speed < 0 {
			return fmt.Errorf("enemy %d: speed must not be negative, got %v", i, e.Speed)
		}
	}
	if l.CoinCount < 0 {
		return fmt.Errorf("coin_count must not be negative, got %d", l.CoinCount)
	}
	return nil
}
