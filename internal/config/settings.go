// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings — параметры запуска, которые можно переопределить через окружение или .env
type Settings struct {
	Seed        int64  // 0 — сид от текущего времени
	LevelFile   string // Пусто — встроенный уровень
	WindowScale int
	PprofAddr   string // Пусто — профилировщик выключен
	StartInMenu bool
	LogLevel    string
	LogFormat   string
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		WindowScale: WindowScale,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load читает .env-файлы (если есть) и переменные окружения.
// Отсутствующий .env ошибкой не считается.
func Load(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv собирает настройки через функцию поиска переменных.
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s := DefaultSettings()

	if v, ok := lookup("GAME_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid GAME_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}
	if v, ok := lookup("GAME_LEVEL_FILE"); ok {
		s.LevelFile = strings.TrimSpace(v)
	}
	if v, ok := lookup("GAME_WINDOW_SCALE"); ok && v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid GAME_WINDOW_SCALE %q: %w", v, err)
		}
		if scale < 1 {
			return Settings{}, fmt.Errorf("invalid GAME_WINDOW_SCALE %q: must be at least 1", v)
		}
		s.WindowScale = scale
	}
	if v, ok := lookup("GAME_PPROF_ADDR"); ok {
		s.PprofAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup("GAME_START_IN_MENU"); ok && v != "" {
		menu, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid GAME_START_IN_MENU %q: %w", v, err)
		}
		s.StartInMenu = menu
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		s.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		s.LogFormat = strings.ToLower(v)
	}
	return s, nil
}
