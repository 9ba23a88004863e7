package app

import (
	"os"
	"testing"

	"go-coin-rush/pkg/logger"
)

func TestMain(m *testing.M) {
	// Глобальный логгер до запуска тестов
	logger.Init("warn", "text")

	os.Exit(m.Run())
}
