package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useLogPath(t *testing.T, path string) {
	t.Helper()
	prev := flagLogPath
	flagLogPath = path
	t.Cleanup(func() { flagLogPath = prev })
}

func TestPlayUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domino.log")
	useLogPath(t, path)

	err := play("tetris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mode "tetris"`)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "log file is not opened for an unknown mode")
}

func TestPlayLogFileError(t *testing.T) {
	useLogPath(t, filepath.Join(t.TempDir(), "missing", "domino.log"))

	err := play("domino")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestNewLoggerWritesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domino.log")
	useLogPath(t, path)

	logger, closeLog, err := newLogger(os.Stderr)
	require.NoError(t, err)
	logger.Info("game over", "score", 120)
	closeLog()
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game over")
	assert.Contains(t, string(data), "score=120")
}
