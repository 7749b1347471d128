package cliconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{
		"ADDAAT_PRINT_TREES", "ADDAAT_PRINT_COLORED_TREES", "ADDAAT_COLORIZE_CODE",
		"ADDAAT_ERROR_CHECKING_TESTS", "ADDAAT_REGULAR_TESTS", "ADDAAT_HISTORY_DB",
	} {
		os.Unsetenv(name)
	}

	cfg := Load()
	assert.False(t, cfg.PrintTrees)
	assert.True(t, cfg.PrintColoredTrees)
	assert.False(t, cfg.ColorizeCode)
	assert.False(t, cfg.PerformErrorCheckingTests)
	assert.False(t, cfg.PerformRegularTests)
	assert.Empty(t, cfg.HistoryDB)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ADDAAT_PRINT_TREES", "true")
	t.Setenv("ADDAAT_COLORIZE_CODE", "1")
	t.Setenv("ADDAAT_HISTORY_DB", "/tmp/addaat-history.db")

	cfg := Load()
	assert.True(t, cfg.PrintTrees)
	assert.True(t, cfg.ColorizeCode)
	assert.Equal(t, "/tmp/addaat-history.db", cfg.HistoryDB)
}

func TestEnvBoolFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ADDAAT_TEST_BOOL", "not-a-bool")
	assert.True(t, envBool("ADDAAT_TEST_BOOL", true))
	assert.False(t, envBool("ADDAAT_UNSET_BOOL", false))
}
