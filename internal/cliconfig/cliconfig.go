// Package cliconfig resolves the run-time toggles listed in §6
// (printTrees, printColoredTrees, colorizeCode, performErrorCheckingTests,
// performRegularTests, historyDB) from, in increasing precedence: a .env
// file, the process environment, and CLI flags bound by cmd/addaat.
package cliconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the resolved set of toggles for one run.
type Config struct {
	PrintTrees                bool
	PrintColoredTrees         bool
	ColorizeCode              bool
	PerformErrorCheckingTests bool
	PerformRegularTests       bool

	// HistoryDB is a history.Connect dsn (a filesystem path, or a
	// "libsql://" URL for a shared remote store). Empty means no run
	// history is recorded.
	HistoryDB string
}

// Load reads a .env file if present (ignoring a missing file, same as the
// teacher's main does) and returns a Config seeded from the environment.
// CLI flags are expected to override the returned fields afterward.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		PrintTrees:                envBool("ADDAAT_PRINT_TREES", false),
		PrintColoredTrees:         envBool("ADDAAT_PRINT_COLORED_TREES", true),
		ColorizeCode:              envBool("ADDAAT_COLORIZE_CODE", false),
		PerformErrorCheckingTests: envBool("ADDAAT_ERROR_CHECKING_TESTS", false),
		PerformRegularTests:       envBool("ADDAAT_REGULAR_TESTS", false),
		HistoryDB:                 os.Getenv("ADDAAT_HISTORY_DB"),
	}
}

func envBool(name string, fallback bool) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
