package history

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	glebarezsqlite "github.com/glebarez/sqlite"
	libsql "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps a gorm handle over the run-history schema.
type Store struct {
	db *gorm.DB
}

// Connect opens (and migrates) a history store. dsn is either a filesystem
// path, in which case a local pure-Go SQLite file is opened, or a
// "libsql://" URL, in which case a remote libsql replica is dialed — the
// same branch db.Connect used for morfx's MCP session store.
func Connect(dsn string, debug bool) (*Store, error) {
	if !isRemoteURL(dsn) {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create history directory: %w", err)
			}
		}
	}

	gcfg := &gorm.Config{}
	if debug {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		dialector gorm.Dialector
		conn      *sql.DB
	)
	if isRemoteURL(dsn) {
		var (
			connector driver.Connector
			err       error
		)
		if token := os.Getenv("ADDAAT_LIBSQL_AUTH_TOKEN"); token != "" {
			connector, err = libsql.NewConnector(dsn, libsql.WithAuthToken(token))
		} else {
			connector, err = libsql.NewConnector(dsn)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create libsql connector: %w", err)
		}
		conn = sql.OpenDB(connector)
		dialector = sqlite.New(sqlite.Config{
			DriverName: "libsql",
			Conn:       conn,
			DSN:        dsn,
		})
	} else {
		// Local file: the pure-Go glebarez driver avoids a cgo dependency
		// for the common case of a history DB on the developer's machine.
		dialector = glebarezsqlite.Open(dsn)
	}

	gdb, err := gorm.Open(dialector, gcfg)
	if err != nil {
		if conn != nil {
			conn.Close()
		}
		return nil, fmt.Errorf("failed to connect to history store: %w", err)
	}

	if err := gdb.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("history migration failed: %w", err)
	}

	return &Store{db: gdb}, nil
}

func isRemoteURL(dsn string) bool {
	return strings.HasPrefix(dsn, "http://") ||
		strings.HasPrefix(dsn, "https://") ||
		strings.HasPrefix(dsn, "libsql://")
}

// RecordRun appends a Run row for one translation attempt.
func (s *Store) RecordRun(sourcePath, outputPath string, success bool, duration time.Duration, diagnostics []string) error {
	raw, err := json.Marshal(diagnostics)
	if err != nil {
		return fmt.Errorf("failed to marshal diagnostics: %w", err)
	}
	run := Run{
		SourcePath:  sourcePath,
		OutputPath:  outputPath,
		Success:     success,
		DurationMs:  duration.Milliseconds(),
		Diagnostics: datatypes.JSON(raw),
	}
	return s.db.Create(&run).Error
}

// RecentRuns returns the most recent n runs for a source path, newest first.
func (s *Store) RecentRuns(sourcePath string, n int) ([]Run, error) {
	var runs []Run
	err := s.db.Where("source_path = ?", sourcePath).
		Order("created_at desc").
		Limit(n).
		Find(&runs).Error
	return runs, err
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
