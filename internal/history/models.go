// Package history persists a local (or shared libsql) audit trail of
// translation runs: which source file, whether it succeeded, and what
// diagnostics were produced.
package history

import (
	"time"

	"gorm.io/datatypes"
)

// Run records the outcome of a single `addaat <file>` invocation.
type Run struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	SourcePath string `gorm:"type:text;index;not null"`
	OutputPath string `gorm:"type:text"`

	// Success is true when the translator produced a `.c` file.
	Success bool `gorm:"not null"`

	// DurationMs is the wall-clock time spent parsing plus emitting.
	DurationMs int64 `gorm:"not null"`

	// Diagnostics stores the plain-text diagnostic lines emitted during
	// this run (empty on success), as JSON so a shared history DB stays
	// queryable without a fixed column count.
	Diagnostics datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// TableName keeps the schema name stable across gorm's pluralization rules.
func (Run) TableName() string { return "runs" }
