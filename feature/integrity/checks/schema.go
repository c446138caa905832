package checks

import (
	"fmt"

	"flat-monitor/core/database"
	"flat-monitor/feature/flats/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of a schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Columns        int      `json:"columns"`
}

// CheckSchema compares the flats table with the columns the repository expects.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	table := models.Flat{}.TableName()
	columns, err := database.GetTableColumns(db, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	missing, err := database.MissingColumns(db, table, models.TrackedColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to compare columns of %s: %w", table, err)
	}
	if missing == nil {
		missing = []string{}
	}

	report := &SchemaReport{Table: table, Columns: len(columns), MissingColumns: missing}
	report.Matched = len(report.MissingColumns) == 0
	return report, nil
}
