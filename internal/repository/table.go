// internal/repository/table.go
package repository

import (
	"context"
	"fmt"
	"slices"

	"campus-roster/internal/util"
	"campus-roster/pkg/db"
)

// Tables lists the tables of the schema.
func Tables() []string {
	return []string{"student", "course", "student_course"}
}

// ValidateTable rejects names outside the schema; table names cannot be
// bound as parameters.
func ValidateTable(table string) error {
	if !slices.Contains(Tables(), table) {
		return fmt.Errorf("%w: %q", util.ErrUnknownTable, table)
	}
	return nil
}

// CountRows leaves a single row holding the number of rows in table.
func CountRows(table string) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		if err := ValidateTable(table); err != nil {
			return err
		}
		return tx.Query(ctx, "SELECT COUNT(*) FROM "+table)
	}
}

// DumpTable selects every row of table ordered by id.
func DumpTable(table string) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		if err := ValidateTable(table); err != nil {
			return err
		}
		return tx.Query(ctx, "SELECT * FROM "+table+" ORDER BY id")
	}
}
