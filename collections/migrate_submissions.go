package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateSubmissionStatuses backfills the status field on submissions saved
// before the status column existed. Rows without a status are treated as
// successfully saved, since generation only ever followed a successful save.
func MigrateSubmissionStatuses(app *pocketbase.PocketBase) error {
	subsCol, err := app.FindCollectionByNameOrId("submissions")
	if err != nil {
		return fmt.Errorf("migrate: could not find submissions collection: %w", err)
	}

	records, err := app.FindAllRecords(subsCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query submissions: %w", err)
	}

	migrated := 0
	for _, rec := range records {
		if rec.GetString("status") != "" {
			continue
		}
		rec.Set("status", "saved")
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("migrate: could not update submission %s: %w", rec.Id, err)
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: backfilled status on %d submission(s)", migrated)
	}
	return nil
}
