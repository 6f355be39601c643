package collections_test

import (
	"testing"

	"contractintake/collections"
	"contractintake/testhelpers"
)

func TestSetup_CreatesCollections(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	for _, name := range []string{"portal_users", "sessions", "submissions"} {
		if _, err := app.FindCollectionByNameOrId(name); err != nil {
			t.Errorf("collection %s not found: %v", name, err)
		}
	}
}

func TestSetup_SubmissionFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("submissions")
	if err != nil {
		t.Fatalf("submissions collection not found: %v", err)
	}

	fields := []string{
		"job_id", "client_name", "designer_name", "install_location",
		"collection", "color",
		"door_enabled", "door_quantity", "door_deco_style", "door_series", "door_variant",
		"drawer_enabled", "drawer_quantity", "drawer_deco_style", "drawer_series", "drawer_variant",
		"status", "user", "created",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("submissions is missing field %s", f)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// NewTestApp already ran Setup once; a second run must not fail or
	// duplicate anything.
	collections.Setup(app)

	cols, err := app.FindAllCollections()
	if err != nil {
		t.Fatalf("failed to list collections: %v", err)
	}

	seen := map[string]int{}
	for _, c := range cols {
		seen[c.Name]++
	}
	for _, name := range []string{"portal_users", "sessions", "submissions"} {
		if seen[name] != 1 {
			t.Errorf("expected exactly one %s collection, got %d", name, seen[name])
		}
	}
}
