// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"

	"contractintake/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestUser creates a portal user with a bcrypt-hashed password.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, email, name, password string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("portal_users")
	if err != nil {
		t.Fatalf("failed to find portal_users collection: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("email", email)
	record.Set("name", name)
	record.Set("password_hash", string(hash))

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// CreateTestSession creates a session record for a portal user.
func CreateTestSession(t *testing.T, app *pocketbase.PocketBase, userID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("sessions")
	if err != nil {
		t.Fatalf("failed to find sessions collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("user", userID)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test session: %v", err)
	}

	return record
}

// CreateTestSubmission creates a minimal saved submission record.
func CreateTestSubmission(t *testing.T, app *pocketbase.PocketBase, jobID, clientName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("submissions")
	if err != nil {
		t.Fatalf("failed to find submissions collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("job_id", jobID)
	record.Set("client_name", clientName)
	record.Set("designer_name", "Test Designer")
	record.Set("install_location", "Unit 1")
	record.Set("collection", "Classic")
	record.Set("color", "White")
	record.Set("status", "saved")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test submission: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML to not contain %q, but it was found", frag)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
