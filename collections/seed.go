package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"
)

type portalUserDef struct {
	email    string
	name     string
	password string
}

// defaultPortalUsers are created on first boot so the login screen is usable
// out of the box. Passwords should be rotated before any real deployment.
var defaultPortalUsers = []portalUserDef{
	{email: "designer@closetsbydesign.test", name: "Demo Designer", password: "changeme"},
}

// Seed inserts the default portal users. It is idempotent: if any portal
// user already exists, nothing is written.
func Seed(app *pocketbase.PocketBase) error {
	usersCol, err := app.FindCollectionByNameOrId("portal_users")
	if err != nil {
		return fmt.Errorf("seed: could not find portal_users collection: %w", err)
	}
	existing, err := app.FindAllRecords(usersCol)
	if err != nil {
		return fmt.Errorf("seed: could not query portal_users: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: portal_users collection is empty – inserting seed data …")

	for _, def := range defaultPortalUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(def.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: could not hash password for %s: %w", def.email, err)
		}

		record := core.NewRecord(usersCol)
		record.Set("email", def.email)
		record.Set("name", def.name)
		record.Set("password_hash", string(hash))

		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save portal user %s: %w", def.email, err)
		}
	}

	return nil
}
