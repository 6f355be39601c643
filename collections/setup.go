package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the portal_users, sessions and
// submissions collections exist.
func Setup(app *pocketbase.PocketBase) {
	portalUsers := ensureCollection(app, "portal_users", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: false})
		c.Fields.Add(&core.TextField{Name: "password_hash", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "sessions", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "user",
			Required:      true,
			CollectionId:  portalUsers.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "submissions", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "user",
			Required:     false,
			CollectionId: portalUsers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "job_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "designer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "install_location", Required: true})
		c.Fields.Add(&core.TextField{Name: "collection", Required: true})
		c.Fields.Add(&core.TextField{Name: "color", Required: true})
		c.Fields.Add(&core.BoolField{Name: "door_enabled"})
		c.Fields.Add(&core.TextField{Name: "door_quantity", Required: false})
		c.Fields.Add(&core.TextField{Name: "door_deco_style", Required: false})
		c.Fields.Add(&core.TextField{Name: "door_series", Required: false})
		c.Fields.Add(&core.TextField{Name: "door_variant", Required: false})
		c.Fields.Add(&core.BoolField{Name: "drawer_enabled"})
		c.Fields.Add(&core.TextField{Name: "drawer_quantity", Required: false})
		c.Fields.Add(&core.TextField{Name: "drawer_deco_style", Required: false})
		c.Fields.Add(&core.TextField{Name: "drawer_series", Required: false})
		c.Fields.Add(&core.TextField{Name: "drawer_variant", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"saved", "failed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
