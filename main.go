package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"contractintake/collections"
	"contractintake/handlers"
	"contractintake/services"
)

func main() {
	app := pocketbase.New()

	artifacts := services.NewArtifactStore()
	filters := services.NewFilterClient(os.Getenv("INTAKE_FILTER_API"))

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateSubmissionStatuses(app); err != nil {
			log.Printf("Warning: submission status migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Session resolution + login redirect, applied globally
		se.Router.BindFunc(handlers.SessionMiddleware(app))

		// ── Authentication ───────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage(app))
		se.Router.POST("/login", handlers.HandleLogin(app))
		se.Router.POST("/logout", handlers.HandleLogout(app, artifacts))

		// ── Intake form ──────────────────────────────────────────
		se.Router.GET("/intake", handlers.HandleIntakeForm(app, artifacts))
		se.Router.POST("/intake/refresh", handlers.HandleIntakeRefresh(app, artifacts))
		se.Router.POST("/intake/submit", handlers.HandleIntakeSubmit(app, artifacts, filters))

		// ── Contract artifacts ───────────────────────────────────
		se.Router.GET("/contracts/{handle}/pdf", handlers.HandleContractPDF(artifacts))
		se.Router.DELETE("/contracts/{handle}", handlers.HandleContractDismiss(artifacts))

		// ── Submissions register ─────────────────────────────────
		se.Router.GET("/submissions", handlers.HandleSubmissionList(app))
		se.Router.GET("/submissions/export/excel", handlers.HandleSubmissionsExportExcel(app))

		// Redirect home to the intake form
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/intake")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
