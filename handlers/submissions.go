package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"contractintake/services"
	"contractintake/templates"
)

func fetchSubmissions(app *pocketbase.PocketBase) ([]*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("submissions")
	if err != nil {
		return nil, fmt.Errorf("collection not found: %w", err)
	}
	return app.FindRecordsByFilter(col, "id != ''", "-created", 0, 0)
}

func decoFromRecord(rec *core.Record, prefix string) services.DecoSelection {
	return services.DecoSelection{
		Enabled:  rec.GetBool(prefix + "_enabled"),
		Quantity: rec.GetString(prefix + "_quantity"),
		Style:    rec.GetString(prefix + "_deco_style"),
		Series:   rec.GetString(prefix + "_series"),
		Variant:  rec.GetString(prefix + "_variant"),
	}
}

// HandleSubmissionList renders the submissions register, newest first.
func HandleSubmissionList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := fetchSubmissions(app)
		if err != nil {
			log.Printf("submissions: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load submissions")
		}

		var items []templates.SubmissionItem
		for _, rec := range records {
			items = append(items, templates.SubmissionItem{
				ID:              rec.Id,
				JobID:           rec.GetString("job_id"),
				ClientName:      rec.GetString("client_name"),
				DesignerName:    rec.GetString("designer_name"),
				InstallLocation: rec.GetString("install_location"),
				Collection:      rec.GetString("collection"),
				Color:           rec.GetString("color"),
				Door:            services.DecoSummary(decoFromRecord(rec, "door")),
				Drawer:          services.DecoSummary(decoFromRecord(rec, "drawer")),
				Status:          rec.GetString("status"),
				Created:         rec.GetDateTime("created").Time().Format("2006-01-02 15:04"),
			})
		}

		data := templates.SubmissionListData{Submissions: items}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.SubmissionListContent(data)
		} else {
			component = templates.SubmissionListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleSubmissionsExportExcel generates and downloads the submissions
// register as an Excel workbook.
func HandleSubmissionsExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := fetchSubmissions(app)
		if err != nil {
			log.Printf("submissions_export: %v", err)
			return e.String(http.StatusInternalServerError, "Could not load submissions")
		}

		var rows []services.SubmissionRow
		for _, rec := range records {
			rows = append(rows, services.SubmissionRow{
				JobID:           rec.GetString("job_id"),
				ClientName:      rec.GetString("client_name"),
				DesignerName:    rec.GetString("designer_name"),
				InstallLocation: rec.GetString("install_location"),
				Collection:      rec.GetString("collection"),
				Color:           rec.GetString("color"),
				Door:            services.DecoSummary(decoFromRecord(rec, "door")),
				Drawer:          services.DecoSummary(decoFromRecord(rec, "drawer")),
				Status:          rec.GetString("status"),
				Submitted:       rec.GetDateTime("created").Time().Format("2006-01-02"),
			})
		}

		xlsxBytes, err := services.GenerateSubmissionsExcel(rows)
		if err != nil {
			log.Printf("submissions_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Submissions_%d.xlsx", time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
