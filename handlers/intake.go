package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"contractintake/services"
	"contractintake/templates"
)

// buildIntakeData derives everything the form template needs from a snapshot.
func buildIntakeData(state services.FormState, contractHandle string) templates.IntakeData {
	return templates.IntakeData{
		State:          state,
		Errors:         services.FieldErrors(state),
		Sections:       services.Sections(state),
		Visibility:     services.DeriveVisibility(state),
		ContractHandle: contractHandle,
	}
}

func renderIntake(e *core.RequestEvent, data templates.IntakeData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.IntakeContent(data)
	} else {
		component = templates.IntakePage(data, GetHeaderData(e.Request))
	}
	return component.Render(e.Request.Context(), e.Response)
}

// HandleIntakeForm renders a fresh intake form. Draft state is not
// persisted; every mount starts empty.
func HandleIntakeForm(app *pocketbase.PocketBase, store *services.ArtifactStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		state := services.NewFormState()

		handle := ""
		if session := GetSession(e.Request); session != nil {
			handle, _ = store.Handle(session.ID)
		}

		return renderIntake(e, buildIntakeData(state, handle))
	}
}

// HandleIntakeRefresh recomputes validity, visibility and cascade state from
// the posted snapshot after a field edit and re-renders the form fragment.
// The triggering field is marked touched so its error (if any) shows.
func HandleIntakeRefresh(app *pocketbase.PocketBase, store *services.ArtifactStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		state := services.DecodeFormState(e.Request.PostForm)
		state.Touch(e.Request.Header.Get("HX-Trigger-Name"))
		state.Normalize()

		handle := ""
		if session := GetSession(e.Request); session != nil {
			handle, _ = store.Handle(session.ID)
		}

		return renderIntake(e, buildIntakeData(state, handle))
	}
}

// HandleIntakeSubmit runs the submit gate over the posted snapshot. On the
// first incomplete section it re-renders with all errors visible and a
// blocking notice. Otherwise it persists the submission, posts the filter
// payload to the external API, and only then generates the contract PDF and
// exposes its artifact handle.
func HandleIntakeSubmit(app *pocketbase.PocketBase, store *services.ArtifactStore, filters *services.FilterClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		state := services.DecodeFormState(e.Request.PostForm)
		state.Normalize()
		state.TouchAll()

		if msg, ok := services.FirstIncompleteSection(state); !ok {
			SetToast(e, "warning", msg)
			return renderIntake(e, buildIntakeData(state, ""))
		}

		session := GetSession(e.Request)

		record, err := saveSubmission(app, state, session)
		if err != nil {
			log.Printf("intake: could not save submission: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if filters.Enabled() {
			payload := services.FilterPayload{
				JobID:      state.JobID,
				ClientName: state.ClientName,
			}
			if session != nil {
				userID := session.User.ID
				payload.UserID = &userID
			}
			if err := filters.SaveFilter(e.Request.Context(), payload); err != nil {
				log.Printf("intake: savefilter call failed: %v", err)
				record.Set("status", "failed")
				if err := app.Save(record); err != nil {
					log.Printf("intake: could not mark submission failed: %v", err)
				}
				SetToast(e, "error", "Could not save the submission. The contract was not generated.")
				return renderIntake(e, buildIntakeData(state, ""))
			}
		}

		pdf, err := services.GenerateContractPDF(services.BuildContractData(state, time.Now()))
		if err != nil {
			log.Printf("intake: could not generate contract PDF: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate the contract document.")
		}

		handle := ""
		if session != nil {
			handle = store.Put(session.ID, pdf)
		}

		SetToast(e, "success", "Contract generated")
		return renderIntake(e, buildIntakeData(state, handle))
	}
}

func saveSubmission(app *pocketbase.PocketBase, state services.FormState, session *Session) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("submissions")
	if err != nil {
		return nil, err
	}

	record := core.NewRecord(col)
	if session != nil {
		record.Set("user", session.User.ID)
	}
	record.Set("job_id", state.JobID)
	record.Set("client_name", state.ClientName)
	record.Set("designer_name", state.DesignerName)
	record.Set("install_location", state.InstallLocation)
	record.Set("collection", state.Collection)
	record.Set("color", state.Color)
	record.Set("status", "saved")
	setDecoFields(record, "door", state.Door)
	setDecoFields(record, "drawer", state.Drawer)

	if err := app.Save(record); err != nil {
		return nil, err
	}
	return record, nil
}

func setDecoFields(record *core.Record, prefix string, d services.DecoSelection) {
	record.Set(prefix+"_enabled", d.Enabled)
	if !d.Enabled {
		return
	}
	record.Set(prefix+"_quantity", d.Quantity)
	record.Set(prefix+"_deco_style", d.Style)
	record.Set(prefix+"_series", d.Series)
	record.Set(prefix+"_variant", d.Variant)
}
