package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"contractintake/services"
	"contractintake/templates"
)

// HandleContractPDF serves a generated contract inline for the preview
// iframe and for opening in a new tab. Released handles have nothing to
// serve.
func HandleContractPDF(store *services.ArtifactStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		handle := e.Request.PathValue("handle")
		pdf, ok := store.Get(handle)
		if !ok {
			return e.String(http.StatusNotFound, "Contract not found")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", `inline; filename="contract.pdf"`)
		e.Response.Write(pdf)
		return nil
	}
}

// HandleContractDismiss releases the artifact handle and swaps the preview
// area back to its empty placeholder.
func HandleContractDismiss(store *services.ArtifactStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		store.Release(e.Request.PathValue("handle"))
		return templates.ContractPreview("").Render(e.Request.Context(), e.Response)
	}
}
