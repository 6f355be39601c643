// Package templates renders the intake screens as templ components. The
// components are written directly against the templ runtime so the view
// layer stays plain Go.
package templates

import "contractintake/services"

// CurrentUser identifies the signed-in portal user for the header and the
// savefilter payload.
type CurrentUser struct {
	ID    string
	Name  string
	Email string
}

// HeaderData drives the navigation bar.
type HeaderData struct {
	User *CurrentUser
}

// LoginData drives the login screen.
type LoginData struct {
	Email string
	Error string
}

// IntakeData drives the intake form, including the derived section and
// visibility state and the (unfiltered) field error map. Error display is
// gated by the snapshot's touched set at render time.
type IntakeData struct {
	State      services.FormState
	Errors     map[string]string
	Sections   services.SectionStatus
	Visibility services.Visibility

	// ContractHandle, when set, renders the inline contract preview for the
	// most recent successful submit.
	ContractHandle string
}

// FieldError returns the error text for a field, or "" when the field has
// not been touched yet. Validation itself never consults touched state.
func (d IntakeData) FieldError(field string) string {
	if !d.State.Touched[field] {
		return ""
	}
	return d.Errors[field]
}

// SubmissionItem is one row of the submissions register page.
type SubmissionItem struct {
	ID              string
	JobID           string
	ClientName      string
	DesignerName    string
	InstallLocation string
	Collection      string
	Color           string
	Door            string
	Drawer          string
	Status          string
	Created         string
}

// SubmissionListData drives the submissions register page.
type SubmissionListData struct {
	Submissions []SubmissionItem
}
