package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// SubmissionListPage renders the submissions register.
func SubmissionListPage(data SubmissionListData, header HeaderData) templ.Component {
	return Layout("Submissions", header, SubmissionListContent(data))
}

// SubmissionListContent renders the register table and the Excel export link.
func SubmissionListContent(data SubmissionListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<div class="card"><div class="card-header"><h3>Submissions</h3>`+
				`<a href="/submissions/export/excel" class="btn">Export Excel</a></div>`); err != nil {
			return err
		}

		if len(data.Submissions) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No submissions yet.</p></div>`)
			return err
		}

		if _, err := io.WriteString(w,
			`<table class="table"><thead><tr>`+
				`<th>Job ID</th><th>Client</th><th>Designer</th><th>Location</th>`+
				`<th>Collection</th><th>Door</th><th>Drawer</th><th>Status</th><th>Submitted</th>`+
				`</tr></thead><tbody>`); err != nil {
			return err
		}

		for _, s := range data.Submissions {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s - %s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(s.JobID),
				templ.EscapeString(s.ClientName),
				templ.EscapeString(s.DesignerName),
				templ.EscapeString(s.InstallLocation),
				templ.EscapeString(s.Collection),
				templ.EscapeString(s.Color),
				templ.EscapeString(s.Door),
				templ.EscapeString(s.Drawer),
				templ.EscapeString(s.Status),
				templ.EscapeString(s.Created)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}
