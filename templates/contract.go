package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ContractPreview renders the inline preview for a generated contract, with
// actions to open it in a new tab or dismiss (release) it. With an empty
// handle it renders just the placeholder container, which doubles as the
// swap target after dismissal.
func ContractPreview(handle string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if handle == "" {
			_, err := io.WriteString(w, `<div id="contract-preview"></div>`)
			return err
		}

		h := templ.EscapeString(handle)
		_, err := fmt.Fprintf(w,
			`<div id="contract-preview" class="card">`+
				`<h3>Contract Preview</h3>`+
				`<iframe src="/contracts/%s/pdf" title="Contract Preview" class="pdf-frame"></iframe>`+
				`<div class="actions">`+
				`<a href="/contracts/%s/pdf" target="_blank" class="btn">Open PDF</a>`+
				`<button type="button" class="btn" hx-delete="/contracts/%s" hx-target="#contract-preview" hx-swap="outerHTML">Dismiss</button>`+
				`</div></div>`,
			h, h, h)
		return err
	})
}
