package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginPage renders the full login screen.
func LoginPage(data LoginData) templ.Component {
	return Layout("Sign In", HeaderData{}, LoginContent(data))
}

// LoginContent renders the login card.
func LoginContent(data LoginData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="card login-card"><h2>Sign In</h2>`); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error">%s</p>`, templ.EscapeString(data.Error)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="/login">
<label for="email">Email</label>
<input type="email" id="email" name="email" value="%s" required/>
<label for="password">Password</label>
<input type="password" id="password" name="password" required/>
<button type="submit" class="btn btn-primary">Sign In</button>
</form></div>`, templ.EscapeString(data.Email))
		return err
	})
}
