package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps page content in the HTML shell: head, HTMX, toast listener
// and the navigation bar.
func Layout(title string, header HeaderData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s - Closets By Design</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/app.css"/>
</head>
<body>
<div id="toast" class="toast" hidden></div>
<script>
document.body.addEventListener("showToast", function (evt) {
  var t = document.getElementById("toast");
  t.textContent = evt.detail.message;
  t.className = "toast toast-" + evt.detail.type;
  t.hidden = false;
  setTimeout(function () { t.hidden = true; }, 5000);
});
(function () {
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = "flash_toast=; Max-Age=0; path=/";
  try {
    var data = JSON.parse(decodeURIComponent(m[1]));
    var t = document.getElementById("toast");
    t.textContent = data.message;
    t.className = "toast toast-" + data.type;
    t.hidden = false;
    setTimeout(function () { t.hidden = true; }, 5000);
  } catch (e) {}
})();
</script>
`, templ.EscapeString(title)); err != nil {
			return err
		}

		if err := NavBar(header).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

// NavBar renders the top application bar with the logout action.
func NavBar(header HeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="appbar"><span class="appbar-title">Closets By Design</span>`); err != nil {
			return err
		}
		if header.User != nil {
			if _, err := fmt.Fprintf(w,
				`<nav class="appbar-nav"><a href="/intake">Intake</a><a href="/submissions">Submissions</a></nav>`+
					`<span class="appbar-user">%s</span>`+
					`<form method="post" action="/logout" class="appbar-logout"><button type="submit" class="btn btn-danger">Logout</button></form>`,
				templ.EscapeString(header.User.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</header>`)
		return err
	})
}
