package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"

	"contractintake/services"
	"contractintake/templates"
)

const loginFailedMessage = "Invalid email or password"

// HandleLoginPage renders the login screen. Signed-in users are sent
// straight to the intake form.
func HandleLoginPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if GetSession(e.Request) != nil {
			return e.Redirect(http.StatusFound, "/intake")
		}
		return templates.LoginPage(templates.LoginData{}).Render(e.Request.Context(), e.Response)
	}
}

// HandleLogin checks the posted credentials against portal_users and opens a
// session on success.
func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		email := strings.TrimSpace(strings.ToLower(e.Request.FormValue("email")))
		password := e.Request.FormValue("password")

		users, err := app.FindRecordsByFilter(
			"portal_users",
			"email = {:email}",
			"", 1, 0,
			map[string]any{"email": email},
		)
		if err != nil || len(users) == 0 {
			return renderLoginError(e, email)
		}

		user := users[0]
		if err := bcrypt.CompareHashAndPassword([]byte(user.GetString("password_hash")), []byte(password)); err != nil {
			return renderLoginError(e, email)
		}

		sessionsCol, err := app.FindCollectionByNameOrId("sessions")
		if err != nil {
			log.Printf("login: could not find sessions collection: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		session := core.NewRecord(sessionsCol)
		session.Set("user", user.Id)
		if err := app.Save(session); err != nil {
			log.Printf("login: could not save session: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     SessionCookieName,
			Value:    session.Id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return e.Redirect(http.StatusFound, "/intake")
	}
}

func renderLoginError(e *core.RequestEvent, email string) error {
	e.Response.WriteHeader(http.StatusUnauthorized)
	data := templates.LoginData{Email: email, Error: loginFailedMessage}
	return templates.LoginPage(data).Render(e.Request.Context(), e.Response)
}

// HandleLogout deletes the session record, releases any contract artifact
// the session holds, clears all session state client-side and navigates to
// the root path.
func HandleLogout(app *pocketbase.PocketBase, store *services.ArtifactStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if session := GetSession(e.Request); session != nil {
			store.ReleaseSession(session.ID)
			if rec, err := app.FindRecordById("sessions", session.ID); err == nil {
				if err := app.Delete(rec); err != nil {
					log.Printf("logout: could not delete session %s: %v", session.ID, err)
				}
			}
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:   SessionCookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})

		return e.Redirect(http.StatusFound, "/")
	}
}
