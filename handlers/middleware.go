package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"contractintake/templates"
)

type contextKey string

const SessionKey contextKey = "session"
const HeaderDataKey contextKey = "headerData"

// SessionCookieName is the cookie carrying the signed-in session record ID.
const SessionCookieName = "intake_session"

// Session is the signed-in state attached to the request context.
type Session struct {
	ID   string
	User templates.CurrentUser
}

// GetSession extracts the session from the request context, or nil when the
// request is unauthenticated.
func GetSession(r *http.Request) *Session {
	if val, ok := r.Context().Value(SessionKey).(*Session); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// SessionMiddleware resolves the session cookie into a portal user, stores
// session and header data in the request context, and redirects
// unauthenticated requests to the login screen. Login and static asset
// paths pass through unauthenticated.
func SessionMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var session *Session

		cookie, err := e.Request.Cookie(SessionCookieName)
		if err == nil && cookie.Value != "" {
			rec, err := app.FindRecordById("sessions", cookie.Value)
			if err == nil {
				user, err := app.FindRecordById("portal_users", rec.GetString("user"))
				if err == nil {
					session = &Session{
						ID: rec.Id,
						User: templates.CurrentUser{
							ID:    user.Id,
							Name:  user.GetString("name"),
							Email: user.GetString("email"),
						},
					}
				}
			}
			if session == nil {
				log.Printf("middleware: session %s not found, clearing cookie", cookie.Value)
				http.SetCookie(e.Response, &http.Cookie{
					Name:   SessionCookieName,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		headerData := templates.HeaderData{}
		if session != nil {
			headerData.User = &session.User
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, session)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		if session == nil && !publicPath(e.Request.URL.Path) {
			if e.Request.Header.Get("HX-Request") == "true" {
				e.Response.Header().Set("HX-Redirect", "/login")
				return e.String(http.StatusOK, "")
			}
			return e.Redirect(http.StatusFound, "/login")
		}

		return e.Next()
	}
}

func publicPath(path string) bool {
	return path == "/login" || strings.HasPrefix(path, "/static/")
}
