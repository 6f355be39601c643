package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"contractintake/templates"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withSession attaches a signed-in session to the request context, the way
// SessionMiddleware would.
func withSession(req *http.Request, sessionID string, user templates.CurrentUser) *http.Request {
	session := &Session{ID: sessionID, User: user}
	ctx := context.WithValue(req.Context(), SessionKey, session)
	ctx = context.WithValue(ctx, HeaderDataKey, templates.HeaderData{User: &session.User})
	return req.WithContext(ctx)
}
