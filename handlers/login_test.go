package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"contractintake/services"
	"contractintake/testhelpers"
)

func TestHandleLoginPage(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleLoginPage(app)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Sign In", `name="email"`, `name="password"`)
}

func TestHandleLoginPage_RedirectsWhenSignedIn(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleLoginPage(app)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req = withSession(req, "sess1", testUser())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/intake" {
		t.Errorf("expected redirect to /intake, got %q", loc)
	}
}

func TestHandleLogin_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "designer@closetsbydesign.test", "Demo Designer", "secret123")

	handler := HandleLogin(app)

	values := url.Values{}
	values.Set("email", "Designer@ClosetsByDesign.test") // case-insensitive
	values.Set("password", "secret123")

	req := postForm("/login", values)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("expected a session cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	if _, err := app.FindRecordById("sessions", sessionCookie.Value); err != nil {
		t.Errorf("session record %s not found: %v", sessionCookie.Value, err)
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "designer@closetsbydesign.test", "Demo Designer", "secret123")

	handler := HandleLogin(app)

	values := url.Values{}
	values.Set("email", "designer@closetsbydesign.test")
	values.Set("password", "wrong")

	req := postForm("/login", values)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), loginFailedMessage)

	sessions, err := app.FindAllRecords("sessions")
	if err != nil {
		t.Fatalf("failed to query sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no session records, got %d", len(sessions))
	}
}

func TestHandleLogin_UnknownEmail(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleLogin(app)

	values := url.Values{}
	values.Set("email", "nobody@example.com")
	values.Set("password", "whatever")

	req := postForm("/login", values)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleLogout(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewArtifactStore()

	user := testhelpers.CreateTestUser(t, app, "designer@closetsbydesign.test", "Demo Designer", "secret123")
	session := testhelpers.CreateTestSession(t, app, user.Id)
	handle := store.Put(session.Id, []byte("%PDF-doc"))

	handler := HandleLogout(app, store)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req = withSession(req, session.Id, testUser())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected 302, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("sessions", session.Id); err == nil {
		t.Error("session record should be deleted")
	}
	if _, ok := store.Get(handle); ok {
		t.Error("logout must release the session's contract artifact")
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be cleared")
	}
}
