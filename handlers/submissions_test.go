package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contractintake/testhelpers"
)

func TestHandleSubmissionList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSubmission(t, app, "100200", "Jane Doe")
	testhelpers.CreateTestSubmission(t, app, "100201", "Bob Ray")

	handler := HandleSubmissionList(app)

	req := httptest.NewRequest(http.MethodGet, "/submissions", nil)
	req = withSession(req, "sess1", testUser())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"100200", "Jane Doe",
		"100201", "Bob Ray",
		"saved",
	)
}

func TestHandleSubmissionList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleSubmissionList(app)

	req := httptest.NewRequest(http.MethodGet, "/submissions", nil)
	req = withSession(req, "sess1", testUser())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No submissions yet")
}

func TestHandleSubmissionsExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestSubmission(t, app, "100200", "Jane Doe")

	handler := HandleSubmissionsExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/submissions/export/excel", nil)
	req = withSession(req, "sess1", testUser())
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}
	body := rec.Body.Bytes()
	if len(body) < 2 || string(body[:2]) != "PK" {
		t.Error("response does not look like an xlsx file")
	}
}
