package handler

import (
	"net/http"
	"testing"

	"github.com/TheShepherd03/Formify-Backend/internal/entity"
	"github.com/TheShepherd03/Formify-Backend/internal/testutil"
)

func seedSubmissionFixture(t *testing.T, env *testutil.TestEnv) {
	t.Helper()
	testutil.SeedTestUser(t, env.DB, "owner-001", "owner@test.com", false)
	testutil.SeedTestForm(t, env.DB, "form-001", "Survey", "owner-001")
	testutil.SeedTestField(t, env.DB, "field-name", "form-001", "Name", "text", true, 1)
	testutil.SeedTestField(t, env.DB, "field-note", "form-001", "Note", "text", false, 2)
}

func countRows(env *testutil.TestEnv, model interface{}) int64 {
	var count int64
	env.DB.Model(model).Count(&count)
	return count
}

func TestSubmitForm(t *testing.T) {
	env := setupAPITest(t)
	seedSubmissionFixture(t, env)

	// Anonymous submit, one answer deliberately the empty string
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/forms/form-001/submissions",
		map[string]interface{}{
			"responses": []map[string]interface{}{
				{"field_id": "field-name", "response": "Alice"},
				{"field_id": "field-note", "response": ""},
			},
		}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["form_id"] != "form-001" {
		t.Errorf("Expected form_id form-001, got %v", data["form_id"])
	}

	if got := countRows(env, &entity.FormSubmission{}); got != 1 {
		t.Errorf("Expected 1 submission, got %d", got)
	}
	if got := countRows(env, &entity.SubmissionResponse{}); got != 2 {
		t.Errorf("Expected 2 responses, got %d", got)
	}

	// Empty string survives the round trip
	var stored entity.SubmissionResponse
	env.DB.Where("field_id = ?", "field-note").First(&stored)
	if stored.Response != "" {
		t.Errorf("Expected empty response preserved, got %q", stored.Response)
	}
}

func TestSubmitFormValidation(t *testing.T) {
	env := setupAPITest(t)
	seedSubmissionFixture(t, env)

	cases := []struct {
		name string
		body string
	}{
		{"missing responses key", `{}`},
		{"responses null", `{"responses": null}`},
		{"responses empty", `{"responses": []}`},
		{"responses not an array", `{"responses": {"field_id": "field-name", "response": "x"}}`},
		{"missing field_id", `{"responses": [{"response": "x"}]}`},
		{"missing response value", `{"responses": [{"field_id": "field-name"}]}`},
		{"null response value", `{"responses": [{"field_id": "field-name", "response": null}]}`},
	}
	for _, tc := range cases {
		w := testutil.DoRawRequest(env.Router, "POST", "/api/v1/forms/form-001/submissions", tc.body, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}

	// Nothing was written along the way
	if got := countRows(env, &entity.FormSubmission{}); got != 0 {
		t.Errorf("Expected 0 submissions after rejected payloads, got %d", got)
	}
	if got := countRows(env, &entity.SubmissionResponse{}); got != 0 {
		t.Errorf("Expected 0 responses after rejected payloads, got %d", got)
	}
}

func TestSubmitToUnknownForm(t *testing.T) {
	env := setupAPITest(t)
	seedSubmissionFixture(t, env)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/forms/no-such-form/submissions",
		map[string]interface{}{
			"responses": []map[string]interface{}{{"field_id": "field-name", "response": "x"}},
		}, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	if got := countRows(env, &entity.FormSubmission{}); got != 0 {
		t.Errorf("Expected 0 submissions, got %d", got)
	}
	if got := countRows(env, &entity.SubmissionResponse{}); got != 0 {
		t.Errorf("Expected 0 responses, got %d", got)
	}
}

func TestListSubmissionsAccess(t *testing.T) {
	env := setupAPITest(t)
	seedSubmissionFixture(t, env)
	testutil.SeedTestUser(t, env.DB, "other-001", "other@test.com", false)
	testutil.SeedTestUser(t, env.DB, "admin-001", "admin@test.com", true)

	// Two anonymous submissions
	for _, name := range []string{"Alice", "Bob"} {
		w := testutil.DoRequest(env.Router, "POST", "/api/v1/forms/form-001/submissions",
			map[string]interface{}{
				"responses": []map[string]interface{}{{"field_id": "field-name", "response": name}},
			}, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("Submit expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	ownerToken := testutil.GenerateTestToken("owner-001", "owner@test.com")
	otherToken := testutil.GenerateTestToken("other-001", "other@test.com")
	adminToken := testutil.GenerateTestToken("admin-001", "admin@test.com")

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/forms/form-001/submissions", nil, ownerToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Owner list expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if subs := resp["data"].([]interface{}); len(subs) != 2 {
		t.Errorf("Expected 2 submissions, got %d", len(subs))
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/forms/form-001/submissions", nil, otherToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("Non-owner list expected 403, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/forms/form-001/submissions", nil, adminToken)
	if w.Code != http.StatusOK {
		t.Errorf("Admin list expected 200, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/forms/form-001/submissions", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Anonymous list expected 401, got %d", w.Code)
	}
}

func TestGetSubmission(t *testing.T) {
	env := setupAPITest(t)
	seedSubmissionFixture(t, env)
	testutil.SeedTestUser(t, env.DB, "other-001", "other@test.com", false)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/forms/form-001/submissions",
		map[string]interface{}{
			"responses": []map[string]interface{}{
				{"field_id": "field-name", "response": "Alice"},
				{"field_id": "field-note", "response": "hello"},
			},
		}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("Submit expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	submissionID := resp["data"].(map[string]interface{})["id"].(string)

	ownerToken := testutil.GenerateTestToken("owner-001", "owner@test.com")
	otherToken := testutil.GenerateTestToken("other-001", "other@test.com")

	// Gated view honors form ownership
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/submissions/"+submissionID, nil, ownerToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Owner get expected 200, got %d: %s", w.Code, w.Body.String())
	}
	detail := testutil.ParseResponse(w)["data"].(map[string]interface{})
	responses := detail["responses"].([]interface{})
	if len(responses) != 2 {
		t.Errorf("Expected 2 responses, got %d", len(responses))
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/submissions/"+submissionID, nil, otherToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("Non-owner get expected 403, got %d", w.Code)
	}

	// Public view needs no token
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/submissions/"+submissionID+"/public", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("Public get expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Unknown submission
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/submissions/no-such-id/public", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Unknown submission expected 404, got %d", w.Code)
	}
}
