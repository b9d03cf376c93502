package handler

import (
	"net/http"
	"testing"

	"github.com/TheShepherd03/Formify-Backend/internal/testutil"
)

func TestUpdateProfile(t *testing.T) {
	env := setupAPITest(t)
	testutil.SeedTestUser(t, env.DB, "user-001", "old@test.com", false)
	testutil.SeedTestUser(t, env.DB, "user-002", "taken@test.com", false)
	token := testutil.GenerateTestToken("user-001", "old@test.com")

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/users/profile", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Get profile expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Change email
	w = testutil.DoRequest(env.Router, "PUT", "/api/v1/users/profile",
		map[string]interface{}{"email": "fresh@test.com"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Update expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["email"] != "fresh@test.com" {
		t.Errorf("Expected updated email, got %v", data["email"])
	}

	// Another user's email is off limits
	w = testutil.DoRequest(env.Router, "PUT", "/api/v1/users/profile",
		map[string]interface{}{"email": "taken@test.com"}, token)
	if w.Code != http.StatusConflict {
		t.Errorf("Taken email expected 409, got %d: %s", w.Code, w.Body.String())
	}

	// Keeping your own email is not a conflict
	w = testutil.DoRequest(env.Router, "PUT", "/api/v1/users/profile",
		map[string]interface{}{"email": "fresh@test.com"}, token)
	if w.Code != http.StatusOK {
		t.Errorf("Self email expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestChangePassword(t *testing.T) {
	env := setupAPITest(t)
	testutil.SeedTestUser(t, env.DB, "user-001", "me@test.com", false)
	token := testutil.GenerateTestToken("user-001", "me@test.com")

	// Wrong current password
	w := testutil.DoRequest(env.Router, "PUT", "/api/v1/users/password",
		map[string]interface{}{"current_password": "nope", "new_password": "brandnew1"}, token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Wrong current password expected 401, got %d", w.Code)
	}

	// New password too short
	w = testutil.DoRequest(env.Router, "PUT", "/api/v1/users/password",
		map[string]interface{}{"current_password": testutil.TestPassword, "new_password": "ab"}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Short new password expected 400, got %d", w.Code)
	}

	// Successful change
	w = testutil.DoRequest(env.Router, "PUT", "/api/v1/users/password",
		map[string]interface{}{"current_password": testutil.TestPassword, "new_password": "brandnew1"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Change expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Old password no longer logs in, new one does
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login",
		map[string]interface{}{"email": "me@test.com", "password": testutil.TestPassword}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Old password expected 401, got %d", w.Code)
	}
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login",
		map[string]interface{}{"email": "me@test.com", "password": "brandnew1"}, "")
	if w.Code != http.StatusOK {
		t.Errorf("New password expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
