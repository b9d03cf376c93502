package service

import (
	"context"
	"errors"
	"testing"

	"github.com/TheShepherd03/Formify-Backend/internal/repository"
	"github.com/TheShepherd03/Formify-Backend/internal/testutil"
)

func setupAccessTest(t *testing.T) (*AccessService, *testutil.TestEnv) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	return NewAccessService(repos.User, repos.Form), &testutil.TestEnv{DB: db, T: t}
}

func TestAuthorizeFormOwnerAndAdmin(t *testing.T) {
	access, env := setupAccessTest(t)
	ctx := context.Background()

	testutil.SeedTestUser(t, env.DB, "owner-001", "owner@test.com", false)
	testutil.SeedTestUser(t, env.DB, "other-001", "other@test.com", false)
	testutil.SeedTestUser(t, env.DB, "admin-001", "admin@test.com", true)
	testutil.SeedTestForm(t, env.DB, "form-001", "Form", "owner-001")

	form, err := access.AuthorizeForm(ctx, "form-001", "owner-001")
	if err != nil {
		t.Fatalf("Owner should be allowed: %v", err)
	}
	if form.ID != "form-001" {
		t.Errorf("Expected resolved form, got %v", form.ID)
	}

	if _, err := access.AuthorizeForm(ctx, "form-001", "other-001"); !errors.Is(err, ErrForbidden) {
		t.Errorf("Non-owner should get ErrForbidden, got %v", err)
	}

	if _, err := access.AuthorizeForm(ctx, "form-001", "admin-001"); err != nil {
		t.Errorf("Admin should be allowed: %v", err)
	}
}

func TestAuthorizeFormMissingTargets(t *testing.T) {
	access, env := setupAccessTest(t)
	ctx := context.Background()

	testutil.SeedTestUser(t, env.DB, "owner-001", "owner@test.com", false)
	testutil.SeedTestForm(t, env.DB, "form-001", "Form", "owner-001")

	// Unknown form is a not-found, never a forbidden
	_, err := access.AuthorizeForm(ctx, "no-such-form", "owner-001")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Unknown form should be ErrNotFound, got %v", err)
	}

	// A caller that passed token validation but has no user row is an
	// internal inconsistency, not a permission failure
	_, err = access.AuthorizeForm(ctx, "form-001", "ghost-user")
	if err == nil {
		t.Fatal("Ghost caller should fail")
	}
	if errors.Is(err, ErrForbidden) || errors.Is(err, ErrNotFound) {
		t.Errorf("Ghost caller should not map to forbidden/not-found, got %v", err)
	}
}
