package handler

import (
	"testing"

	"github.com/TheShepherd03/Formify-Backend/internal/repository"
	"github.com/TheShepherd03/Formify-Backend/internal/service"
	"github.com/TheShepherd03/Formify-Backend/internal/testutil"
)

// setupAPITest wires the full API against an isolated test schema,
// mirroring the route layout of the real server.
func setupAPITest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, nil, testutil.TestConfig())
	handlers := NewHandlers(services, testutil.TestConfig(), nil)

	v1 := router.Group("/api/v1")

	// Public endpoints
	v1.POST("/auth/signup", handlers.Auth.Signup)
	v1.POST("/auth/login", handlers.Auth.Login)
	v1.POST("/auth/refresh", handlers.Auth.RefreshToken)
	v1.GET("/forms/:id/public", handlers.Form.GetPublicForm)
	v1.POST("/forms/:id/submissions", handlers.Submission.SubmitForm)
	v1.GET("/submissions/:id/public", handlers.Submission.GetPublicSubmission)

	// Authenticated endpoints
	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/auth/me", handlers.Auth.GetCurrentUser)
	api.POST("/auth/logout", handlers.Auth.Logout)

	api.GET("/users/profile", handlers.User.GetProfile)
	api.PUT("/users/profile", handlers.User.UpdateProfile)
	api.PUT("/users/password", handlers.User.ChangePassword)

	api.GET("/forms", handlers.Form.ListForms)
	api.POST("/forms", handlers.Form.CreateForm)
	api.GET("/forms/:id", handlers.Form.GetForm)
	api.GET("/forms/:id/full", handlers.Form.GetFormWithFields)
	api.PUT("/forms/:id", handlers.Form.UpdateForm)
	api.DELETE("/forms/:id", handlers.Form.DeleteForm)
	api.GET("/forms/:id/fields", handlers.Form.ListFields)
	api.POST("/forms/:id/fields", handlers.Form.AddField)
	api.DELETE("/forms/:id/fields/:fieldId", handlers.Form.DeleteField)
	api.GET("/forms/:id/submissions", handlers.Submission.ListSubmissions)
	api.GET("/submissions/:id", handlers.Submission.GetSubmission)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}
