// routes/routes.go - API route registration
package routes

import (
	"cyberhunt/handlers"
	"cyberhunt/handlers/admin"
	"cyberhunt/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers every API route on the app. Handlers must have been
// wired to a store first (handlers.Init / admin.Init).
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)
	authGroup.Get("/me", middleware.AuthMiddleware, handlers.GetCurrentUser)

	// Challenge routes
	api.Get("/challenges", middleware.AuthMiddleware, handlers.GetChallenges)
	api.Get("/challenges/:id", middleware.AuthMiddleware, handlers.GetChallenge)
	api.Post("/challenges/:id/verify", middleware.AuthMiddleware, handlers.VerifyChallenge)

	// Progress
	api.Get("/progress", middleware.AuthMiddleware, handlers.GetProgress)

	// Quiz routes
	api.Get("/quiz", middleware.AuthMiddleware, handlers.GetQuiz)
	api.Post("/quiz/reset", middleware.AuthMiddleware, handlers.ResetQuiz)
	api.Get("/quiz/:index", middleware.AuthMiddleware, handlers.GetQuizQuestion)
	api.Post("/quiz/:index/answer", middleware.AuthMiddleware, handlers.AnswerQuiz)

	// Group routes
	api.Post("/group-photo", middleware.AuthMiddleware, handlers.SaveGroupPhoto)
	api.Get("/group-photo", middleware.AuthMiddleware, handlers.GetGroupPhoto)
	api.Get("/group-progress", middleware.AuthMiddleware, handlers.GetGroupProgress)
	api.Get("/group-members", middleware.AuthMiddleware, handlers.GetGroupMembers)
	api.Get("/all-groups-progress", middleware.AuthMiddleware, handlers.GetAllGroupsProgress)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware)

	adminGroup.Get("/challenges", admin.GetChallenges)
	adminGroup.Post("/challenges", admin.CreateChallenge)
	adminGroup.Put("/challenges/:id", admin.UpdateChallenge)
	adminGroup.Delete("/challenges/:id", admin.DeleteChallenge)

	adminGroup.Get("/quizzes", admin.GetQuizzes)
	adminGroup.Post("/quizzes", admin.CreateQuiz)
	adminGroup.Put("/quizzes/:id", admin.UpdateQuiz)
	adminGroup.Delete("/quizzes/:id", admin.DeleteQuiz)

	adminGroup.Get("/users", admin.GetUsers)
	adminGroup.Get("/users/:id", admin.GetUser)
	adminGroup.Put("/users/:id", admin.UpdateUser)
	adminGroup.Delete("/users/:id", admin.DeleteUser)
}
