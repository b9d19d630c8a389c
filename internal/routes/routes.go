package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codebem/plataforma-backend/internal/config"
	"github.com/codebem/plataforma-backend/internal/controllers"
	"github.com/codebem/plataforma-backend/internal/middleware"
	"github.com/codebem/plataforma-backend/internal/models"
	"github.com/codebem/plataforma-backend/internal/state"
	"github.com/codebem/plataforma-backend/internal/storage"
)

func SetupRoutes(app *fiber.App, provider *state.Provider, objects storage.ObjectStorage, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(provider, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	editorMiddleware := middleware.RequireRole(provider, models.RoleInstructor, models.RoleAdmin)
	adminMiddleware := middleware.RequireRole(provider, models.RoleAdmin)

	// User routes
	usersController := controllers.NewUsersController(provider, cfg)
	app.Get("/api/users/profile", authMiddleware, usersController.GetProfile)
	app.Put("/api/users/profile", authMiddleware, usersController.UpdateProfile)

	// Course catalog routes
	coursesController := controllers.NewCoursesController(provider, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.Catalog)
	courses.Get("/:id", coursesController.GetCourse)

	// Progress routes
	progressController := controllers.NewProgressController(provider, cfg)
	progressGroup := app.Group("/api/progress", authMiddleware)
	progressGroup.Get("/dashboard", progressController.GetDashboard)
	progressGroup.Post("/lessons/:lessonId/complete", progressController.CompleteLesson)
	progressGroup.Put("/notes/:lessonId", progressController.SaveNote)

	// Mentorship routes
	mentorshipController := controllers.NewMentorshipController(provider, cfg)
	mentorship := app.Group("/api/mentorship", authMiddleware)
	mentorship.Get("/sessions", mentorshipController.ListSessions)
	mentorship.Post("/sessions", editorMiddleware, mentorshipController.CreateSession)
	mentorship.Post("/sessions/:id/book", mentorshipController.BookSession)
	mentorship.Post("/sessions/:id/cancel", mentorshipController.CancelSession)
	mentorship.Delete("/sessions/:id", mentorshipController.DeleteSession)

	// Community routes
	communityController := controllers.NewCommunityController(provider, cfg)
	community := app.Group("/api/community", authMiddleware)
	community.Get("/projects", communityController.ListProjects)
	community.Get("/projects/:id", communityController.GetProject)
	community.Post("/projects", communityController.CreateProject)
	community.Post("/projects/:id/comments", communityController.AddProjectComment)
	community.Get("/articles", communityController.ListArticles)
	community.Post("/articles", editorMiddleware, communityController.CreateArticle)
	community.Get("/events", communityController.ListEvents)
	community.Post("/events", editorMiddleware, communityController.CreateEvent)
	community.Get("/partners", communityController.ListPartners)
	community.Post("/partners", adminMiddleware, communityController.CreatePartner)

	// Uploads
	uploadsController := controllers.NewUploadsController(objects, cfg)
	app.Post("/api/uploads/images", authMiddleware, uploadsController.UploadImage)

	// Editor routes for courses (instructor/admin back-office)
	editorController := controllers.NewEditorController(provider, cfg)
	editor := app.Group("/api/admin/courses", authMiddleware, editorMiddleware)
	editor.Post("/", editorController.CreateCourse)
	editor.Put("/:id", editorController.SaveCourse)
	editor.Delete("/:id", editorController.DeleteCourse)
	editor.Post("/:id/duplicate", editorController.DuplicateCourse)
	editor.Post("/import", editorController.ImportCourse)
	editor.Get("/:id/export", editorController.ExportCourse)

	// Draft endpoints: the working copy travels in the request body and
	// is returned mutated; only the explicit save above persists.
	draft := app.Group("/api/admin/draft", authMiddleware, editorMiddleware)
	draft.Post("/modules", editorController.DraftAddModule)
	draft.Delete("/modules/:index", editorController.DraftDeleteModule)
	draft.Post("/modules/:index/lessons", editorController.DraftAddLesson)
	draft.Delete("/modules/:index/lessons/:lessonIndex", editorController.DraftDeleteLesson)
	draft.Patch("/", editorController.DraftUpdateCourse)
	draft.Patch("/modules/:index", editorController.DraftUpdateModule)
	draft.Patch("/modules/:index/lessons/:lessonIndex", editorController.DraftUpdateLesson)

	// Admin user management
	adminController := controllers.NewAdminController(provider, cfg)
	admin := app.Group("/api/admin/users", authMiddleware, adminMiddleware)
	admin.Get("/", adminController.ListUsers)
	admin.Put("/:id/role", adminController.UpdateUserRole)
	admin.Post("/:id/deactivate", adminController.DeactivateUser)
	admin.Post("/:id/activate", adminController.ActivateUser)
}
