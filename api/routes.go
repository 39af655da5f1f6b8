package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/portfolio-backend/validation"
)

// setupRoutes wires the public, authenticated, and admin route groups. Write
// endpoints on create paths run the full pipeline: sanitize -> field
// validators -> gate -> handler. Update paths rely on the storage-level
// constraints only.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware, pipeline validation.Pipeline) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Public routes. Tokens are parsed when present so admins see unpublished
	// content through the same listing endpoints.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.maybeAuthenticate)

		r.With(pipeline.Require(validation.RuleSetUserRegister)).
			Post("/api/auth/register", handlers.authHandler.register())
		r.With(pipeline.Require(validation.RuleSetUserLogin)).
			Post("/api/auth/login", handlers.authHandler.login())

		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())
		r.Post("/api/projects/{projectID}/like", handlers.projectHandler.likeProject())

		r.Get("/api/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/api/blogs/search", handlers.blogHandler.searchBlogs())
		r.Get("/api/blogs/slug/{slug}", handlers.blogHandler.getBlogBySlug())
		r.Post("/api/blogs/{blogID}/like", handlers.blogHandler.likeBlog())
		r.Post("/api/blogs/{blogID}/comments", handlers.blogHandler.addComment())

		r.With(pipeline.Require(validation.RuleSetContactCreate)).
			Post("/api/contacts", handlers.contactHandler.submitContact())

		r.Get("/api/skills", handlers.skillHandler.getAllSkills())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.authenticate)
		r.Use(auth.requireAdmin)

		r.With(pipeline.Require(validation.RuleSetProjectCreate)).
			Post("/api/projects", handlers.projectHandler.createProject())
		r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.With(pipeline.Require(validation.RuleSetBlogCreate)).
			Post("/api/blogs", handlers.blogHandler.createBlog())
		r.Put("/api/blogs/{blogID}", handlers.blogHandler.updateBlog())
		r.Delete("/api/blogs/{blogID}", handlers.blogHandler.deleteBlog())

		r.Get("/api/contacts", handlers.contactHandler.getAllContacts())
		r.Get("/api/contacts/{contactID}", handlers.contactHandler.getContact())
		r.Put("/api/contacts/{contactID}", handlers.contactHandler.updateContact())
		r.Post("/api/contacts/{contactID}/replies", handlers.contactHandler.addReply())
		r.Delete("/api/contacts/{contactID}", handlers.contactHandler.deleteContact())

		r.With(pipeline.Require(validation.RuleSetSkillCreate)).
			Post("/api/skills", handlers.skillHandler.createSkill())
		r.Put("/api/skills/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/api/skills/{skillID}", handlers.skillHandler.deleteSkill())

		r.Get("/api/analytics/dashboard", handlers.analyticsHandler.getDashboard())
		r.Post("/api/uploads", handlers.uploadHandler.createUpload())
	})
}
