package api

import (
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, secret []byte, mailer *services.Mailer, uploader *services.Uploader) *routeHandlers {
	return &routeHandlers{
		authHandler:      newAuthHandler(db.UserRepo(), secret),
		projectHandler:   newProjectHandler(db.ProjectRepo()),
		blogHandler:      newBlogHandler(db.BlogRepo()),
		contactHandler:   newContactHandler(db.ContactRepo(), mailer),
		skillHandler:     newSkillHandler(db.SkillRepo()),
		analyticsHandler: newAnalyticsHandler(db),
		uploadHandler:    newUploadHandler(uploader),
	}
}
