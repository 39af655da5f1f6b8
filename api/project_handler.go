package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/validation"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// ProjectCollection is the list response shape.
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int64             `json:"total"`
}

// getAllProjects retrieves projects, filtered by query parameters. Public
// callers only see public projects.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, authErr := ctxGetUserRole(r.Context())

		filter := database.ProjectFilter{
			Category:   r.URL.Query().Get("category"),
			Status:     r.URL.Query().Get("status"),
			PublicOnly: authErr != nil,
			Limit:      queryInt(r, "limit", 20),
			Offset:     queryInt(r, "offset", 0),
		}
		if featured := r.URL.Query().Get("featured"); featured != "" {
			f := featured == "true"
			filter.Featured = &f
		}

		projects, total, err := h.projectRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: total})
	}
}

// getProject retrieves one project and counts the view.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projectRepo.IncrementViews(projectID); err != nil {
			// The read succeeded; a lost view count is not worth a 500.
			h.logger.Error().Err(err).Str("projectID", projectID.String()).Msg("Failed to increment views")
		} else {
			project.Views++
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project. The body has passed the pipeline
// (sanitize -> project.create rule set -> gate).
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Boolean defaults that JSON decoding cannot express: set before
		// decode so an explicit false from the client survives.
		project := models.Project{IsPublic: true, TeamSize: 1}
		if err := validation.DecodeBody(r.Context(), &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapStorageError("create", "project", err))
			return
		}

		h.responder.WriteCreated(w, project)
	}
}

// updateProject updates an existing project. No request validators here; the
// storage-level constraints are the only gate on this path.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := json.NewDecoder(r.Body).Decode(project); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		project.ID = projectID

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapStorageError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject hard-deletes a project.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// likeProject records an anonymous like.
func (h projectHandler) likeProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projectRepo.IncrementLikes(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("like", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

// parseIDParam reads a UUID path parameter. A malformed identifier maps to
// NotFound rather than a 500: it cannot possibly resolve to a document.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewNotFound("resource")
	}
	return id, nil
}

func queryInt(r *http.Request, name string, defaultValue int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

// wrapStorageError passes schema-validation failures through untouched (they
// already carry the field-error payload) and classifies the rest.
func wrapStorageError(operation, entity string, err error) error {
	var validationErr *errs.ValidationErr
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return errs.NewDatabaseError(operation, entity, err)
}
