package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/validation"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// SkillCollection groups skills by category for the frontend.
type SkillCollection struct {
	Skills  []*models.Skill            `json:"skills"`
	Grouped map[string][]*models.Skill `json:"grouped"`
	Total   int                        `json:"total"`
}

// getAllSkills lists skills. Public callers only see visible skills.
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, authErr := ctxGetUserRole(r.Context())
		isAdmin := authErr == nil && role == "admin"

		filter := database.SkillFilter{
			Category:    r.URL.Query().Get("category"),
			VisibleOnly: !isAdmin,
		}

		skills, err := h.skillRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		grouped := make(map[string][]*models.Skill)
		for _, skill := range skills {
			grouped[skill.Category] = append(grouped[skill.Category], skill)
		}

		h.responder.WriteJSON(w, SkillCollection{Skills: skills, Grouped: grouped, Total: len(skills)})
	}
}

// createSkill creates a skill. A duplicate name comes back as a 409 conflict,
// not a generic failure.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill := models.Skill{IsVisible: true}
		if err := validation.DecodeBody(r.Context(), &skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapStorageError("create", "skill", err))
			return
		}

		h.responder.WriteCreated(w, skill)
	}
}

// updateSkill updates a skill. Storage-level constraints are the only gate.
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}

		if err := json.NewDecoder(r.Body).Decode(skill); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		skill.ID = skillID

		if err := h.skillRepo.Update(skill); err != nil {
			h.responder.WriteError(w, wrapStorageError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill removes a skill.
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.skillRepo.FindByID(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}
