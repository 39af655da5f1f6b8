package api

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rpupo63/portfolio-backend/validation"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	mailer      *services.Mailer
}

func newContactHandler(contactRepo *database.ContactRepo, mailer *services.Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

// ContactCollection is the list response shape.
type ContactCollection struct {
	Contacts []*models.Contact `json:"contacts"`
	Total    int64             `json:"total"`
}

// submitContact accepts a public contact-form submission. The body has
// passed the pipeline; IP and user agent are captured here, not taken from
// the payload.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var contact models.Contact
		if err := validation.DecodeBody(r.Context(), &contact); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Submitters never control these fields.
		contact.Status = ""
		contact.Notes = ""
		contact.IsSpam = false
		contact.RepliedAt = nil
		contact.Replies = nil
		contact.IPAddress = clientIP(r)
		contact.UserAgent = r.UserAgent()

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapStorageError("create", "contact", err))
			return
		}

		// Fire-and-forget; email failures never block the submitter.
		go h.mailer.NotifyContactSubmission(&contact)

		h.responder.WriteCreated(w, map[string]any{
			"status":  "success",
			"message": "Thanks for reaching out! I'll get back to you soon.",
			"id":      contact.ID,
		})
	}
}

// getAllContacts lists submissions for the admin inbox.
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ContactFilter{
			Status:   r.URL.Query().Get("status"),
			Priority: r.URL.Query().Get("priority"),
			Limit:    queryInt(r, "limit", 20),
			Offset:   queryInt(r, "offset", 0),
		}

		contacts, total, err := h.contactRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, ContactCollection{Contacts: contacts, Total: total})
	}
}

// getContact fetches one submission; a fresh one transitions to "read" on
// this first admin view.
func (h contactHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}

		if contact.MarkRead() {
			if err := h.contactRepo.Update(contact); err != nil {
				h.logger.Error().Err(err).Str("contactID", contactID.String()).Msg("Failed to mark contact read")
			}
		}

		h.responder.WriteJSON(w, contact)
	}
}

type contactUpdateRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
	Notes    *string `json:"notes"`
	IsSpam   *bool   `json:"isSpam"`
}

// updateContact applies admin-only mutations: status, priority, notes, spam
// flag. Marking spam forces the submission into the archive (schema hook).
func (h contactHandler) updateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}

		var req contactUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Status != nil {
			contact.Status = *req.Status
		}
		if req.Priority != nil {
			contact.Priority = *req.Priority
		}
		if req.Notes != nil {
			contact.Notes = *req.Notes
		}
		if req.IsSpam != nil {
			contact.IsSpam = *req.IsSpam
		}

		if err := h.contactRepo.Update(contact); err != nil {
			h.responder.WriteError(w, wrapStorageError("update", "contact", err))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

type replyRequest struct {
	Message string `json:"message"`
}

// addReply records an admin reply: appends it, stamps repliedAt, and moves
// the submission to "replied".
func (h contactHandler) addReply() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}

		var req replyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("reply message is required"))
			return
		}

		var sentBy *uuid.UUID
		if userID, ctxErr := ctxGetUserID(r.Context()); ctxErr == nil {
			if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
				sentBy = &parsed
			}
		}

		contact.AddReply(req.Message, sentBy, time.Now().UTC())

		if err := h.contactRepo.Update(contact); err != nil {
			h.responder.WriteError(w, wrapStorageError("reply to", "contact", err))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

// deleteContact removes a submission.
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.contactRepo.FindByID(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact deleted successfully",
		})
	}
}

// clientIP extracts the caller's address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		// First hop is the original client.
		for i := 0; i < len(fwd); i++ {
			if fwd[i] == ',' {
				return fwd[:i]
			}
		}
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
