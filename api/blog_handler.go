package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/validation"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// BlogCollection is the list response shape.
type BlogCollection struct {
	Blogs []*models.Blog `json:"blogs"`
	Total int64          `json:"total"`
}

// getAllBlogs lists posts. Unauthenticated callers only see published posts;
// admins can filter by any status.
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, authErr := ctxGetUserRole(r.Context())
		isAdmin := authErr == nil && role == "admin"

		filter := database.BlogFilter{
			Category:      r.URL.Query().Get("category"),
			Tag:           r.URL.Query().Get("tag"),
			PublishedOnly: !isAdmin,
			Limit:         queryInt(r, "limit", 10),
			Offset:        queryInt(r, "offset", 0),
		}
		if isAdmin {
			filter.Status = r.URL.Query().Get("status")
		}

		blogs, total, err := h.blogRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, BlogCollection{Blogs: blogs, Total: total})
	}
}

// getBlogBySlug fetches one published post by slug and counts the view.
func (h blogHandler) getBlogBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}

		if blog.Status != models.BlogStatusPublished {
			if role, authErr := ctxGetUserRole(r.Context()); authErr != nil || role != "admin" {
				h.responder.WriteError(w, errs.NewNotFound("blog"))
				return
			}
		}

		if err := h.blogRepo.IncrementViews(blog.ID); err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Failed to increment views")
		} else {
			blog.Views++
		}

		h.responder.WriteJSON(w, blog)
	}
}

// searchBlogs runs full-text search over published posts.
func (h blogHandler) searchBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")
		if term == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing query parameter q"))
			return
		}

		blogs, err := h.blogRepo.Search(term, queryInt(r, "limit", 20))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("search", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, BlogCollection{Blogs: blogs, Total: int64(len(blogs))})
	}
}

// createBlog creates a post. The body has passed the pipeline; the slug,
// read time, and publish stamp are derived in the model's pre-save hook.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var blog models.Blog
		if err := validation.DecodeBody(r.Context(), &blog); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if userID, err := ctxGetUserID(r.Context()); err == nil {
			if authorID, parseErr := uuid.Parse(userID); parseErr == nil {
				blog.AuthorID = &authorID
			}
		}

		if err := h.blogRepo.Add(&blog); err != nil {
			h.responder.WriteError(w, wrapStorageError("create", "blog", err))
			return
		}

		h.responder.WriteCreated(w, blog)
	}
}

// updateBlog updates a post. Slug stays immutable once set; publishedAt is
// preserved by the pre-save hook even through archive/re-publish cycles.
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}

		existingSlug := blog.Slug
		if err := json.NewDecoder(r.Body).Decode(blog); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		blog.ID = blogID
		blog.Slug = existingSlug // immutable once set

		if err := h.blogRepo.Update(blog); err != nil {
			h.responder.WriteError(w, wrapStorageError("update", "blog", err))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// deleteBlog removes a post.
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.blogRepo.FindByID(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}

// likeBlog records a like, anonymous unless the caller is authenticated.
func (h blogHandler) likeBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}

		like := models.BlogLike{Date: time.Now().UTC()}
		if userID, ctxErr := ctxGetUserID(r.Context()); ctxErr == nil {
			if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
				like.User = &parsed
			}
		}
		blog.Likes = append(blog.Likes, like)

		if err := h.blogRepo.Update(blog); err != nil {
			h.responder.WriteError(w, wrapStorageError("like", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"status": "success", "likes": len(blog.Likes)})
	}
}

type commentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

// addComment appends a reader comment, held until an admin approves it.
func (h blogHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := parseIDParam(r, "blogID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		blog.Comments = append(blog.Comments, models.BlogComment{
			Name:       req.Name,
			Email:      req.Email,
			Comment:    req.Comment,
			IsApproved: false,
			Date:       time.Now().UTC(),
		})

		// Comment fields are checked by the blog schema validators on save.
		if err := h.blogRepo.Update(blog); err != nil {
			h.responder.WriteError(w, wrapStorageError("comment on", "blog", err))
			return
		}

		h.responder.WriteCreated(w, map[string]string{
			"status":  "success",
			"message": "comment submitted for approval",
		})
	}
}
