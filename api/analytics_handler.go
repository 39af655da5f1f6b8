package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-backend/database"
)

type analyticsHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newAnalyticsHandler(db database.Database) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	ProjectsByCategory map[string]int64 `json:"projectsByCategory"`
	ContactsByStatus   map[string]int64 `json:"contactsByStatus"`
	TotalBlogViews     int64            `json:"totalBlogViews"`
	TotalSkills        int64            `json:"totalSkills"`
}

// getDashboard aggregates counts across all entities. The four queries are
// independent, so they run concurrently.
func (h analyticsHandler) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats DashboardStats

		g, _ := errgroup.WithContext(r.Context())
		g.Go(func() error {
			counts, err := h.db.ProjectRepo().CountByCategory()
			stats.ProjectsByCategory = counts
			return err
		})
		g.Go(func() error {
			counts, err := h.db.ContactRepo().CountByStatus()
			stats.ContactsByStatus = counts
			return err
		})
		g.Go(func() error {
			total, err := h.db.BlogRepo().TotalViews()
			stats.TotalBlogViews = total
			return err
		})
		g.Go(func() error {
			total, err := h.db.SkillRepo().Count()
			stats.TotalSkills = total
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "dashboard stats", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
