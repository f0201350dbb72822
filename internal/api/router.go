package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/oceanofgigs/engine/internal/api/handlers"
	mw "github.com/oceanofgigs/engine/internal/api/middleware"
	"github.com/oceanofgigs/engine/internal/metrics"
)

type Dependencies struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	HealthHandler       *handlers.HealthHandler
	UsersHandler        *handlers.UsersHandler
	SkillsHandler       *handlers.SkillsHandler
	GigsHandler         *handlers.GigsHandler
	ApplicationsHandler *handlers.ApplicationsHandler
	SavedItemsHandler   *handlers.SavedItemsHandler
	SearchHandler       *handlers.SearchHandler
}

// NewRouter builds the HTTP handler. ctx bounds the rate limiter's background
// sweeper.
func NewRouter(ctx context.Context, dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.Metrics)
	r.Use(mw.CORS(dep.AllowedOrigins))
	r.Use(mw.RateLimit(ctx, dep.RateLimitRPS, dep.RateLimitBurst))
	r.Use(chimid.Compress(5))

	// Health endpoints
	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Route("/users", func(ur chi.Router) {
			ur.Post("/", dep.UsersHandler.Create)
			ur.Get("/by-username/{username}", dep.UsersHandler.GetByUsername)
			ur.Get("/{id}", dep.UsersHandler.Get)
			ur.Patch("/{id}", dep.UsersHandler.Update)
			ur.Get("/{id}/skills", dep.UsersHandler.GetWithSkills)
			ur.Post("/{id}/skills", dep.UsersHandler.AddSkill)
			ur.Delete("/{id}/skills/{skillId}", dep.UsersHandler.RemoveSkill)
		})

		api.Route("/skills", func(sr chi.Router) {
			sr.Get("/", dep.SkillsHandler.List)
			sr.Post("/", dep.SkillsHandler.Create)
		})

		api.Route("/gigs", func(gr chi.Router) {
			gr.Get("/", dep.GigsHandler.List)
			gr.Post("/", dep.GigsHandler.Create)
			gr.Get("/{id}", dep.GigsHandler.Get)
			gr.Post("/{id}/skills", dep.GigsHandler.AddSkill)
			gr.Delete("/{id}/skills/{skillId}", dep.GigsHandler.RemoveSkill)
		})
		api.Get("/recruiters/{recruiterId}/gigs", dep.GigsHandler.ListByRecruiter)

		api.Route("/applications", func(ar chi.Router) {
			ar.Post("/", dep.ApplicationsHandler.Create)
			ar.Get("/gig/{gigId}", dep.ApplicationsHandler.ListByGig)
			ar.Get("/student/{studentId}", dep.ApplicationsHandler.ListByStudent)
			ar.Get("/{id}", dep.ApplicationsHandler.Get)
			ar.Patch("/{id}/status", dep.ApplicationsHandler.UpdateStatus)
		})

		// GET takes the owning user's id, DELETE the saved item's id.
		api.Route("/saved-items", func(sr chi.Router) {
			sr.Post("/", dep.SavedItemsHandler.Create)
			sr.Get("/{id}", dep.SavedItemsHandler.ListByUser)
			sr.Delete("/{id}", dep.SavedItemsHandler.Delete)
		})

		api.Get("/search/users", dep.SearchHandler.Users)
	})

	return r
}
