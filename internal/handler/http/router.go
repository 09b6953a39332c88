package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/appraisal-engine-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/appraisal-engine-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	appraisalHandler AppraisalHandler,
	calendarHandler CalendarHandler,
	groupHandler GroupHandler,
	templateHandler TemplateHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "appraisal-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/calendars", func(r chi.Router) {
				r.Get("/", calendarHandler.ListCalendars)
				r.Get("/{calendarID}", calendarHandler.GetCalendar)
				r.Get("/{calendarID}/periods", calendarHandler.GetPeriods)
			})

			r.Route("/groups", func(r chi.Router) {
				r.Get("/", groupHandler.ListGroups)
				r.Get("/{groupID}", groupHandler.GetGroup)
			})

			r.Get("/templates", templateHandler.ListTemplates)

			r.Route("/appraisals", func(r chi.Router) {
				r.Post("/", appraisalHandler.Submit)
				r.Get("/{cycleID}", appraisalHandler.GetCycle)
				r.Post("/eligibility/preview", appraisalHandler.PreviewEligibility)
				r.Post("/schedule/preview", appraisalHandler.PreviewSchedule)
			})
		})
	})
	return r
}
