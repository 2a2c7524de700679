package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/wakt-hr/attendance-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	ruleHandler RuleHandler,
	adjustmentHandler AdjustmentHandler,
	punchHandler PunchHandler,
	attendanceHandler AttendanceHandler,
	fridayPolicyHandler FridayPolicyHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wakt-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Post("/import", employeeHandler.Import)
			r.Get("/{id}", employeeHandler.Get)
			r.Patch("/{id}", employeeHandler.Update)
		})

		r.Route("/rules", func(r chi.Router) {
			r.Get("/", ruleHandler.List)
			r.Post("/", ruleHandler.Create)
			r.Delete("/{id}", ruleHandler.Delete)
		})

		r.Route("/adjustments", func(r chi.Router) {
			r.Get("/", adjustmentHandler.List)
			r.Post("/", adjustmentHandler.Create)
		})

		r.Route("/punches", func(r chi.Router) {
			r.Post("/import", punchHandler.Import)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/process", attendanceHandler.Process)
			r.Patch("/{id}/friday-comp-leave", attendanceHandler.ToggleFridayCompLeave)
		})

		r.Route("/friday-policy", func(r chi.Router) {
			r.Get("/settings", fridayPolicyHandler.GetSettings)
			r.Put("/settings", fridayPolicyHandler.UpdateSettings)
			r.Get("/report", fridayPolicyHandler.Report)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}
