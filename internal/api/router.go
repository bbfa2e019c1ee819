package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/TWRT/taskboard/internal/api/handlers"
	"github.com/TWRT/taskboard/internal/api/middleware"
	"github.com/TWRT/taskboard/internal/client"
	"github.com/TWRT/taskboard/internal/metrics"
	"github.com/TWRT/taskboard/internal/repository"
	"github.com/TWRT/taskboard/internal/service"
)

// Dependencies are the collaborators a server is built from. Logger and
// Metrics default to the standard logger and a fresh registry.
type Dependencies struct {
	Tasks      service.TaskStore
	Settings   repository.SettingStore
	Summarizer client.Summarizer

	Logger  *logrus.Logger
	Metrics *metrics.Metrics

	AssetsDir      string
	RateLimitRPS   float64
	RateLimitBurst int
}

func SetupRouter(deps Dependencies) *mux.Router {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	taskService := service.NewTaskService(deps.Tasks)
	themeService := service.NewThemeService(deps.Settings)
	summaryService := service.NewSummaryService(deps.Summarizer)

	apiRouter := NewAPIRouter(
		handlers.NewTaskHandler(taskService),
		handlers.NewThemeHandler(themeService),
		handlers.NewSummaryHandler(summaryService, m),
	)

	var apiHandler http.Handler = apiRouter
	if deps.RateLimitRPS > 0 {
		apiHandler = middleware.NewRateLimiter(deps.RateLimitRPS, deps.RateLimitBurst).Handler(apiHandler)
	}
	apiHandler = middleware.CORS(apiHandler)

	router := mux.NewRouter()
	router.Use(middleware.Logging(logger), m.Middleware)

	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet).Name("metrics")
	router.PathPrefix("/api/").Handler(apiHandler).Name("api")
	router.PathPrefix("/").Handler(NewAssetsHandler(deps.AssetsDir)).Name("assets")

	return router
}
