package routers

import (
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/delivery/http/controllers"
	"lifeledger-service/internal/app/delivery/http/middlewares"
	"lifeledger-service/internal/app/models"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AvailableRoutes is what the status and not-found responses advertise.
var AvailableRoutes = []string{
	"GET /api/health",
	"GET /api/status",
	"GET /api/stats",
	"GET /api/medical-ids",
	"POST /api/send-email",
	"POST /api/donors",
	"GET /api/donors",
	"GET /api/donors/{medicalId}",
	"POST /api/patients",
	"GET /api/patients",
	"GET /api/patients/{medicalId}",
	"POST /api/pledges",
	"GET /metrics",
}

type Controllers struct {
	Notification *controllers.NotificationController
	Registration *controllers.RegistrationController
	Registry     *controllers.RegistryController
	System       *controllers.SystemController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
	gatherer prometheus.Gatherer,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	if limit := internalConfig.App.RequestBodyLimitInMegabyte; limit > 0 {
		router.Use(chimiddleware.RequestSize(int64(limit) << 20))
	}

	router.NotFound(ctrls.System.NotFound)
	router.MethodNotAllowed(ctrls.System.MethodNotAllowed)

	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		attachSystemRoutes(r, ctrls.System)
		attachNotificationRoutes(r, internalConfig, middlewares, ctrls.Notification)

		r.Route("/donors", func(r chi.Router) {
			attachRegistryRoutes(r, models.RoleDonor, ctrls.Registration, ctrls.Registry)
		})
		r.Route("/patients", func(r chi.Router) {
			attachRegistryRoutes(r, models.RolePatient, ctrls.Registration, ctrls.Registry)
		})
		r.Post("/pledges", ctrls.Registration.Register(models.RolePledge))
	})
}

func attachSystemRoutes(router chi.Router, systemController *controllers.SystemController) {
	router.Get("/health", systemController.Health)
	router.Get("/status", systemController.Status)
	router.Get("/stats", systemController.Stats)
	router.Get("/medical-ids", systemController.GenerateMedicalID)
}

func attachNotificationRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	emailLimiter := newEmailRateLimiter(middlewares, internalConfig.RateLimit)
	router.With(emailLimiter.Limit).Post("/send-email", notificationController.SendEmail)
}

func attachRegistryRoutes(router chi.Router, role models.Role, registrationController *controllers.RegistrationController, registryController *controllers.RegistryController) {
	router.Post("/", registrationController.Register(role))
	router.Get("/", registryController.List(role))
	router.Get("/{medicalId}", registryController.Search(role))
}

// newEmailRateLimiter spreads the configured number of requests over the window and
// allows them as one burst.
func newEmailRateLimiter(m *middlewares.Middlewares, limits config.AppRateLimit) *middlewares.RateLimiter {
	requests := limits.EmailRequests
	if requests <= 0 {
		requests = 1
	}
	window := time.Duration(limits.EmailPerSeconds) * time.Second
	blockTime := time.Duration(limits.EmailBlockTimeInSecond) * time.Second
	return middlewares.NewRateLimiter(m.Log, requests, window/time.Duration(requests), blockTime)
}
