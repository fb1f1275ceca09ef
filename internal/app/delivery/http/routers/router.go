package routers

import (
	"fmt"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	gestureLimiter *middlewares.RateLimiter,
	healthController *controllers.HealthController,
	scheduleController *controllers.ScheduleController,
	viewerController *controllers.ViewerController,
) {
	allowedOrigins := internalConfig.App.CORSAllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderXClientID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderXClientID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	if accessLogger != nil {
		router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))
	}
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.GlobalRateLimit())

	router.Get("/healthz", healthController.Check)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/healthz", healthController.Check)

			r.Route("/"+constvars.ResourceBatches, func(r chi.Router) {
				attachBatchRoutes(r, scheduleController)
			})

			r.Route("/"+constvars.ResourceSchedules, func(r chi.Router) {
				attachScheduleRoutes(r, scheduleController)
			})

			r.Route("/"+constvars.ResourceViewer, func(r chi.Router) {
				r.Use(middlewares.ClientIDMiddleware)
				attachViewerRoutes(r, gestureLimiter, viewerController)
			})
		})
	})
}
